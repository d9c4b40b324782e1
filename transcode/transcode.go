// SPDX-License-Identifier: EPL-2.0

package transcode

import "context"

// Transcoder converts between a container file and raw mono signed 16-bit
// little-endian PCM.
type Transcoder interface {
	// Decode reads the audio of path resampled to rate. At most maxSamples
	// samples are returned; maxSamples <= 0 means no limit.
	Decode(ctx context.Context, path string, rate, maxSamples int) ([]int16, error)
	// Encode writes samples recorded at rate to path, picking the container
	// from the file name.
	Encode(ctx context.Context, path string, rate int, samples []int16) error
}
