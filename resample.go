// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"github.com/ik5/audnorm/audio"
)

// ResampleToMono16 drains src, averages its channels down to mono and
// resamples the result to targetRate. src is not closed.
//
//	src, _ := mp3.Decoder{}.Decode(file)
//	s, err := audnorm.ResampleToMono16(src, 16000)
//	// s.Samples is mono 16-bit PCM at 16 kHz
func ResampleToMono16(src audio.Source, targetRate int) (*audio.Stream, error) {
	s, err := audio.ReadAll(src)
	if err != nil {
		return nil, err
	}

	if err := audio.Resample(s, targetRate); err != nil {
		return nil, err
	}

	return s, nil
}
