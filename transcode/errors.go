// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"

	"github.com/ik5/audnorm/audio"
)

var (
	// ErrNoOutput is returned when a decode yields zero bytes of audio.
	ErrNoOutput = fmt.Errorf("%w: transcoder produced no audio", audio.ErrIO)

	// ErrFailed is returned when the transcoder cannot be started or exits
	// with an error.
	ErrFailed = fmt.Errorf("%w: transcoder failed", audio.ErrIO)

	// ErrNotFound is returned by FindFFmpeg.
	ErrNotFound = fmt.Errorf("%w: ffmpeg not found", audio.ErrIO)
)
