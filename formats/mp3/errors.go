// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/audnorm/audio"
)

// ErrNotMP3File is returned when go-mp3 cannot find a valid frame header.
var ErrNotMP3File = fmt.Errorf("%w: not an MP3 stream", audio.ErrFormat)
