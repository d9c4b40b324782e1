// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"

	"github.com/ik5/audnorm/audio"
)

// ErrNotOggVorbis is returned when the stream has no valid Vorbis headers.
var ErrNotOggVorbis = fmt.Errorf("%w: not an Ogg Vorbis stream", audio.ErrFormat)
