// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"

	"github.com/ik5/audnorm/audio"
)

var (
	ErrNotFlacFile   = fmt.Errorf("%w: not a FLAC stream", audio.ErrFormat)
	ErrCorruptStream = fmt.Errorf("%w: corrupt FLAC frame", audio.ErrFormat)
)
