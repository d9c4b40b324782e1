// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/audnorm/audio"
)

var (
	ErrNotAiffFile           = fmt.Errorf("%w: not an AIFF file", audio.ErrFormat)
	ErrUnsupportedBitDepth   = fmt.Errorf("%w: unsupported AIFF bit depth", audio.ErrFormat)
	ErrUnsupportedAiffLayout = fmt.Errorf("%w: unsupported AIFF layout", audio.ErrFormat)
)
