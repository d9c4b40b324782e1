// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/audnorm/audio"
)

var (
	ErrNotWavFile            = fmt.Errorf("%w: not a WAV file", audio.ErrFormat)
	ErrUnsupportedWavLayout  = fmt.Errorf("%w: unsupported WAV layout", audio.ErrFormat)
	ErrOnlyPCM16bitSupported = fmt.Errorf("%w: only PCM 16-bit supported", audio.ErrFormat)
	ErrOnlyMonoSupported     = fmt.Errorf("%w: only mono supported", audio.ErrFormat)
	ErrNoDataChunk           = fmt.Errorf("%w: no data chunk", audio.ErrFormat)
	ErrTruncatedHeader       = fmt.Errorf("%w: truncated WAV header", audio.ErrFormat)
	ErrTruncatedData         = fmt.Errorf("%w: truncated data chunk", audio.ErrFormat)
)
