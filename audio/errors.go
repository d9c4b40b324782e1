// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// Error kinds shared by every stage of the pipeline. Specific errors in other
// packages wrap one of these so callers can classify failures with errors.Is.
var (
	ErrFormat          = errors.New("invalid audio container")
	ErrIO              = errors.New("audio I/O failure")
	ErrUnsupportedRate = errors.New("unsupported sample rate")
	ErrEmptyInput      = errors.New("no audio samples")
)
