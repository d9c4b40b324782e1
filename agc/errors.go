// SPDX-License-Identifier: EPL-2.0

package agc

import "errors"

var (
	// ErrFrameSizeMismatch means an engine expects frames of a different size
	// than the processor cuts for the stream's sample rate.
	ErrFrameSizeMismatch = errors.New("engine frame size does not match stream frame size")

	// ErrInvalidConfig is returned for tuning values outside their range.
	ErrInvalidConfig = errors.New("invalid AGC configuration")
)
