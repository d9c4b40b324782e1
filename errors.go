// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"errors"
	"fmt"

	"github.com/ik5/audnorm/audio"
)

var (
	// ErrUnsupportedContainer is returned in decode mode for an input whose
	// extension has no registered decoder.
	ErrUnsupportedContainer = fmt.Errorf("%w: no decoder for container", audio.ErrFormat)

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
)
