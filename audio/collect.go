// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	// readBufSize is the number of mono samples pulled per ReadPCM call.
	readBufSize = 4096
	// maxEmptyReads is how many reads in a row may return nothing before the
	// source is considered stuck.
	maxEmptyReads = 100
)

// ReadAll drains src through a MonoMixer and returns the collected samples
// as a Stream at the source's sample rate. src is not closed.
func ReadAll(src Source) (*Stream, error) {
	mono := NewMonoMixer(src)

	var pcm []int16
	buf := make([]int16, readBufSize)
	empty := 0

	for {
		n, err := mono.ReadPCM(buf)
		if n > 0 {
			pcm = append(pcm, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return nil, fmt.Errorf("%w: %w", ErrIO, io.ErrNoProgress)
		}
	}

	return NewStream(src.SampleRate(), pcm), nil
}
