// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/utils"
)

// frameParser is the part of flac.Stream the source needs, to allow testing.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     frameParser
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int
	pending    []int16 // interleaved values of the current frame not yet read
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *source) ReadPCM(dst []int16) (int, error) {
	n := 0

	for n < len(dst) {
		if len(s.pending) == 0 {
			if err := s.nextFrame(); err != nil {
				if n > 0 && errors.Is(err, io.EOF) {
					return n, nil
				}
				return n, err
			}
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	return n, nil
}

// nextFrame decodes one FLAC frame into s.pending.
func (s *source) nextFrame() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("%w: %w", ErrCorruptStream, err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream has %d", ErrCorruptStream, len(f.Subframes), s.channels)
	}

	block := int(f.BlockSize)
	buf := make([]int16, 0, block*s.channels)

	for i := range block {
		for ch := range s.channels {
			buf = append(buf, utils.ScaleSignedToInt16(int(f.Subframes[ch].Samples[i]), s.bitDepth))
		}
	}

	s.pending = buf

	return nil
}

// Decoder decodes FLAC streams with github.com/mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, ErrNotFlacFile
	}

	return &source{
		stream:     stream,
		closer:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
