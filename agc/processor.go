// SPDX-License-Identifier: EPL-2.0

package agc

import (
	"fmt"
	"time"

	"github.com/ausocean/utils/logging"

	"github.com/ik5/audnorm/audio"
)

// ProgressFunc is called after every frame with the number of samples
// processed so far and the total.
type ProgressFunc func(done, total int)

// Processor cuts a stream into frames and runs them through one Engine.
type Processor struct {
	newEngine Factory
	log       logging.Logger
	progress  ProgressFunc
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger used for timing information.
func WithLogger(l logging.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithProgress registers fn to be called after every frame.
func WithProgress(fn ProgressFunc) Option {
	return func(p *Processor) { p.progress = fn }
}

// NewProcessor returns a Processor that builds a fresh engine with factory
// for every stream.
func NewProcessor(factory Factory, opts ...Option) *Processor {
	p := &Processor{
		newEngine: factory,
		log:       discardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessAll replaces the samples of s with their gain-adjusted version.
//
// The stream is cut into consecutive frames of FrameSize samples which are
// handed to a single engine in order. A short final frame is zero-padded for
// the engine and only its real samples are kept. The header is not touched.
// On error s is left unchanged.
func (p *Processor) ProcessAll(s *audio.Stream) error {
	total := len(s.Samples)
	if total == 0 {
		return fmt.Errorf("%w: no samples to process", audio.ErrEmptyInput)
	}

	rate := s.SampleRate()
	if !IsSupportedRate(rate) {
		return fmt.Errorf("%w: %d Hz, want one of %v", audio.ErrUnsupportedRate, rate, SupportedRates)
	}

	size := FrameSize(rate)

	eng, err := p.newEngine(rate)
	if err != nil {
		return fmt.Errorf("creating AGC engine: %w", err)
	}
	if eng.FrameSize() != size {
		return fmt.Errorf("%w: engine wants %d samples, %d Hz needs %d", ErrFrameSizeMismatch, eng.FrameSize(), rate, size)
	}

	p.log.Info("processing frames", "rate", rate, "frameSize", size, "samples", total)
	start := time.Now()

	out := make([]int16, total)
	frame := make([]int16, size)
	frames := 0

	for off := 0; off < total; off += size {
		n := copy(frame, s.Samples[off:min(off+size, total)])
		clear(frame[n:])

		eng.Process(frame)

		copy(out[off:off+n], frame[:n])
		frames++

		if p.progress != nil {
			p.progress(off+n, total)
		}
	}

	s.Samples = out

	p.log.Info("frames processed", "frames", frames, "elapsed", time.Since(start).String())

	return nil
}
