// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/audnorm/agc"
	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/formats/wav"
)

// Run executes one pipeline pass over cfg.Input and writes cfg.Output.
// Nothing is retried. On error no output file is left behind by the
// failing run.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := time.Now()
	cfg.Logger.Info("starting", "mode", string(cfg.Mode), "input", cfg.Input, "output", cfg.Output, "rate", cfg.TargetRate)

	var err error
	switch cfg.Mode {
	case ModeTranscode:
		err = runTranscode(ctx, cfg)
	case ModeDecode:
		err = runDecode(cfg)
	default:
		err = runRaw(cfg)
	}
	if err != nil {
		cfg.Logger.Error("pipeline failed", "mode", string(cfg.Mode), "error", err.Error())
		return err
	}

	cfg.Logger.Info("done", "output", cfg.Output, "elapsed", time.Since(start).String())

	return nil
}

// runRaw: parse, resample, process, serialize.
func runRaw(cfg Config) error {
	s, err := wav.ReadFile(cfg.Input, false)
	if err != nil {
		return err
	}

	if err := wav.CheckPCM16Mono(s.Header); err != nil {
		return err
	}

	if err := resample(cfg, s); err != nil {
		return err
	}

	if err := newProcessor(cfg).ProcessAll(s); err != nil {
		return err
	}

	return wav.WriteFile(cfg.Output, s)
}

// runTranscode: header-only parse, external decode, process, external encode.
func runTranscode(ctx context.Context, cfg Config) error {
	hdr, err := wav.ReadFile(cfg.Input, true)
	if err != nil {
		return err
	}

	duration := hdr.Duration()
	maxSamples := int(math.Ceil(duration * float64(cfg.TargetRate)))
	cfg.Logger.Debug("input header", "duration", duration, "maxSamples", maxSamples)

	samples, err := cfg.Transcoder.Decode(ctx, cfg.Input, cfg.TargetRate, maxSamples)
	if err != nil {
		return err
	}

	s := audio.NewStream(cfg.TargetRate, samples)

	if err := newProcessor(cfg).ProcessAll(s); err != nil {
		return err
	}

	return cfg.Transcoder.Encode(ctx, cfg.Output, s.SampleRate(), s.Samples)
}

// runDecode: in-process decode by extension, down-mix, then the raw path tail.
func runDecode(cfg Config) error {
	ext := filepath.Ext(cfg.Input)

	dec, ok := cfg.Decoders.Get(ext)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedContainer, ext)
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return err
	}
	defer src.Close()

	cfg.Logger.Debug("decoding", "rate", src.SampleRate(), "channels", src.Channels())

	s, err := ResampleToMono16(src, cfg.TargetRate)
	if err != nil {
		return err
	}
	cfg.Logger.Info("decoded", "from", src.SampleRate(), "to", s.SampleRate(), "samples", len(s.Samples))

	if err := newProcessor(cfg).ProcessAll(s); err != nil {
		return err
	}

	return wav.WriteFile(cfg.Output, s)
}

func resample(cfg Config, s *audio.Stream) error {
	from := s.SampleRate()
	if err := audio.Resample(s, cfg.TargetRate); err != nil {
		return err
	}

	if from != cfg.TargetRate {
		cfg.Logger.Info("resampled", "from", from, "to", cfg.TargetRate, "samples", len(s.Samples))
	}

	return nil
}

func newProcessor(cfg Config) *agc.Processor {
	return agc.NewProcessor(cfg.NewEngine,
		agc.WithLogger(cfg.Logger),
		agc.WithProgress(cfg.Progress),
	)
}
