// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"fmt"
	"io"

	"github.com/ausocean/utils/logging"

	"github.com/ik5/audnorm/agc"
	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/transcode"
)

// DefaultTargetRate is the rate streams are normalized to unless configured
// otherwise.
const DefaultTargetRate = 48000

// Mode selects the pipeline path.
type Mode string

const (
	// ModeRaw parses a PCM WAV input, resamples it, applies gain and writes
	// a PCM WAV output.
	ModeRaw Mode = "raw"
	// ModeTranscode validates the WAV input header and lets an external
	// transcoder decode the input and encode the output.
	ModeTranscode Mode = "transcode"
	// ModeDecode decodes any registered container in process and writes a
	// PCM WAV output.
	ModeDecode Mode = "decode"
)

// ParseMode accepts the names of the modes.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeRaw, ModeTranscode, ModeDecode:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// Config describes one pipeline run.
type Config struct {
	Input  string
	Output string
	Mode   Mode

	// TargetRate is the output rate in raw and decode mode and the rate
	// ffmpeg decodes to in transcode mode. It must be one of
	// agc.SupportedRates.
	TargetRate int

	// Transcoder is required in transcode mode.
	Transcoder transcode.Transcoder

	// NewEngine builds the gain engine for each stream.
	NewEngine agc.Factory

	// Decoders maps input extensions to decoders in decode mode.
	Decoders *audio.Registry

	Logger   logging.Logger
	Progress agc.ProgressFunc
}

// Validate fills in defaults and rejects configurations that cannot run.
func (c *Config) Validate() error {
	if c.Input == "" || c.Output == "" {
		return fmt.Errorf("%w: input and output paths are required", ErrInvalidConfig)
	}

	if c.Mode == "" {
		c.Mode = ModeRaw
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}

	if c.TargetRate == 0 {
		c.TargetRate = DefaultTargetRate
	}
	if !agc.IsSupportedRate(c.TargetRate) {
		return fmt.Errorf("%w: target rate %d Hz, want one of %v", ErrInvalidConfig, c.TargetRate, agc.SupportedRates)
	}

	if c.Mode == ModeTranscode && c.Transcoder == nil {
		return fmt.Errorf("%w: transcode mode needs a transcoder", ErrInvalidConfig)
	}

	if c.Logger == nil {
		c.Logger = logging.New(logging.Error, io.Discard, true)
	}
	if c.NewEngine == nil {
		c.NewEngine = agc.NewFactory(agc.DefaultConfig(), c.Logger)
	}
	if c.Decoders == nil {
		c.Decoders = DefaultDecoders()
	}

	return nil
}
