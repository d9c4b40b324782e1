// SPDX-License-Identifier: EPL-2.0

package agc

import (
	"fmt"
	"io"
	"math"

	"github.com/ausocean/utils/logging"
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/utils"
)

// Level tracking constants.
const (
	// levelFloorDBFS is reported for digital silence.
	levelFloorDBFS = -90.0
	// speechMarginDB is how far above the noise floor a frame must be to
	// count as speech.
	speechMarginDB = 10.0
	// noiseRiseDBPerSecond bounds how fast the noise floor estimate climbs.
	noiseRiseDBPerSecond = 1.0
	// speechSmoothing is the weight of a new frame in the speech level.
	speechSmoothing = 0.1
)

// Config is the tuning of the adaptive digital gain. All values are in dB.
type Config struct {
	// HeadroomDB is kept between the speech level and full scale.
	HeadroomDB float64
	// MaxGainDB caps the adaptive gain.
	MaxGainDB float64
	// InitialGainDB is applied until speech has been measured.
	InitialGainDB float64
	// MaxGainChangeDBPerSecond limits how fast the gain may rise or fall.
	MaxGainChangeDBPerSecond float64
	// MaxOutputNoiseLevelDBFS caps the gain so the noise floor stays below it.
	MaxOutputNoiseLevelDBFS float64
	// FixedGainDB is added on top of the adaptive gain.
	FixedGainDB float64
}

// DefaultConfig returns the tuning used by the pipeline.
func DefaultConfig() Config {
	return Config{
		HeadroomDB:               5,
		MaxGainDB:                30,
		InitialGainDB:            10,
		MaxGainChangeDBPerSecond: 5,
		MaxOutputNoiseLevelDBFS:  -50,
		FixedGainDB:              2,
	}
}

// Validate rejects negative limits and an initial gain above the maximum.
func (c Config) Validate() error {
	switch {
	case c.HeadroomDB < 0:
		return fmt.Errorf("%w: headroom %v dB", ErrInvalidConfig, c.HeadroomDB)
	case c.MaxGainDB < 0:
		return fmt.Errorf("%w: max gain %v dB", ErrInvalidConfig, c.MaxGainDB)
	case c.InitialGainDB < 0 || c.InitialGainDB > c.MaxGainDB:
		return fmt.Errorf("%w: initial gain %v dB outside [0, %v]", ErrInvalidConfig, c.InitialGainDB, c.MaxGainDB)
	case c.MaxGainChangeDBPerSecond <= 0:
		return fmt.Errorf("%w: gain change rate %v dB/s", ErrInvalidConfig, c.MaxGainChangeDBPerSecond)
	case c.MaxOutputNoiseLevelDBFS > 0:
		return fmt.Errorf("%w: max output noise %v dBFS", ErrInvalidConfig, c.MaxOutputNoiseLevelDBFS)
	}
	return nil
}

// Controller is an Engine that adapts its gain so speech sits HeadroomDB
// below full scale.
//
// Per frame it measures the RMS and peak level, tracks a noise floor that
// follows drops immediately and rises slowly, and treats frames well above
// that floor as speech. The gain moves towards the speech target by at most
// MaxGainChangeDBPerSecond, except that it drops at once when the frame
// would otherwise clip. The gain change is ramped across the frame.
type Controller struct {
	cfg       Config
	frameSize int
	log       logging.Logger

	maxStepDB   float64
	noiseRiseDB float64

	gainDB     float64 // adaptive part, without FixedGainDB
	noiseDB    float64
	speechDB   float64
	speechSeen bool

	scratch []float64
}

// NewController returns a Controller for 10 ms frames at sampleRate.
// A nil log discards diagnostics.
func NewController(sampleRate int, cfg Config, log logging.Logger) (*Controller, error) {
	if !IsSupportedRate(sampleRate) {
		return nil, fmt.Errorf("%w: %d Hz, want one of %v", audio.ErrUnsupportedRate, sampleRate, SupportedRates)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = discardLogger()
	}

	frameSeconds := FrameDurationMs / 1000.0
	size := FrameSize(sampleRate)

	return &Controller{
		cfg:         cfg,
		frameSize:   size,
		log:         log,
		maxStepDB:   cfg.MaxGainChangeDBPerSecond * frameSeconds,
		noiseRiseDB: noiseRiseDBPerSecond * frameSeconds,
		gainDB:      cfg.InitialGainDB,
		noiseDB:     levelFloorDBFS,
		scratch:     make([]float64, size),
	}, nil
}

// NewFactory returns a Factory building Controllers with cfg.
func NewFactory(cfg Config, log logging.Logger) Factory {
	return func(sampleRate int) (Engine, error) {
		return NewController(sampleRate, cfg, log)
	}
}

func (c *Controller) FrameSize() int { return c.frameSize }

// GainDB is the current adaptive gain, without the fixed gain.
func (c *Controller) GainDB() float64 { return c.gainDB }

// NoiseLevelDBFS is the current noise floor estimate.
func (c *Controller) NoiseLevelDBFS() float64 { return c.noiseDB }

// Process applies gain to frame in place. A frame of the wrong length is
// left untouched and logged.
func (c *Controller) Process(frame []int16) {
	if len(frame) != c.frameSize {
		c.log.Warning("passing through AGC frame with wrong size", "got", len(frame), "want", c.frameSize)
		return
	}

	for i, v := range frame {
		c.scratch[i] = float64(v) / -math.MinInt16
	}

	rms := floats.Norm(c.scratch, 2) / math.Sqrt(float64(len(c.scratch)))
	levelDB := toDBFS(rms)
	peakDB := toDBFS(floats.Norm(c.scratch, math.Inf(1)))

	c.updateLevels(levelDB)

	prev := c.gainDB
	c.gainDB = c.nextGain(peakDB)

	c.apply(frame, prev, c.gainDB)
}

// updateLevels advances the noise floor and the speech level estimates.
func (c *Controller) updateLevels(levelDB float64) {
	c.noiseDB = min(levelDB, c.noiseDB+c.noiseRiseDB)

	if levelDB < c.noiseDB+speechMarginDB {
		return
	}

	if !c.speechSeen {
		c.speechDB = levelDB
		c.speechSeen = true
		return
	}
	c.speechDB += speechSmoothing * (levelDB - c.speechDB)
}

// nextGain is the adaptive gain for the current frame.
func (c *Controller) nextGain(peakDB float64) float64 {
	target := c.gainDB
	if c.speechSeen {
		target = clamp(-c.cfg.HeadroomDB-c.speechDB, 0, c.cfg.MaxGainDB)
	}

	// Amplified noise must stay under the output noise limit.
	target = min(target, max(c.cfg.MaxOutputNoiseLevelDBFS-c.noiseDB, 0))

	gain := c.gainDB + clamp(target-c.gainDB, -c.maxStepDB, c.maxStepDB)

	// Clipping overrides the rate limit.
	if peakDB+gain+c.cfg.FixedGainDB > 0 {
		gain = max(min(gain, -peakDB-c.cfg.FixedGainDB), -c.cfg.FixedGainDB)
	}

	return gain
}

// apply ramps the linear gain from fromDB to toDB over the frame.
func (c *Controller) apply(frame []int16, fromDB, toDB float64) {
	from := dbToLinear(fromDB + c.cfg.FixedGainDB)
	to := dbToLinear(toDB + c.cfg.FixedGainDB)
	n := float64(len(frame))

	for i, v := range frame {
		g := from + (to-from)*float64(i+1)/n
		frame[i] = utils.ClampInt16(int(math.Round(float64(v) * g)))
	}
}

func toDBFS(v float64) float64 {
	if v <= 0 {
		return levelFloorDBFS
	}
	return max(20*math.Log10(v), levelFloorDBFS)
}

func dbToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

func discardLogger() logging.Logger {
	return logging.New(logging.Error, io.Discard, true)
}
