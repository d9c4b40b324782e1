// SPDX-License-Identifier: EPL-2.0

package agc

import "slices"

// FrameDurationMs is the length of every processed frame.
const FrameDurationMs = 10

// SupportedRates lists the sample rates a stream must have to be processed.
var SupportedRates = []int{8000, 16000, 32000, 48000}

// IsSupportedRate reports whether rate is one of SupportedRates.
func IsSupportedRate(rate int) bool {
	return slices.Contains(SupportedRates, rate)
}

// FrameSize is the number of mono samples in one frame at rate.
func FrameSize(rate int) int {
	return rate / 1000 * FrameDurationMs
}

// Engine applies gain to fixed-size frames of mono 16-bit PCM in place.
//
// An engine keeps state between calls, so one instance has to see every
// frame of a stream in order. Process must leave a frame of the wrong length
// untouched.
type Engine interface {
	// FrameSize is the only frame length Process accepts.
	FrameSize() int
	Process(frame []int16)
}

// Factory builds an Engine bound to a sample rate.
type Factory func(sampleRate int) (Engine, error)
