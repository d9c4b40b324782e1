// SPDX-License-Identifier: EPL-2.0

// Package agc applies automatic gain control to mono 16-bit PCM streams.
//
// Gain is adjusted on 10 ms frames, so only sample rates whose frame length is
// a whole number of samples are accepted (SupportedRates). The work is split
// between two pieces:
//
//   - An Engine processes one frame in place and keeps its own state between
//     frames. Controller is the adaptive digital gain engine used by the
//     pipeline, tuned by Config.
//   - A Processor cuts a whole audio.Stream into frames, pads the last one,
//     and feeds them in order to a single engine built by a Factory.
//
// Typical use:
//
//	p := agc.NewProcessor(agc.NewFactory(agc.DefaultConfig(), log),
//	    agc.WithLogger(log))
//	if err := p.ProcessAll(stream); err != nil {
//	    // audio.ErrEmptyInput, audio.ErrUnsupportedRate or ErrFrameSizeMismatch
//	}
//
// Any type with FrameSize and Process methods can stand in for Controller,
// which is how the processor is tested with a passthrough engine.
package agc
