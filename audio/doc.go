// SPDX-License-Identifier: EPL-2.0

// Package audio holds the in-memory data model of the normalisation pipeline
// and the primitives that operate on it.
//
// # Data Model
//
// A Stream is a mono signed 16-bit PCM buffer plus the fixed 44-byte WAV
// Header that describes it. The header fields that depend on the buffer obey:
//
//	ByteRate  = SampleRate * NumChannels * 2
//	DataSize  = len(Samples) * 2
//	ChunkSize = DataSize + 36
//
// Any operation that replaces the samples of a Stream restores these before
// returning. Duration is always derived from the header (DataSize / ByteRate).
//
// # Resampling
//
// Resample converts a Stream to a new rate with linear interpolation:
//
//	s := audio.NewStream(8000, samples)
//	if err := audio.Resample(s, 48000); err != nil {
//	    return err
//	}
//
// The output length is ceil(n * dst / src). There is no anti-aliasing
// filter, and output positions past the last input sample repeat it.
//
// # Sources
//
// Format decoders produce a Source of interleaved 16-bit PCM. MonoMixer
// averages channels and ReadAll drains a Source into a Stream:
//
//	registry := audio.NewRegistry()
//	registry.Register("mp3", mp3.Decoder{})
//	dec, _ := registry.Get(".mp3")
//	src, _ := dec.Decode(file)
//	s, err := audio.ReadAll(src)
//
// # Error Handling
//
// The pipeline classifies failures with four sentinels:
//   - ErrFormat: malformed or unrecognised container
//   - ErrIO: a file, pipe or decoder could not be read or written
//   - ErrUnsupportedRate: a sample rate the stage cannot handle
//   - ErrEmptyInput: no samples to process
//
// Errors returned by this module wrap one of them, so callers use errors.Is.
package audio
