// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV containers.
//
// # Canonical Codec
//
// Parse and Serialize handle the canonical layout used throughout the
// pipeline: a 44-byte RIFF/fmt/data header followed by mono signed 16-bit
// little-endian samples.
//
//	s, err := wav.ReadFile("in.wav", false)
//	if err != nil {
//	    // errors.Is(err, audio.ErrFormat) for bad containers
//	}
//	err = wav.WriteFile("out.wav", s)
//
// The header is decoded field by field from a byte buffer. Chunks between
// the fmt chunk and the data chunk (LIST, fact, ...) are skipped by their
// declared size. Passing headerOnly to Parse stops after the data chunk
// header, which is enough to validate a file and learn its duration.
//
// Serialize writes the header verbatim, so parsing a canonical file and
// serializing it again reproduces it byte for byte. WriteFile goes through a
// temporary file and a rename, so no partial output is left behind on error.
//
// # Decoder
//
// Decoder is an audio.Source decoder backed by github.com/go-audio/wav. It
// accepts 8, 16, 24 and 32-bit integer PCM with any channel count and is used
// when a file has to be decoded rather than copied through the canonical
// codec.
//
//	src, err := wav.Decoder{}.Decode(file)
//	s, err := audio.ReadAll(src)
//
// # Error Handling
//
// Every error returned for a malformed file wraps audio.ErrFormat:
//   - ErrNotWavFile: missing RIFF or WAVE marker
//   - ErrUnsupportedWavLayout: no fmt chunk where expected
//   - ErrNoDataChunk: the input ended before a data chunk
//   - ErrTruncatedHeader, ErrTruncatedData: the input ended early
//   - ErrOnlyPCM16bitSupported, ErrOnlyMonoSupported: payload checks
//
// Failures to open, read or write files wrap audio.ErrIO.
package wav
