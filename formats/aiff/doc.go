// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files with github.com/go-audio/aiff.
//
// Uncompressed 8, 16, 24 and 32-bit integer PCM is accepted at any channel
// count. Samples are scaled to 16 bits: deeper samples lose their low bits,
// 8-bit samples are shifted up. Compressed AIFF-C variants are rejected.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, audio.ErrFormat)
//	}
//	s, err := audio.ReadAll(src)
//
// go-audio needs an io.ReadSeeker. Other readers are buffered in memory
// before decoding.
package aiff
