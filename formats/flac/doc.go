// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC files with github.com/mewkiz/flac.
//
// Frames are decoded one at a time and interleaved into 16-bit PCM. Samples
// deeper than 16 bits lose their low bits.
//
//	src, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, audio.ErrFormat)
//	}
//	defer src.Close()
//	s, err := audio.ReadAll(src)
package flac
