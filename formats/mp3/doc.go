// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit little-endian PCM, so the
// returned audio.Source reports two channels regardless of the file. Use
// audio.ReadAll to collect it as a mono stream:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, audio.ErrFormat)
//	}
//	s, err := audio.ReadAll(src)
//
// Only decoding is supported.
package mp3
