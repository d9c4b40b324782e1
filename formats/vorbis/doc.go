// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// The decoder yields float samples which are converted to 16-bit PCM with
// utils.Float32ToInt16. Channel count and sample rate come from the stream
// headers.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, audio.ErrFormat)
//	}
//	s, err := audio.ReadAll(src)
package vorbis
