// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/formats/aiff"
	"github.com/ik5/audnorm/formats/flac"
	"github.com/ik5/audnorm/formats/mp3"
	"github.com/ik5/audnorm/formats/vorbis"
	"github.com/ik5/audnorm/formats/wav"
)

// DefaultDecoders returns a registry of every in-process decoder keyed by
// file extension.
func DefaultDecoders() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}
