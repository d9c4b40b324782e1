// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// Chunk is a RIFF sub-chunk inserted between the fmt and data chunks.
type Chunk struct {
	ID   string
	Data []byte
}

// WAVSpec describes a WAV file to build byte by byte.
type WAVSpec struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	AudioFormat   int
	FmtExtra      []byte  // appended to the fmt chunk, growing its size
	Extra         []Chunk // chunks placed before the data chunk
	Samples       []int16
}

// PCM16 returns samples as little-endian bytes.
func PCM16(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out
}

// CanonicalWAV builds a 44-byte-header mono 16-bit PCM WAV file.
func CanonicalWAV(sampleRate int, samples []int16) []byte {
	return BuildWAV(WAVSpec{SampleRate: sampleRate, Samples: samples})
}

// BuildWAV assembles a RIFF/WAVE byte stream from spec. Zero values default
// to mono 16-bit PCM.
func BuildWAV(spec WAVSpec) []byte {
	channels := uint16(max(spec.Channels, 1))
	bits := uint16(spec.BitsPerSample)
	if bits == 0 {
		bits = 16
	}
	format := uint16(spec.AudioFormat)
	if format == 0 {
		format = 1
	}

	data := PCM16(spec.Samples)
	byteRate := uint32(spec.SampleRate) * uint32(channels) * uint32(bits/8)
	blockAlign := channels * (bits / 8)

	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	body.WriteString("fmt ")
	binary.Write(body, binary.LittleEndian, uint32(16+len(spec.FmtExtra)))
	binary.Write(body, binary.LittleEndian, format)
	binary.Write(body, binary.LittleEndian, channels)
	binary.Write(body, binary.LittleEndian, uint32(spec.SampleRate))
	binary.Write(body, binary.LittleEndian, byteRate)
	binary.Write(body, binary.LittleEndian, blockAlign)
	binary.Write(body, binary.LittleEndian, bits)
	body.Write(spec.FmtExtra)

	for _, c := range spec.Extra {
		body.WriteString(c.ID)
		binary.Write(body, binary.LittleEndian, uint32(len(c.Data)))
		body.Write(c.Data)
	}

	body.WriteString("data")
	binary.Write(body, binary.LittleEndian, uint32(len(data)))
	body.Write(data)

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}
