// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audnorm/audio"
)

// writeChunkSamples is the number of samples encoded per Write call.
const writeChunkSamples = 8192

// Serialize writes the 44-byte header of s verbatim followed by its samples
// as little-endian 16-bit PCM. No pad byte or extra chunk is written.
func Serialize(w io.Writer, s *audio.Stream) error {
	if _, err := w.Write(encodeHeader(s.Header)); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	if len(s.Samples) == 0 {
		return nil
	}

	buf := make([]byte, 2*min(len(s.Samples), writeChunkSamples))

	for i := 0; i < len(s.Samples); i += writeChunkSamples {
		chunk := s.Samples[i:min(i+writeChunkSamples, len(s.Samples))]
		buf = buf[:2*len(chunk)]

		for j, v := range chunk {
			binary.LittleEndian.PutUint16(buf[2*j:], uint16(v))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return Serialize(w, audio.NewStream(sampleRate, samples))
}
