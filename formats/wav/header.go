// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"

	"github.com/ik5/audnorm/audio"
)

var (
	riffID = [4]byte{'R', 'I', 'F', 'F'}
	waveID = [4]byte{'W', 'A', 'V', 'E'}
	fmtID  = [4]byte{'f', 'm', 't', ' '}
	dataID = [4]byte{'d', 'a', 't', 'a'}
)

// decodeHeader reads the canonical 44-byte layout field by field.
// b must hold at least audio.HeaderSize bytes.
func decodeHeader(b []byte) audio.Header {
	var h audio.Header

	copy(h.ChunkID[:], b[0:4])
	h.ChunkSize = binary.LittleEndian.Uint32(b[4:8])
	copy(h.Format[:], b[8:12])

	copy(h.SubchunkID[:], b[12:16])
	h.SubchunkSize = binary.LittleEndian.Uint32(b[16:20])
	h.AudioFormat = binary.LittleEndian.Uint16(b[20:22])
	h.NumChannels = binary.LittleEndian.Uint16(b[22:24])
	h.SampleRate = binary.LittleEndian.Uint32(b[24:28])
	h.ByteRate = binary.LittleEndian.Uint32(b[28:32])
	h.BlockAlign = binary.LittleEndian.Uint16(b[32:34])
	h.BitsPerSample = binary.LittleEndian.Uint16(b[34:36])

	copy(h.DataID[:], b[36:40])
	h.DataSize = binary.LittleEndian.Uint32(b[40:44])

	return h
}

// encodeHeader is the inverse of decodeHeader.
func encodeHeader(h audio.Header) []byte {
	b := make([]byte, audio.HeaderSize)

	copy(b[0:4], h.ChunkID[:])
	binary.LittleEndian.PutUint32(b[4:8], h.ChunkSize)
	copy(b[8:12], h.Format[:])

	copy(b[12:16], h.SubchunkID[:])
	binary.LittleEndian.PutUint32(b[16:20], h.SubchunkSize)
	binary.LittleEndian.PutUint16(b[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(b[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(b[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(b[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(b[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(b[34:36], h.BitsPerSample)

	copy(b[36:40], h.DataID[:])
	binary.LittleEndian.PutUint32(b[40:44], h.DataSize)

	return b
}

// CheckPCM16Mono rejects headers whose payload is not mono signed 16-bit PCM.
func CheckPCM16Mono(h audio.Header) error {
	if h.AudioFormat != audio.FormatPCM || h.BitsPerSample != 16 {
		return ErrOnlyPCM16bitSupported
	}
	if h.NumChannels != 1 {
		return ErrOnlyMonoSupported
	}
	return nil
}
