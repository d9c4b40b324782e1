// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audnorm/audio"
)

// chunkHeaderSize is the id + size record that starts every RIFF sub-chunk.
const chunkHeaderSize = 8

// Parse reads a RIFF/WAVE byte stream into a Stream.
//
// The fixed 44-byte header is read first. When the chunk that follows the fmt
// chunk is not "data", Parse skips it by its declared size and reads the next
// chunk header until a data chunk is found. With headerOnly set the sample
// buffer is left empty while Header.DataSize still carries the payload size.
//
// Headers of files that had extra chunks or an extended fmt chunk are
// rewritten to the canonical layout (fmt size 16, ChunkSize = DataSize + 36)
// so that Serialize produces a consistent file.
func Parse(r io.Reader, headerOnly bool) (*audio.Stream, error) {
	buf := make([]byte, audio.HeaderSize)

	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	if n < 12 || !bytes.Equal(buf[0:4], riffID[:]) || !bytes.Equal(buf[8:12], waveID[:]) {
		return nil, ErrNotWavFile
	}

	if n < audio.HeaderSize {
		return nil, ErrTruncatedHeader
	}

	h := decodeHeader(buf)
	if h.SubchunkID != fmtID || h.SubchunkSize < audio.FmtChunkSize {
		return nil, ErrUnsupportedWavLayout
	}

	canonical := true
	cr := r

	// Bytes 36..44 belong to the fmt extension, not to a chunk header.
	if extra := int64(h.SubchunkSize - audio.FmtChunkSize); extra > 0 {
		cr = io.MultiReader(bytes.NewReader(buf[36:]), r)
		if _, err := io.CopyN(io.Discard, cr, extra); err != nil {
			return nil, ErrTruncatedHeader
		}
		if err := readChunkHeader(cr, &h); err != nil {
			return nil, err
		}
		h.SubchunkSize = audio.FmtChunkSize
		canonical = false
	}

	for h.DataID != dataID {
		if _, err := io.CopyN(io.Discard, cr, int64(h.DataSize)); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoDataChunk
			}
			return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
		if err := readChunkHeader(cr, &h); err != nil {
			return nil, err
		}
		canonical = false
	}

	if !canonical {
		h.ChunkSize = h.DataSize + audio.ChunkSizeOverhead
	}

	s := &audio.Stream{Header: h}
	if headerOnly {
		return s, nil
	}

	data, err := io.ReadAll(io.LimitReader(cr, int64(h.DataSize)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	if len(data) < int(h.DataSize) {
		return nil, fmt.Errorf("%w: read %d of %d bytes", ErrTruncatedData, len(data), h.DataSize)
	}

	s.Samples = make([]int16, len(data)/audio.BytesPerSample)
	for i := range s.Samples {
		s.Samples[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}

	return s, nil
}

// readChunkHeader replaces the data chunk id and size of h with the next
// chunk record in r. Running out of input means there is no data chunk.
func readChunkHeader(r io.Reader, h *audio.Header) error {
	var rec [chunkHeaderSize]byte

	if _, err := io.ReadFull(r, rec[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrNoDataChunk
		}
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	copy(h.DataID[:], rec[0:4])
	h.DataSize = binary.LittleEndian.Uint32(rec[4:8])

	return nil
}
