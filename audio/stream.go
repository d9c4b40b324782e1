// SPDX-License-Identifier: EPL-2.0

package audio

// Layout constants of the canonical PCM WAV container.
const (
	// HeaderSize is the size of the fixed RIFF/fmt/data header in bytes.
	HeaderSize = 44
	// ChunkSizeOverhead is the distance between the RIFF chunk size and the
	// data size when the fmt chunk is the only other sub-chunk.
	ChunkSizeOverhead = 36
	// FmtChunkSize is the size of a plain PCM fmt sub-chunk.
	FmtChunkSize = 16
	// BytesPerSample is the width of a signed 16-bit sample.
	BytesPerSample = 2
	// FormatPCM is the WAVE audio format code for integer PCM.
	FormatPCM = 1
)

// Header is the fixed-layout metadata of a PCM WAV container.
type Header struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32  // DataSize + 36
	Format        [4]byte // "WAVE"
	SubchunkID    [4]byte // "fmt "
	SubchunkSize  uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitsPerSample/8
	BlockAlign    uint16 // NumChannels * BitsPerSample/8
	BitsPerSample uint16
	DataID        [4]byte // "data"
	DataSize      uint32  // sample count * BitsPerSample/8
}

// NewHeader returns a canonical mono 16-bit PCM header for sampleCount
// samples at sampleRate.
func NewHeader(sampleRate, sampleCount int) Header {
	h := Header{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		SubchunkID:    [4]byte{'f', 'm', 't', ' '},
		SubchunkSize:  FmtChunkSize,
		AudioFormat:   FormatPCM,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		BlockAlign:    BytesPerSample,
		BitsPerSample: 8 * BytesPerSample,
		DataID:        [4]byte{'d', 'a', 't', 'a'},
	}
	h.setSampleCount(sampleCount)
	return h
}

// Duration is the playing time in seconds described by the header.
// A header without a byte rate has no duration.
func (h Header) Duration() float64 {
	if h.ByteRate == 0 {
		return 0
	}
	return float64(h.DataSize) / float64(h.ByteRate)
}

// setSampleCount recomputes the size and rate fields that depend on the
// sample count and the sample rate.
func (h *Header) setSampleCount(n int) {
	h.DataSize = uint32(n * BytesPerSample)
	h.ChunkSize = h.DataSize + ChunkSizeOverhead
	h.ByteRate = h.SampleRate * uint32(h.NumChannels) * BytesPerSample
}

// Stream is a mono 16-bit PCM buffer together with the container header
// describing it.
type Stream struct {
	Header  Header
	Samples []int16
}

// NewStream wraps samples recorded at sampleRate in a canonical header.
func NewStream(sampleRate int, samples []int16) *Stream {
	return &Stream{
		Header:  NewHeader(sampleRate, len(samples)),
		Samples: samples,
	}
}

// SampleRate of the stream in Hz.
func (s *Stream) SampleRate() int { return int(s.Header.SampleRate) }

// Duration in seconds, derived from the header.
func (s *Stream) Duration() float64 { return s.Header.Duration() }
