// SPDX-License-Identifier: EPL-2.0

package audio

// MonoMixer down-mixes a multi-channel Source by averaging the channels of
// every frame. Mono sources pass through untouched.
//
// Values of a frame split across two source reads are held back until the
// frame is complete. An incomplete frame at the end of the stream is dropped.
type MonoMixer struct {
	src     Source
	tmp     []int16
	pending []int16
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]int16, 8192),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) Close() error    { return m.src.Close() }

// ReadPCM fills dst with up to len(dst) mono samples.
func (m *MonoMixer) ReadPCM(dst []int16) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels <= 1 {
		return m.src.ReadPCM(dst)
	}

	needed := len(dst) * channels
	if cap(m.tmp) < needed {
		m.tmp = make([]int16, needed)
	}
	m.tmp = m.tmp[:needed]

	held := copy(m.tmp, m.pending)
	n, err := m.src.ReadPCM(m.tmp[held:])
	total := held + n
	frames := total / channels

	for f := range frames {
		base := f * channels
		sum := 0
		for c := range channels {
			sum += int(m.tmp[base+c])
		}
		dst[f] = int16(sum / channels)
	}

	m.pending = append(m.pending[:0], m.tmp[frames*channels:total]...)

	return frames, err
}
