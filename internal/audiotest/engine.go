// SPDX-License-Identifier: EPL-2.0

package audiotest

// PassthroughEngine is a gain-of-one AGC engine. It satisfies agc.Engine and
// records every frame it is handed.
type PassthroughEngine struct {
	Size   int
	Frames [][]int16
}

// NewPassthroughEngine returns an engine expecting frames of size samples.
func NewPassthroughEngine(size int) *PassthroughEngine {
	return &PassthroughEngine{Size: size}
}

func (e *PassthroughEngine) FrameSize() int { return e.Size }

func (e *PassthroughEngine) Process(frame []int16) {
	e.Frames = append(e.Frames, append([]int16(nil), frame...))
}

// OffsetEngine adds a running counter to every sample, so the output depends
// on the order in which frames arrive.
type OffsetEngine struct {
	Size  int
	calls int16
}

func (e *OffsetEngine) FrameSize() int { return e.Size }

func (e *OffsetEngine) Process(frame []int16) {
	e.calls++
	for i := range frame {
		frame[i] += e.calls
	}
}
