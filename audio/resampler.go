// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audnorm/utils"
)

// Resample converts s to targetRate in place using linear interpolation.
//
// The new buffer holds ceil(n * targetRate / sourceRate) samples. Output sample
// i maps to source position i * sourceRate / targetRate and is interpolated
// between its two neighbours; past the last source sample the nearest sample
// is repeated. No anti-aliasing filter is applied.
//
// On success the header's SampleRate, DataSize, ChunkSize and ByteRate are
// updated together with the samples. On failure s is left untouched.
func Resample(s *Stream, targetRate int) error {
	if s.SampleRate() == targetRate {
		return nil
	}

	if targetRate <= 0 || s.Header.SampleRate == 0 {
		return fmt.Errorf("%w: cannot resample from %d Hz to %d Hz", ErrUnsupportedRate, s.Header.SampleRate, targetRate)
	}

	if len(s.Samples) == 0 {
		return fmt.Errorf("%w: nothing to resample", ErrEmptyInput)
	}

	out := resampleLinear(s.Samples, int64(s.Header.SampleRate), int64(targetRate))

	h := s.Header
	h.SampleRate = uint32(targetRate)
	h.setSampleCount(len(out))

	s.Header = h
	s.Samples = out

	return nil
}

// ResampledLength is the number of samples Resample produces for n samples
// going from srcRate to dstRate.
func ResampledLength(n, srcRate, dstRate int) int {
	if srcRate <= 0 || dstRate <= 0 {
		return 0
	}
	return int((int64(n)*int64(dstRate) + int64(srcRate) - 1) / int64(srcRate))
}

// resampleLinear works on exact integer positions: for output index i the
// source position is i*src/dst, split into its integer index and remainder.
func resampleLinear(in []int16, src, dst int64) []int16 {
	n := ResampledLength(len(in), int(src), int(dst))
	out := make([]int16, n)
	last := int64(len(in) - 1)

	for i := range out {
		num := int64(i) * src
		idx := num / dst

		if idx >= last {
			out[i] = in[last]
			continue
		}

		frac := float64(num%dst) / float64(dst)
		out[i] = utils.LerpInt16(in[idx], in[idx+1], frac)
	}

	return out
}
