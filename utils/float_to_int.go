// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalised sample in [-1, 1] to 16-bit PCM,
// clamping values outside that range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 for both signs keeps +1 from overflowing.
	return int16(x * math.MaxInt16)
}

// ScaleToInt16 converts an integer PCM sample of the given bit depth to
// 16-bit PCM. Eight bit samples follow the WAV convention: unsigned, centred
// on 128.
func ScaleToInt16(v int, bitDepth int) int16 {
	if bitDepth == 8 {
		return int16((v - 128) << 8)
	}
	return ScaleSignedToInt16(v, bitDepth)
}

// ScaleSignedToInt16 converts a signed integer PCM sample of any bit depth
// to 16-bit PCM, as found in AIFF and FLAC.
func ScaleSignedToInt16(v int, bitDepth int) int16 {
	switch {
	case bitDepth > 16:
		return ClampInt16(v >> (bitDepth - 16))
	case bitDepth < 16 && bitDepth > 0:
		return ClampInt16(v << (16 - bitDepth))
	default:
		return ClampInt16(v)
	}
}

// ClampInt16 saturates v to the int16 range.
func ClampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
