// SPDX-License-Identifier: EPL-2.0

package utils

// LerpInt16 interpolates between a and b, frac being the distance from a
// (0 <= frac < 1). The result is truncated toward zero.
func LerpInt16(a, b int16, frac float64) int16 {
	return int16(float64(a) + frac*float64(int32(b)-int32(a)))
}
