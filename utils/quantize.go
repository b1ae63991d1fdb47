// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Clamp limits x to [lo, hi]. NaN becomes lo.
func Clamp(x, lo, hi float64) float64 {
	if x >= hi {
		return hi
	}
	if x > lo {
		return x
	}
	// x <= lo or NaN
	return lo
}

// Quantize maps x in [0, span] to an unsigned code in [0, maxValue].
// The scaled value is rounded half away from zero; inputs outside the span
// clamp to the nearest end instead of wrapping.
func Quantize(x, span float64, maxValue uint32) uint32 {
	scaled := Clamp(x/span, 0, 1) * float64(maxValue)
	return uint32(math.Round(scaled))
}
