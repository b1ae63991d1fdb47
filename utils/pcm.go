// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns the magnitude that maps a signed sample of bitDepth bits
// onto [-1, 1]. Unknown depths fall back to 16-bit.
func FullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntToFloat32 normalizes a signed PCM value of bitDepth bits to [-1, 1].
func IntToFloat32(v int, bitDepth int) float32 {
	f := float32(v) / FullScale(bitDepth)
	if f > 1 {
		return 1
	}
	if f < -1 {
		return -1
	}
	return f
}

// Int16LE decodes a little-endian signed 16-bit sample.
func Int16LE(b []byte) int16 {
	_ = b[1]
	return int16(uint16(b[0]) | uint16(b[1])<<8)
}
