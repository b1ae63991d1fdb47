// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes uncompressed AIFF files through
// github.com/go-audio/aiff.
//
// Write takes the same unsigned codes as the WAV writer and stores them as
// the signed big-endian integers AIFF expects, subtracting half of the code
// range first. A rendered tone therefore sounds the same in both formats.
//
//	cfg := audio.DefaultConfig()
//	err := aiff.WriteFile("scale.aiff", cfg, samples)
//
// The Decoder returns an audio.Source with float32 samples in [-1, 1] for 8,
// 16, 24 and 32-bit files. AIFF-C is not supported.
package aiff
