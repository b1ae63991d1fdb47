// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	ErrInvalidSampleRate = errors.New("sample rate must be positive and fit in 32 bits")
	ErrInvalidBitDepth   = errors.New("bit depth must be one of 8, 16, 24 or 32")
	ErrInvalidChannels   = errors.New("channel count must be positive and frames at most 65535 bytes")
	ErrInvalidByteRate   = errors.New("byte rate must fit in 32 bits")
	ErrInvalidRange      = errors.New("signal range must be a positive finite number")
)
