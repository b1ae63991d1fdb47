// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

var (
	// ErrTooShort is returned when fewer than MinSamples samples are available.
	ErrTooShort = errors.New("not enough samples to detect a pitch")

	// ErrNoSignal is returned for silent input or when no peak lies in the
	// searched frequency band.
	ErrNoSignal = errors.New("no tonal signal found")

	ErrInvalidRate = errors.New("sample rate must be positive")
)
