// SPDX-License-Identifier: EPL-2.0

package note

import "errors"

var (
	ErrInvalidLetter     = errors.New("invalid note letter")
	ErrInvalidAccidental = errors.New("invalid accidental")
	ErrInvalidOctave     = errors.New("octave must not be negative")
	ErrInvalidPitch      = errors.New("invalid pitch notation")
	ErrInvalidFrequency  = errors.New("frequency must be a positive finite number")
	ErrInvalidDuration   = errors.New("duration must be a positive finite number")
)
