// SPDX-License-Identifier: EPL-2.0

package note

import (
	"fmt"
	"math"
)

// Descriptor is a playable note: a frequency in Hz held for Duration seconds.
// A zero Frequency marks a rest.
type Descriptor struct {
	Frequency float64
	Duration  float64
}

// Resolve converts a pitch to its equal-tempered frequency,
// 440 * 2^(distance/12).
func Resolve(p Pitch, duration float64) (Descriptor, error) {
	if !p.Letter.Valid() {
		return Descriptor{}, fmt.Errorf("%w: %d", ErrInvalidLetter, p.Letter)
	}
	if !p.Accidental.Valid() {
		return Descriptor{}, fmt.Errorf("%w: %d", ErrInvalidAccidental, p.Accidental)
	}
	if p.Octave < 0 {
		return Descriptor{}, fmt.Errorf("%w: %d", ErrInvalidOctave, p.Octave)
	}

	return ResolveRaw(Frequency(p), duration)
}

// ResolveRaw builds a descriptor straight from a frequency.
func ResolveRaw(frequency, duration float64) (Descriptor, error) {
	if !positiveFinite(frequency) {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}
	if !positiveFinite(duration) {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}

	return Descriptor{Frequency: frequency, Duration: duration}, nil
}

// Rest is silence lasting duration seconds.
func Rest(duration float64) (Descriptor, error) {
	if !positiveFinite(duration) {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}

	return Descriptor{Duration: duration}, nil
}

// Frequency of p in Hz.
func Frequency(p Pitch) float64 {
	distance := p.Distance()
	if distance == 0 {
		return ReferenceFrequency
	}
	return ReferenceFrequency * math.Pow(2, float64(distance)/semitonesPerOctave)
}

func (d Descriptor) IsRest() bool { return d.Frequency == 0 }

// Period is the length of one cycle in seconds, zero for rests.
func (d Descriptor) Period() float64 {
	if d.IsRest() {
		return 0
	}
	return 1 / d.Frequency
}

// AngularRate is the sine argument coefficient 2π/period, derived from the
// descriptor's own frequency.
func (d Descriptor) AngularRate() float64 {
	if d.IsRest() {
		return 0
	}
	return 2 * math.Pi / d.Period()
}

// Validate reports whether d could have come from Resolve, ResolveRaw or Rest.
func (d Descriptor) Validate() error {
	if !positiveFinite(d.Duration) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, d.Duration)
	}
	if !d.IsRest() && !positiveFinite(d.Frequency) {
		return fmt.Errorf("%w: %v", ErrInvalidFrequency, d.Frequency)
	}

	return nil
}

func (d Descriptor) String() string {
	if d.IsRest() {
		return fmt.Sprintf("rest %gs", d.Duration)
	}
	return fmt.Sprintf("%.3f Hz %gs", d.Frequency, d.Duration)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
