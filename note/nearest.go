// SPDX-License-Identifier: EPL-2.0

package note

import (
	"fmt"
	"math"
)

// chromatic spelling used by Nearest, sharps only
var chromatic = [semitonesPerOctave]struct {
	letter     Letter
	accidental Accidental
}{
	{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
	{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
}

// Nearest returns the equal-tempered pitch closest to frequency and how far
// off frequency is from it, in cents (-50..+50).
func Nearest(frequency float64) (Pitch, float64, error) {
	if !positiveFinite(frequency) {
		return Pitch{}, 0, fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}

	semitones := semitonesPerOctave * math.Log2(frequency/ReferenceFrequency)
	rounded := math.Round(semitones)
	cents := 100 * (semitones - rounded)

	// semitones from C0
	fromC0 := int(rounded) + ReferenceOctave*semitonesPerOctave + 9
	if fromC0 < 0 {
		return Pitch{}, 0, fmt.Errorf("%w: %v Hz is below C0", ErrInvalidFrequency, frequency)
	}

	name := chromatic[fromC0%semitonesPerOctave]
	p := Pitch{Letter: name.letter, Accidental: name.accidental, Octave: fromC0 / semitonesPerOctave}

	return p, cents, nil
}
