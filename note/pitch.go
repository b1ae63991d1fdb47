// SPDX-License-Identifier: EPL-2.0

package note

import (
	"fmt"
	"strconv"
)

// Reference pitch of the equal-tempered scale: A4 at 440 Hz.
const (
	ReferenceLetter    = A
	ReferenceOctave    = 4
	ReferenceFrequency = 440.0

	semitonesPerOctave = 12
)

// Letter is one of the seven diatonic note names.
type Letter uint8

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// semitone offset of each letter from A in the same octave
var letterOffsets = [...]int{
	C: -9,
	D: -7,
	E: -5,
	F: -4,
	G: -2,
	A: 0,
	B: 2,
}

var letterNames = [...]string{C: "C", D: "D", E: "E", F: "F", G: "G", A: "A", B: "B"}

func (l Letter) Valid() bool { return int(l) < len(letterOffsets) }

// Offset is the distance in semitones from A within the same octave.
func (l Letter) Offset() int { return letterOffsets[l] }

func (l Letter) String() string {
	if !l.Valid() {
		return "Letter(" + strconv.Itoa(int(l)) + ")"
	}
	return letterNames[l]
}

// ParseLetter accepts upper or lower case note names.
func ParseLetter(s string) (Letter, error) {
	if len(s) == 1 {
		c := s[0]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		for l, name := range letterNames {
			if name[0] == c {
				return Letter(l), nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
}

// Accidental raises or lowers a letter by one semitone.
type Accidental int8

const (
	Natural Accidental = 0
	Sharp   Accidental = 1
	Flat    Accidental = -1
)

func (a Accidental) Valid() bool { return a >= Flat && a <= Sharp }

// Offset is the semitone shift of the accidental.
func (a Accidental) Offset() int { return int(a) }

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case Flat:
		return "b"
	case Natural:
		return ""
	default:
		return "Accidental(" + strconv.Itoa(int(a)) + ")"
	}
}

// Pitch is a letter, an optional accidental and an octave.
type Pitch struct {
	Letter     Letter
	Accidental Accidental
	Octave     int
}

// NewPitch validates its arguments. Use Natural for no accidental.
func NewPitch(letter Letter, accidental Accidental, octave int) (Pitch, error) {
	if !letter.Valid() {
		return Pitch{}, fmt.Errorf("%w: %d", ErrInvalidLetter, letter)
	}
	if !accidental.Valid() {
		return Pitch{}, fmt.Errorf("%w: %d", ErrInvalidAccidental, accidental)
	}
	if octave < 0 {
		return Pitch{}, fmt.Errorf("%w: %d", ErrInvalidOctave, octave)
	}

	return Pitch{Letter: letter, Accidental: accidental, Octave: octave}, nil
}

// MustPitch is NewPitch that panics; meant for literals.
func MustPitch(letter Letter, accidental Accidental, octave int) Pitch {
	p, err := NewPitch(letter, accidental, octave)
	if err != nil {
		panic(err)
	}
	return p
}

// Distance is the number of semitones from A4. Lower octaves give more
// negative distances.
func (p Pitch) Distance() int {
	octaveDistance := ReferenceOctave - p.Octave
	return p.Letter.Offset() - semitonesPerOctave*octaveDistance + p.Accidental.Offset()
}

func (p Pitch) String() string {
	return p.Letter.String() + p.Accidental.String() + strconv.Itoa(p.Octave)
}

// ParsePitch reads names such as "C4", "F#3" or "Bb5".
func ParsePitch(s string) (Pitch, error) {
	if len(s) < 2 {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}

	letter, err := ParseLetter(s[:1])
	if err != nil {
		return Pitch{}, err
	}

	rest := s[1:]
	accidental := Natural
	switch rest[0] {
	case '#':
		accidental = Sharp
		rest = rest[1:]
	case 'b':
		accidental = Flat
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil || rest == "" || rest[0] == '+' || rest[0] == '-' {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidPitch, s)
	}

	return NewPitch(letter, accidental, octave)
}
