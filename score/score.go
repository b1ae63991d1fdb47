// SPDX-License-Identifier: EPL-2.0

package score

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/note"
)

// DefaultFormat is used when a score names no output format.
const DefaultFormat = "wav"

// Score is a rendering job: output parameters plus the notes to play, in
// order. Zero output fields fall back to audio.DefaultConfig.
type Score struct {
	SampleRate int     `yaml:"sample_rate,omitempty"`
	BitDepth   int     `yaml:"bit_depth,omitempty"`
	Channels   int     `yaml:"channels,omitempty"`
	Range      float64 `yaml:"range,omitempty"`
	Format     string  `yaml:"format,omitempty"`
	Notes      []Entry `yaml:"notes"`
}

// Entry is one note of a score. Exactly one of Pitch, Frequency or Rest
// must be set.
type Entry struct {
	Pitch     string  `yaml:"pitch,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"`
	Rest      bool    `yaml:"rest,omitempty"`
	Duration  float64 `yaml:"duration"`
}

// Load decodes a YAML score. Unknown keys are rejected.
func Load(r io.Reader) (*Score, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Score
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScore
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidScore, err)
	}

	return &sc, nil
}

// LoadFile reads the score stored at path.
func LoadFile(path string) (*Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening score: %w", err)
	}
	defer f.Close()

	sc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Config builds the audio configuration of the score.
func (s *Score) Config() (audio.Config, error) {
	def := audio.DefaultConfig()

	rate := orDefault(s.SampleRate, def.SampleRate())
	bits := orDefault(s.BitDepth, def.BitDepth())
	channels := orDefault(s.Channels, def.Channels())
	span := s.Range
	if span == 0 {
		span = def.Range()
	}

	cfg, err := audio.NewConfig(rate, bits, channels, span)
	if err != nil {
		return audio.Config{}, fmt.Errorf("%w: %w", ErrInvalidScore, err)
	}

	return cfg, nil
}

// OutputFormat is the lower-cased format key, DefaultFormat when unset.
func (s *Score) OutputFormat() string {
	if f := strings.ToLower(strings.TrimSpace(s.Format)); f != "" {
		return f
	}
	return DefaultFormat
}

// Descriptors resolves every entry. Errors name the zero-based entry index.
func (s *Score) Descriptors() ([]note.Descriptor, error) {
	out := make([]note.Descriptor, 0, len(s.Notes))

	for i, e := range s.Notes {
		d, err := e.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		out = append(out, d)
	}

	return out, nil
}

// Duration is the sum of all entry durations in seconds.
func (s *Score) Duration() float64 {
	var total float64
	for _, e := range s.Notes {
		total += e.Duration
	}
	return total
}

// Descriptor resolves a single entry.
func (e Entry) Descriptor() (note.Descriptor, error) {
	set := 0
	if e.Pitch != "" {
		set++
	}
	if e.Frequency != 0 {
		set++
	}
	if e.Rest {
		set++
	}
	if set != 1 {
		return note.Descriptor{}, fmt.Errorf("%w: need exactly one of pitch, frequency or rest", ErrInvalidEntry)
	}

	switch {
	case e.Rest:
		return note.Rest(e.Duration)
	case e.Frequency != 0:
		return note.ResolveRaw(e.Frequency, e.Duration)
	}

	p, err := note.ParsePitch(e.Pitch)
	if err != nil {
		return note.Descriptor{}, err
	}

	return note.Resolve(p, e.Duration)
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
