// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"

	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/note"
)

// MaxDataBytes is the largest payload a 32-bit data chunk size can describe
// once the 36 bytes of RIFF header that precede it are counted.
const MaxDataBytes = math.MaxUint32 - 36

// MaxSamples is the number of frames cfg can fit into MaxDataBytes.
func MaxSamples(cfg audio.Config) uint64 {
	return MaxDataBytes / uint64(cfg.BlockAlign())
}

// Synthesize samples every note in order and returns the analog signal.
func Synthesize(cfg audio.Config, notes []note.Descriptor) ([]float64, error) {
	total, err := plan(cfg, notes)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, total)
	for _, d := range notes {
		out = appendNote(out, cfg, d)
	}

	return out, nil
}

// EstimateSamples is ceil(duration/Δt); the actual count may differ by one.
// Estimates beyond math.MaxInt are clamped.
func EstimateSamples(cfg audio.Config, duration float64) int {
	if !(duration > 0) {
		return 0
	}

	n := math.Ceil(duration * float64(cfg.SampleRate()))
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// plan validates notes and sums their estimated sample counts. The sum is
// kept in float64 and checked against MaxSamples before anything is
// allocated.
func plan(cfg audio.Config, notes []note.Descriptor) (int, error) {
	limit := MaxSamples(cfg)
	rate := float64(cfg.SampleRate())

	total := 0.0
	for i, d := range notes {
		if err := check(d); err != nil {
			return 0, fmt.Errorf("note %d: %w", i, err)
		}

		total += math.Ceil(d.Duration * rate)
		if total > float64(limit) {
			return 0, fmt.Errorf("note %d: %w: over %d samples", i, ErrTooManySamples, limit)
		}
	}

	return int(total), nil
}

// appendNote generates the samples of a single note onto dst.
func appendNote(dst []float64, cfg audio.Config, d note.Descriptor) []float64 {
	amplitude := cfg.Amplitude()
	dt := cfg.SamplingInterval()
	omega := d.AngularRate()

	for t := 0.0; t < d.Duration; t += dt {
		dst = append(dst, amplitude*math.Sin(omega*t)+amplitude)
	}

	return dst
}

// check accepts zero durations (no samples) but nothing negative or
// non-finite.
func check(d note.Descriptor) error {
	if d.Duration < 0 || math.IsNaN(d.Duration) || math.IsInf(d.Duration, 0) {
		return fmt.Errorf("%w: duration %v", ErrInvalidDescriptor, d.Duration)
	}
	if d.Frequency < 0 || math.IsNaN(d.Frequency) || math.IsInf(d.Frequency, 0) {
		return fmt.Errorf("%w: frequency %v", ErrInvalidDescriptor, d.Frequency)
	}

	return nil
}
