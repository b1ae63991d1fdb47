// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/note"
)

// Defaults applied by Options.withDefaults.
const (
	DefaultRate   = 16000
	DefaultWindow = 16384
)

// Options controls Analyze and Segments. Zero values select the defaults.
type Options struct {
	// Rate the source is resampled to before detection.
	Rate int
	// Window is the number of samples analyzed at once.
	Window int
	// BufferSize used when reading the source.
	BufferSize int
	// Workers bounds concurrent detections in Segments; 0 means one per CPU.
	Workers int
}

func (o Options) withDefaults() Options {
	if o.Rate <= 0 {
		o.Rate = DefaultRate
	}
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	if o.BufferSize <= 0 {
		o.BufferSize = 4096
	}
	return o
}

// Result is the pitch found in one window.
type Result struct {
	Frequency float64
	Pitch     note.Pitch
	Cents     float64
	// Offset of the window in seconds.
	Offset float64
	// Silent is set by Segments for windows without a tone.
	Silent bool
}

func (r Result) String() string {
	if r.Silent {
		return fmt.Sprintf("%.2fs rest", r.Offset)
	}
	return fmt.Sprintf("%.2fs %s %+.0f cents (%.2f Hz)", r.Offset, r.Pitch, r.Cents, r.Frequency)
}

// Prepare resamples src to rate and mixes it down to mono. The returned
// source does not own src; closing src stays with the caller.
func Prepare(src audio.Source, rate int) audio.Source {
	var out audio.Source = src
	if src.SampleRate() != rate {
		out = audio.NewResampler(out, rate)
	}
	if src.Channels() != 1 {
		out = audio.NewMonoMixer(out)
	}
	return out
}

// Analyze detects the pitch at the start of src.
func Analyze(src audio.Source, opts Options) (Result, error) {
	opts = opts.withDefaults()

	samples, err := audio.ReadAll(Prepare(src, opts.Rate), opts.BufferSize, opts.Window)
	if err != nil {
		return Result{}, fmt.Errorf("reading source: %w", err)
	}

	return detect(samples, opts.Rate, 0)
}

// Segments splits src into consecutive windows and detects each one.
// Windows shorter than MinSamples at the end are dropped; silent windows are
// reported with Silent set.
func Segments(src audio.Source, opts Options) ([]Result, error) {
	opts = opts.withDefaults()

	samples, err := audio.ReadAll(Prepare(src, opts.Rate), opts.BufferSize, 0)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	count := len(samples) / opts.Window
	if rest := len(samples) % opts.Window; rest >= MinSamples {
		count++
	}

	results := make([]Result, count)

	var g errgroup.Group
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for i := range count {
		start := i * opts.Window
		end := min(start+opts.Window, len(samples))
		offset := float64(start) / float64(opts.Rate)

		g.Go(func() error {
			r, err := detect(samples[start:end], opts.Rate, offset)
			if errors.Is(err, ErrNoSignal) {
				results[i] = Result{Offset: offset, Silent: true}
				return nil
			}
			if err != nil {
				return fmt.Errorf("window %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func detect(samples []float32, rate int, offset float64) (Result, error) {
	freq, err := DetectFrequency(samples, rate)
	if err != nil {
		return Result{}, err
	}

	p, cents, err := note.Nearest(freq)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrNoSignal, err)
	}

	return Result{Frequency: freq, Pitch: p, Cents: cents, Offset: offset}, nil
}
