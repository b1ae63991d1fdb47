// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/note"
)

// SynthesizeParallel renders notes on up to workers goroutines and joins the
// parts in the original order. The result equals Synthesize.
func SynthesizeParallel(cfg audio.Config, notes []note.Descriptor, workers int) ([]float64, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}

	if _, err := plan(cfg, notes); err != nil {
		return nil, err
	}

	parts := make([][]float64, len(notes))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, d := range notes {
		g.Go(func() error {
			parts[i] = appendNote(make([]float64, 0, EstimateSamples(cfg, d.Duration)+1), cfg, d)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}

	out := make([]float64, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out, nil
}
