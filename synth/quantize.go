// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/utils"
)

// Quantize maps analog samples in [0, Range] to codes in [0, 2^BitDepth-1].
func Quantize(cfg audio.Config, analog []float64) []uint32 {
	out := make([]uint32, len(analog))
	span := cfg.Range()
	maxValue := cfg.MaxSampleValue()

	for i, x := range analog {
		out[i] = utils.Quantize(x, span, maxValue)
	}

	return out
}
