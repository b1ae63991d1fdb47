// SPDX-License-Identifier: EPL-2.0

package analysis_test

import (
	"fmt"

	"github.com/ik5/notepcm/analysis"
	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/note"
	"github.com/ik5/notepcm/synth"
)

func ExampleAnalyze() {
	cfg := audio.DefaultConfig()

	d, _ := note.Resolve(note.MustPitch(note.E, note.Natural, 5), 0.5)
	analog, _ := synth.Synthesize(cfg, []note.Descriptor{d})

	res, err := analysis.Analyze(audio.NewBufferSource(cfg, analog), analysis.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Pitch)
	// Output: E5
}
