// SPDX-License-Identifier: EPL-2.0

package notepcm_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/notepcm"
	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/formats/wav"
	"github.com/ik5/notepcm/note"
)

// Example renders one second of A4 and inspects the file.
func Example() {
	d, err := note.Resolve(note.MustPitch(note.A, note.Natural, 4), 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// four samples per cycle
	cfg, _ := audio.NewConfig(1760, 16, 1, 2.0)

	buf := new(bytes.Buffer)
	if err := notepcm.Render(buf, cfg, []note.Descriptor{d}); err != nil {
		fmt.Println("error:", err)
		return
	}

	h, samples, _ := wav.ReadPCM(buf)
	fmt.Println(h.SampleRate, h.BitsPerSample)
	fmt.Println(samples[0], samples[1], samples[3])
	// Output:
	// 1760 16
	// 32768 65535 0
}

func Example_stageError() {
	bad := note.Descriptor{Frequency: 440, Duration: -1}

	err := notepcm.Render(new(bytes.Buffer), audio.DefaultConfig(), []note.Descriptor{bad})

	var se *notepcm.StageError
	if errors.As(err, &se) {
		fmt.Println("failed at", se.Stage)
	}
	// Output: failed at synthesize
}
