// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/formats/wav"
)

func ExampleWrite() {
	samples := []uint32{32768, 65535, 32768, 0}

	buf := new(bytes.Buffer)
	if err := wav.Write(buf, audio.DefaultConfig(), samples); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("bytes:", buf.Len())
	fmt.Printf("% x\n", buf.Bytes()[44:])
	// Output:
	// bytes: 52
	// 00 80 ff ff 00 80 00 00
}

func ExampleReadPCM() {
	cfg, _ := audio.NewConfig(8000, 8, 2, 2.0)

	buf := new(bytes.Buffer)
	_ = wav.Write(buf, cfg, []uint32{10, 20})

	h, samples, err := wav.ReadPCM(buf)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(h.SampleRate, h.NumChannels, h.BitsPerSample, h.DataSize)
	fmt.Println(samples)
	// Output:
	// 8000 2 8 4
	// [10 10 20 20]
}
