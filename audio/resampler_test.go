// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/internal/audiotest"
)

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		srcRate  int
		dstRate  int
		frames   int
		channels int
	}{
		{"downsample 44.1k to 16k", 44100, 16000, 44100, 1},
		{"downsample stereo 48k to 8k", 48000, 8000, 48000, 2},
		{"upsample 8k to 16k", 8000, 16000, 8000, 1},
		{"same rate", 16000, 16000, 16000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.srcRate, tt.channels, tt.frames, 440)
			r := audio.NewResampler(src, tt.dstRate)

			if r.SampleRate() != tt.dstRate || r.Channels() != tt.channels {
				t.Errorf("got %d Hz / %d ch", r.SampleRate(), r.Channels())
			}

			out, err := audio.ReadAll(r, 512, 0)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			wantFrames := float64(tt.frames) * float64(tt.dstRate) / float64(tt.srcRate)
			gotFrames := float64(len(out) / tt.channels)
			if math.Abs(gotFrames-wantFrames) > 4 {
				t.Errorf("got %v frames, want about %v", gotFrames, wantFrames)
			}
		})
	}
}

func TestResampler_PreservesDC(t *testing.T) {
	t.Parallel()

	for _, dst := range []int{8000, 22050, 96000} {
		src := audiotest.NewConstantSource(44100, 1, 4410, 0.5)

		out, err := audio.ReadAll(audio.NewResampler(src, dst), 256, 0)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		for i, v := range out {
			if math.Abs(float64(v)-0.5) > 1e-5 {
				t.Fatalf("%d Hz: out[%d] = %v, want 0.5", dst, i, v)
			}
		}
	}
}

func TestResampler_UpsampledSineStaysSine(t *testing.T) {
	t.Parallel()

	const freq = 100.0
	src := audiotest.NewSineSource(8000, 1, 8000, freq)

	out, err := audio.ReadAll(audio.NewResampler(src, 32000), 1024, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	for i := 0; i < len(out)-8; i++ {
		want := math.Sin(2 * math.Pi * freq * float64(i) / 32000)
		if math.Abs(float64(out[i])-want) > 1e-3 {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
}

func TestResampler_Errors(t *testing.T) {
	t.Parallel()

	r := audio.NewResampler(audiotest.NewSilentSource(8000, 2, 100), 16000)
	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("odd dst error = %v, want ErrInvalidDstSize", err)
	}

	failing := audiotest.NewSineSource(8000, 1, 1000, 440).FailAfter(10)
	_, err := audio.ReadAll(audio.NewResampler(failing, 16000), 64, 0)
	if !errors.Is(err, audiotest.ErrInjected) {
		t.Errorf("ReadAll() error = %v, want injected failure", err)
	}

	empty := audio.NewResampler(audiotest.NewSilentSource(8000, 1, 0), 16000)
	out, err := audio.ReadAll(empty, 64, 0)
	if err != nil || len(out) != 0 {
		t.Errorf("empty source = %d samples, %v", len(out), err)
	}

	if err := empty.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		r := audio.NewResampler(audiotest.NewSineSource(44100, 2, 44100, 440), 16000)
		for {
			if _, err := r.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
