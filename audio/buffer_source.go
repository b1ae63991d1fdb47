// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// BufferSource exposes synthesized analog samples as a mono Source.
//
// Analog samples live in [0, Range]; they are re-centred around the
// amplitude and scaled so that reads yield values in [-1, 1].
type BufferSource struct {
	sampleRate int
	amplitude  float64
	samples    []float64
	pos        int
}

func NewBufferSource(cfg Config, analog []float64) *BufferSource {
	return &BufferSource{
		sampleRate: cfg.SampleRate(),
		amplitude:  cfg.Amplitude(),
		samples:    analog,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return 1 }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Len is the number of samples not read yet.
func (b *BufferSource) Len() int { return len(b.samples) - b.pos }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := min(len(dst), len(b.samples)-b.pos)
	for i := range n {
		v := (b.samples[b.pos+i] - b.amplitude) / b.amplitude
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		dst[i] = float32(v)
	}
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}
