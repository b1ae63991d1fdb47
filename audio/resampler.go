// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/notepcm/utils"
)

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// When downsampling, a one-pole low-pass runs over every fetched frame.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames advanced per output frame
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window [4][]float32
	filled [4]bool
	primed bool
	eof    bool

	// fractional position between window[1] and window[2]
	pos float64

	frameBuf []float32

	lowPass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frameBuf: make([]float32, channels),
		lowPass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame reads one frame from the source into dst.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.frameBuf)
	got := n > 0
	if got {
		copy(dst, r.frameBuf[:n])
	}

	if errors.Is(err, io.EOF) {
		r.eof = true
		return got, nil
	}
	if err != nil {
		return got, fmt.Errorf("reading source frame: %w", err)
	}

	return got, nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.lowPass {
		return
	}
	for c := range r.channels {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
		r.state[c] = frame[c]
	}
}

// prime loads the first frames into window[1..3]. window[0] stays unfilled
// until the first advance, so the first output lands on source frame 0.
func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < len(r.window); i++ {
		got, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		if got {
			r.filled[i] = true
			if i == 1 && r.lowPass {
				copy(r.state, r.window[1])
			} else {
				r.filter(r.window[i])
			}
		}

		if r.eof {
			if i == 1 && !got {
				return io.EOF
			}
			last := i
			if !got {
				last = i - 1
			}
			for j := last + 1; j < len(r.window); j++ {
				copy(r.window[j], r.window[last])
			}
			return nil
		}
	}

	return nil
}

// advance shifts the window by one source frame. Past the end of the source
// the last frame is held, unfilled, so the tail can still be interpolated.
func (r *Resampler) advance() error {
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	if r.eof {
		r.filled[3] = false
		return nil
	}

	got, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	r.filled[3] = got
	if got {
		r.filter(r.window[3])
	} else {
		copy(r.window[3], r.window[2])
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			y0 := r.window[1][c]
			if r.filled[0] {
				y0 = r.window[0][c]
			}
			y3 := r.window[2][c]
			if r.filled[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, r.window[1][c], r.window[2][c], y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
