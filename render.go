// SPDX-License-Identifier: EPL-2.0

package notepcm

import (
	"fmt"
	"io"

	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/formats/aiff"
	"github.com/ik5/notepcm/formats/mp3"
	"github.com/ik5/notepcm/formats/vorbis"
	"github.com/ik5/notepcm/formats/wav"
	"github.com/ik5/notepcm/note"
	"github.com/ik5/notepcm/score"
	"github.com/ik5/notepcm/synth"
)

type options struct {
	workers int
}

// Option tunes a render call.
type Option func(*options)

// WithWorkers synthesizes notes on up to n goroutines. Values below 2 keep
// synthesis sequential.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// NewRegistry returns a registry with every decoder and encoder of this module.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	reg.RegisterEncoder("wav", wav.Encoder{})
	reg.RegisterEncoder("aiff", aiff.Encoder{})
	reg.RegisterEncoder("aif", aiff.Encoder{})

	return reg
}

// Render synthesizes notes and writes them to w as a WAV file.
func Render(w io.Writer, cfg audio.Config, notes []note.Descriptor, opts ...Option) error {
	samples, err := pcm(cfg, notes, opts)
	if err != nil {
		return err
	}

	return stageErr(StageWrite, wav.Write(w, cfg, samples))
}

// RenderWith is Render for any encoder.
func RenderWith(enc audio.Encoder, w io.WriteSeeker, cfg audio.Config, notes []note.Descriptor, opts ...Option) error {
	samples, err := pcm(cfg, notes, opts)
	if err != nil {
		return err
	}

	return stageErr(StageWrite, enc.Encode(w, cfg, samples))
}

// RenderScore renders sc in the format it names, using the encoders of reg.
func RenderScore(w io.WriteSeeker, sc *score.Score, reg *audio.Registry, opts ...Option) error {
	cfg, err := sc.Config()
	if err != nil {
		return stageErr(StageResolve, err)
	}

	notes, err := sc.Descriptors()
	if err != nil {
		return stageErr(StageResolve, err)
	}

	format := sc.OutputFormat()
	enc, ok := reg.Encoder(format)
	if !ok {
		return stageErr(StageResolve, fmt.Errorf("%w: %q", ErrUnknownFormat, format))
	}

	return RenderWith(enc, w, cfg, notes, opts...)
}

// pcm runs the synthesize and quantize stages.
func pcm(cfg audio.Config, notes []note.Descriptor, opts []Option) ([]uint32, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var (
		analog []float64
		err    error
	)
	if o.workers > 1 {
		analog, err = synth.SynthesizeParallel(cfg, notes, o.workers)
	} else {
		analog, err = synth.Synthesize(cfg, notes)
	}
	if err != nil {
		return nil, stageErr(StageSynthesize, err)
	}

	if size := uint64(len(analog)) * uint64(cfg.BlockAlign()); size > synth.MaxDataBytes {
		return nil, stageErr(StageQuantize, fmt.Errorf("%w: %d samples", ErrTooManySamples, len(analog)))
	}

	return synth.Quantize(cfg, analog), nil
}
