// SPDX-License-Identifier: EPL-2.0

// Package audio provides the shared building blocks of notepcm.
//
// # Output Configuration
//
// Config describes the signal that gets synthesized and written:
//
//	cfg, err := audio.NewConfig(44100, 16, 1, 2.0)
//	if err != nil {
//	    // invalid sample rate, bit depth, channel count or range
//	}
//	cfg.SamplingInterval() // 1/44100 s
//	cfg.Amplitude()        // 1.0, always Range/2
//	cfg.MaxSampleValue()   // 65535
//
// A Config cannot be changed after construction. DefaultConfig returns the
// 44.1kHz, 16-bit, mono setup with a range of 2.0.
//
// # Sources
//
// Decoded files and synthesized buffers are both read through Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in [-1.0, 1.0]. NewBufferSource wraps the analog output
// of the synthesizer, Resampler changes the rate with cubic interpolation and
// MonoMixer averages channels. ReadAll drains any Source into a slice.
//
// # Registry
//
// Registry maps a format key to a Decoder and/or an Encoder:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.RegisterEncoder("wav", wav.Encoder{})
//	enc, ok := reg.Encoder("wav")
//
// # Error Handling
//
// ReadSamples returns io.EOF once a source is exhausted; n may be non-zero on
// that same call.
package audio
