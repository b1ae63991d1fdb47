// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Defaults used by DefaultConfig.
const (
	DefaultSampleRate = 44100
	DefaultBitDepth   = 16
	DefaultChannels   = 1
	DefaultRange      = 2.0
)

// Config describes the output signal: how often it is sampled, how wide each
// quantized sample is, how many channels are written and the peak-to-peak
// span of the analog signal before quantization.
//
// A Config is immutable; build one with NewConfig or DefaultConfig.
type Config struct {
	sampleRate int
	bitDepth   int
	channels   int
	span       float64
}

// NewConfig validates its arguments and returns a Config.
func NewConfig(sampleRate, bitDepth, channels int, span float64) (Config, error) {
	if sampleRate <= 0 || uint64(sampleRate) > math.MaxUint32 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidBitDepth, bitDepth)
	}

	if channels <= 0 || channels > math.MaxUint16 {
		return Config{}, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	// header fields are 16 and 32 bits wide
	blockAlign := uint64(channels) * uint64(bitDepth/8)
	if blockAlign > math.MaxUint16 {
		return Config{}, fmt.Errorf("%w: %d channels need %d byte frames", ErrInvalidChannels, channels, blockAlign)
	}
	if byteRate := uint64(sampleRate) * blockAlign; byteRate > math.MaxUint32 {
		return Config{}, fmt.Errorf("%w: %d Hz at %d bytes per frame", ErrInvalidByteRate, sampleRate, blockAlign)
	}

	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidRange, span)
	}

	return Config{
		sampleRate: sampleRate,
		bitDepth:   bitDepth,
		channels:   channels,
		span:       span,
	}, nil
}

// DefaultConfig is 44.1kHz, 16-bit, mono with a signal range of 2.0.
func DefaultConfig() Config {
	return Config{
		sampleRate: DefaultSampleRate,
		bitDepth:   DefaultBitDepth,
		channels:   DefaultChannels,
		span:       DefaultRange,
	}
}

func (c Config) SampleRate() int { return c.sampleRate }
func (c Config) BitDepth() int   { return c.bitDepth }
func (c Config) Channels() int   { return c.channels }

// Range is the peak-to-peak span of the analog signal.
func (c Config) Range() float64 { return c.span }

// Amplitude is always Range/2.
func (c Config) Amplitude() float64 { return c.span / 2 }

// SamplingInterval is the time between two samples in seconds.
func (c Config) SamplingInterval() float64 { return 1 / float64(c.sampleRate) }

// MaxSampleValue is the largest quantized value, 2^BitDepth - 1.
func (c Config) MaxSampleValue() uint32 {
	return uint32(uint64(1)<<c.bitDepth - 1)
}

// BytesPerSample is the width of a single quantized sample.
func (c Config) BytesPerSample() int { return c.bitDepth / 8 }

// BlockAlign is the size of one frame (one sample for every channel).
func (c Config) BlockAlign() int { return c.channels * c.BytesPerSample() }

// ByteRate is the number of bytes per second of audio.
func (c Config) ByteRate() int { return c.sampleRate * c.BlockAlign() }

func (c Config) String() string {
	return fmt.Sprintf("%d Hz, %d-bit, %d ch, range %g", c.sampleRate, c.bitDepth, c.channels, c.span)
}
