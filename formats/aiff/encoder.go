// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/notepcm/audio"
)

// Write encodes samples as uncompressed AIFF described by cfg.
//
// AIFF stores signed big-endian integers, so each unsigned code is moved
// down by half the code range: the bias value becomes zero. Frames are
// repeated on every channel like the WAV writer does.
func Write(w io.WriteSeeker, cfg audio.Config, samples []uint32) error {
	maxValue := cfg.MaxSampleValue()
	for i, s := range samples {
		if s > maxValue {
			return fmt.Errorf("%w: sample %d is %d, max %d", ErrSampleOutOfRange, i, s, maxValue)
		}
	}

	channels := cfg.Channels()
	bias := int64(1) << (cfg.BitDepth() - 1)

	data := make([]int, 0, len(samples)*channels)
	for _, s := range samples {
		v := int(int64(s) - bias)
		for range channels {
			data = append(data, v)
		}
	}

	enc := goaiff.NewEncoder(w, cfg.SampleRate(), cfg.BitDepth(), channels)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  cfg.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: cfg.BitDepth(),
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding aiff: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing aiff: %w", err)
	}

	return nil
}

// WriteFile creates path and writes the AIFF into it. The file is removed
// again when encoding fails.
func WriteFile(path string, cfg audio.Config, samples []uint32) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating aiff file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
				err = errors.Join(err, rerr)
			}
		}
	}()

	return Write(f, cfg, samples)
}

// Encoder writes AIFF through the audio.Encoder interface.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, cfg audio.Config, samples []uint32) error {
	return Write(w, cfg, samples)
}
