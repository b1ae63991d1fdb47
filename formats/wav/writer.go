// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/notepcm/audio"
)

// Write serializes samples as a PCM WAV file described by cfg.
//
// Each sample is one frame; it is repeated once per channel. The header sizes
// are derived from len(samples). Everything is validated and buffered before
// w sees a single byte, and the whole file reaches w in one Write call.
func Write(w io.Writer, cfg audio.Config, samples []uint32) error {
	h, err := NewHeader(cfg, len(samples))
	if err != nil {
		return err
	}

	maxValue := cfg.MaxSampleValue()
	for i, s := range samples {
		if s > maxValue {
			return fmt.Errorf("%w: sample %d is %d, max %d", ErrSampleOutOfRange, i, s, maxValue)
		}
	}

	buf := h.appendTo(make([]byte, 0, HeaderSize+int(h.DataSize)))
	buf = appendSamples(buf, samples, cfg.BytesPerSample(), cfg.Channels())

	n, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("writing %d bytes of WAV: %w", len(buf), err)
	}
	if n != len(buf) {
		return fmt.Errorf("writing WAV: %w (%d of %d bytes)", io.ErrShortWrite, n, len(buf))
	}

	return nil
}

// WriteFile creates path and writes the WAV into it. On failure the partial
// file is removed.
func WriteFile(path string, cfg audio.Config, samples []uint32) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			err = errors.Join(err, removeIfExists(path))
		}
	}()

	return Write(f, cfg, samples)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing partial file: %w", err)
	}
	return nil
}

// appendSamples writes every sample as a little-endian integer of width
// bytes, channels times.
func appendSamples(b []byte, samples []uint32, width, channels int) []byte {
	for _, s := range samples {
		for range channels {
			switch width {
			case 1:
				b = append(b, byte(s))
			case 2:
				b = binary.LittleEndian.AppendUint16(b, uint16(s))
			case 3:
				b = append(b, byte(s), byte(s>>8), byte(s>>16))
			default:
				b = binary.LittleEndian.AppendUint32(b, s)
			}
		}
	}

	return b
}

// Encoder writes WAV through the audio.Encoder interface.
type Encoder struct{}

func (Encoder) Encode(w io.WriteSeeker, cfg audio.Config, samples []uint32) error {
	return Write(w, cfg, samples)
}
