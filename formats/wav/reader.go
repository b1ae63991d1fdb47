// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
)

// ReadPCM reads a canonical WAV written by Write and returns its header and
// the raw unsigned sample codes, interleaved exactly as stored. No sign or
// bias conversion takes place.
func ReadPCM(r io.Reader) (Header, []uint32, error) {
	raw := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return Header{}, nil, fmt.Errorf("reading header: %w", err)
	}

	h, err := ParseHeader(raw)
	if err != nil {
		return Header{}, nil, err
	}

	width := int(h.BitsPerSample) / 8
	if h.AudioFormat != formatPCM || h.BitsPerSample%8 != 0 || width < 1 || width > 4 {
		return h, nil, fmt.Errorf("%w: format %d, %d bits", ErrOnlyPCMSupported, h.AudioFormat, h.BitsPerSample)
	}

	// the buffer grows with what the stream really holds, not with DataSize
	data, err := io.ReadAll(io.LimitReader(r, int64(h.DataSize)))
	if err != nil {
		return h, nil, fmt.Errorf("reading data: %w", err)
	}
	if len(data) < int(h.DataSize) {
		return h, nil, fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedData, len(data), h.DataSize)
	}

	samples := make([]uint32, len(data)/width)
	for i := range samples {
		var v uint32
		for j := width - 1; j >= 0; j-- {
			v = v<<8 | uint32(data[i*width+j])
		}
		samples[i] = v
	}

	return h, samples, nil
}
