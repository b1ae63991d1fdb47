// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/notepcm/audio"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header.
	HeaderSize = 44

	formatPCM     = 1
	fmtChunkSize  = 16
	riffOverhead  = 36 // ChunkSize = riffOverhead + DataSize
	maxDataLength = math.MaxUint32 - riffOverhead
)

var (
	tagRIFF = []byte("RIFF")
	tagWAVE = []byte("WAVE")
	tagFmt  = []byte("fmt ")
	tagData = []byte("data")
)

// Header holds the numeric fields of a single-subchunk PCM WAV header.
// The four-character tags are implied.
type Header struct {
	ChunkSize     uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// NewHeader computes the header for numSamples frames written with cfg.
func NewHeader(cfg audio.Config, numSamples int) (Header, error) {
	if numSamples < 0 {
		return Header{}, fmt.Errorf("%w: negative sample count %d", ErrDataTooLarge, numSamples)
	}

	dataSize := uint64(numSamples) * uint64(cfg.BlockAlign())
	if dataSize > maxDataLength {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrDataTooLarge, dataSize)
	}

	return Header{
		ChunkSize:     riffOverhead + uint32(dataSize),
		AudioFormat:   formatPCM,
		NumChannels:   uint16(cfg.Channels()),
		SampleRate:    uint32(cfg.SampleRate()),
		ByteRate:      uint32(cfg.ByteRate()),
		BlockAlign:    uint16(cfg.BlockAlign()),
		BitsPerSample: uint16(cfg.BitDepth()),
		DataSize:      uint32(dataSize),
	}, nil
}

// AppendBinary appends the 44 header bytes to b. It never fails; the error
// is there for encoding.BinaryAppender.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	return h.appendTo(b), nil
}

func (h Header) MarshalBinary() ([]byte, error) {
	return h.appendTo(make([]byte, 0, HeaderSize)), nil
}

func (h Header) appendTo(b []byte) []byte {
	b = append(b, tagRIFF...)
	b = binary.LittleEndian.AppendUint32(b, h.ChunkSize)
	b = append(b, tagWAVE...)

	b = append(b, tagFmt...)
	b = binary.LittleEndian.AppendUint32(b, fmtChunkSize)
	b = binary.LittleEndian.AppendUint16(b, h.AudioFormat)
	b = binary.LittleEndian.AppendUint16(b, h.NumChannels)
	b = binary.LittleEndian.AppendUint32(b, h.SampleRate)
	b = binary.LittleEndian.AppendUint32(b, h.ByteRate)
	b = binary.LittleEndian.AppendUint16(b, h.BlockAlign)
	b = binary.LittleEndian.AppendUint16(b, h.BitsPerSample)

	b = append(b, tagData...)
	b = binary.LittleEndian.AppendUint32(b, h.DataSize)

	return b
}

// ParseHeader decodes a canonical 44-byte header.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header is %d bytes", ErrNotWavFile, len(b))
	}

	if !bytes.Equal(b[0:4], tagRIFF) || !bytes.Equal(b[8:12], tagWAVE) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.Equal(b[12:16], tagFmt) || binary.LittleEndian.Uint32(b[16:20]) != fmtChunkSize {
		return Header{}, ErrUnsupportedWavLayout
	}

	if !bytes.Equal(b[36:40], tagData) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return Header{
		ChunkSize:     binary.LittleEndian.Uint32(b[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(b[20:22]),
		NumChannels:   binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(b[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(b[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}, nil
}

// NumSamples is the number of frames in the data chunk.
func (h Header) NumSamples() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize / uint32(h.BlockAlign))
}

// Config rebuilds the audio.Config the file was written with. The analog
// span is not stored in WAV files, so it has to be supplied.
func (h Header) Config(span float64) (audio.Config, error) {
	if h.AudioFormat != formatPCM {
		return audio.Config{}, fmt.Errorf("%w: audio format %d", ErrOnlyPCMSupported, h.AudioFormat)
	}

	cfg, err := audio.NewConfig(int(h.SampleRate), int(h.BitsPerSample), int(h.NumChannels), span)
	if err != nil {
		return audio.Config{}, fmt.Errorf("wav header: %w", err)
	}

	return cfg, nil
}
