// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/notepcm/audio"
)

func TestNewHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		bits     int
		channels int
		n        int
		want     Header
	}{
		{
			name: "cd mono", rate: 44100, bits: 16, channels: 1, n: 100,
			want: Header{ChunkSize: 236, AudioFormat: 1, NumChannels: 1, SampleRate: 44100, ByteRate: 88200, BlockAlign: 2, BitsPerSample: 16, DataSize: 200},
		},
		{
			name: "8 bit stereo", rate: 8000, bits: 8, channels: 2, n: 10,
			want: Header{ChunkSize: 56, AudioFormat: 1, NumChannels: 2, SampleRate: 8000, ByteRate: 16000, BlockAlign: 2, BitsPerSample: 8, DataSize: 20},
		},
		{
			name: "24 bit", rate: 48000, bits: 24, channels: 1, n: 0,
			want: Header{ChunkSize: 36, AudioFormat: 1, NumChannels: 1, SampleRate: 48000, ByteRate: 144000, BlockAlign: 3, BitsPerSample: 24, DataSize: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := NewHeader(mustConfig(t, tt.rate, tt.bits, tt.channels), tt.n)
			if err != nil {
				t.Fatalf("NewHeader() error = %v", err)
			}
			if h != tt.want {
				t.Errorf("NewHeader() = %+v, want %+v", h, tt.want)
			}
			if h.NumSamples() != tt.n {
				t.Errorf("NumSamples() = %d, want %d", h.NumSamples(), tt.n)
			}
		})
	}
}

func TestNewHeader_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewHeader(audio.DefaultConfig(), -1); !errors.Is(err, ErrDataTooLarge) {
		t.Errorf("negative count error = %v, want ErrDataTooLarge", err)
	}

	// 32-bit stereo frames are 8 bytes; 2^29 of them exceed the uint32 size field.
	cfg := mustConfig(t, 44100, 32, 2)
	if _, err := NewHeader(cfg, 1<<29); !errors.Is(err, ErrDataTooLarge) {
		t.Errorf("oversized error = %v, want ErrDataTooLarge", err)
	}
}

func TestHeader_MarshalParse(t *testing.T) {
	t.Parallel()

	h, err := NewHeader(mustConfig(t, 22050, 24, 2), 321)
	if err != nil {
		t.Fatalf("NewHeader() error = %v", err)
	}

	raw, err := h.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(raw) != HeaderSize {
		t.Fatalf("len(raw) = %d, want %d", len(raw), HeaderSize)
	}

	back, err := ParseHeader(raw)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if back != h {
		t.Errorf("ParseHeader() = %+v, want %+v", back, h)
	}
}

func TestHeader_AppendBinary(t *testing.T) {
	t.Parallel()

	h, err := NewHeader(mustConfig(t, 8000, 16, 2), 10)
	if err != nil {
		t.Fatalf("NewHeader() error = %v", err)
	}

	prefix := []byte("xyz")
	got, err := h.AppendBinary(prefix)
	if err != nil {
		t.Fatalf("AppendBinary() error = %v", err)
	}

	want, _ := h.MarshalBinary()
	if string(got[:3]) != "xyz" || string(got[3:]) != string(want) {
		t.Errorf("AppendBinary() = %x, want xyz followed by %x", got, want)
	}
}

func TestParseHeader_Errors(t *testing.T) {
	t.Parallel()

	good, err := Header{AudioFormat: 1, NumChannels: 1, BlockAlign: 2, BitsPerSample: 16}.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	corrupt := func(offset int, b ...byte) []byte {
		out := append([]byte(nil), good...)
		copy(out[offset:], b)
		return out
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short", good[:20], ErrNotWavFile},
		{"no riff", corrupt(0, 'R', 'I', 'F', 'X'), ErrNotWavFile},
		{"no wave", corrupt(8, 'A', 'V', 'I', ' '), ErrNotWavFile},
		{"fmt tag", corrupt(12, 'j', 'u', 'n', 'k'), ErrUnsupportedWavLayout},
		{"fmt size", corrupt(16, 18), ErrUnsupportedWavLayout},
		{"no data", corrupt(36, 'L', 'I', 'S', 'T'), ErrUnsupportedWavChunks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := ParseHeader(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("ParseHeader() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHeader_Config(t *testing.T) {
	t.Parallel()

	h := Header{AudioFormat: 3, NumChannels: 1, SampleRate: 44100, BitsPerSample: 32}
	if _, err := h.Config(2); !errors.Is(err, ErrOnlyPCMSupported) {
		t.Errorf("float header error = %v, want ErrOnlyPCMSupported", err)
	}

	h = Header{AudioFormat: 1, NumChannels: 1, SampleRate: 44100, BitsPerSample: 12}
	if _, err := h.Config(2); !errors.Is(err, audio.ErrInvalidBitDepth) {
		t.Errorf("12-bit header error = %v, want audio.ErrInvalidBitDepth", err)
	}
}

func TestNewHeader_WidestConfigs(t *testing.T) {
	t.Parallel()

	for _, cfg := range []audio.Config{
		mustConfig(t, math.MaxUint32, 8, 1),
		mustConfig(t, 8000, 8, math.MaxUint16),
		mustConfig(t, 8000, 32, math.MaxUint16/4),
	} {
		h, err := NewHeader(cfg, 1)
		if err != nil {
			t.Fatalf("NewHeader(%v) error = %v", cfg, err)
		}

		got, err := h.Config(cfg.Range())
		if err != nil {
			t.Fatalf("Config() error = %v", err)
		}
		if got != cfg {
			t.Errorf("header %+v decodes to %v, want %v", h, got, cfg)
		}
		if int(h.ByteRate) != cfg.ByteRate() || int(h.BlockAlign) != cfg.BlockAlign() {
			t.Errorf("header %+v disagrees with %v", h, cfg)
		}
	}
}
