// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/notepcm/audio"
	"github.com/ik5/notepcm/note"
)

func resolve(t *testing.T, name string, duration float64) note.Descriptor {
	t.Helper()

	p, err := note.ParsePitch(name)
	require.NoError(t, err)
	d, err := note.Resolve(p, duration)
	require.NoError(t, err)

	return d
}

func TestSynthesize_ZeroDuration(t *testing.T) {
	t.Parallel()

	out, err := Synthesize(audio.DefaultConfig(), []note.Descriptor{{Frequency: 440, Duration: 0}})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSynthesize_NoNotes(t *testing.T) {
	t.Parallel()

	out, err := Synthesize(audio.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSynthesize_SampleCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate     int
		duration float64
	}{
		{44100, 1.0},
		{44100, 0.5},
		{44100, 0.0123},
		{8000, 2.0},
		{48000, 0.3},
		{22050, 1.0 / 3},
	}

	for _, tt := range tests {
		cfg, err := audio.NewConfig(tt.rate, 16, 1, 2.0)
		require.NoError(t, err)

		out, err := Synthesize(cfg, []note.Descriptor{resolve(t, "A4", tt.duration)})
		require.NoError(t, err)

		want := int(math.Ceil(tt.duration / cfg.SamplingInterval()))
		assert.InDelta(t, want, len(out), 1, "rate %d duration %v", tt.rate, tt.duration)
	}
}

func TestSynthesize_WaveformShape(t *testing.T) {
	t.Parallel()

	cfg, err := audio.NewConfig(8000, 16, 1, 2.0)
	require.NoError(t, err)

	d := resolve(t, "A4", 0.01)
	out, err := Synthesize(cfg, []note.Descriptor{d})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// starts on the bias
	assert.Equal(t, cfg.Amplitude(), out[0])

	for i, v := range out {
		assert.GreaterOrEqual(t, v, 0.0, "sample %d", i)
		assert.LessOrEqual(t, v, cfg.Range(), "sample %d", i)

		want := cfg.Amplitude()*math.Sin(d.AngularRate()*float64(i)*cfg.SamplingInterval()) + cfg.Amplitude()
		assert.InDelta(t, want, v, 1e-9, "sample %d", i)
	}
}

func TestSynthesize_CustomRange(t *testing.T) {
	t.Parallel()

	cfg, err := audio.NewConfig(44100, 16, 1, 10.0)
	require.NoError(t, err)

	out, err := Synthesize(cfg, []note.Descriptor{resolve(t, "C4", 0.1)})
	require.NoError(t, err)

	lo, hi := out[0], out[0]
	for _, v := range out {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	assert.InDelta(t, 0, lo, 0.01)
	assert.InDelta(t, 10, hi, 0.01)
}

func TestSynthesize_Rest(t *testing.T) {
	t.Parallel()

	cfg := audio.DefaultConfig()
	rest, err := note.Rest(0.01)
	require.NoError(t, err)

	out, err := Synthesize(cfg, []note.Descriptor{rest})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	for _, v := range out {
		require.Equal(t, cfg.Amplitude(), v)
	}
}

func TestSynthesize_OrderPreserved(t *testing.T) {
	t.Parallel()

	cfg := audio.DefaultConfig()
	a := resolve(t, "A4", 0.05)
	rest, err := note.Rest(0.05)
	require.NoError(t, err)

	first, err := Synthesize(cfg, []note.Descriptor{a})
	require.NoError(t, err)

	out, err := Synthesize(cfg, []note.Descriptor{a, rest})
	require.NoError(t, err)

	assert.Equal(t, first, out[:len(first)])
	for _, v := range out[len(first):] {
		require.Equal(t, cfg.Amplitude(), v)
	}
}

func TestSynthesize_CMajorScale(t *testing.T) {
	t.Parallel()

	cfg := audio.DefaultConfig()
	var notes []note.Descriptor
	for _, name := range []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4", "C5"} {
		notes = append(notes, resolve(t, name, 1.0))
	}

	out, err := Synthesize(cfg, notes)
	require.NoError(t, err)
	assert.InDelta(t, 8*44100, len(out), 8)
}

func TestSynthesize_InvalidDescriptor(t *testing.T) {
	t.Parallel()

	bad := []note.Descriptor{
		{Frequency: 440, Duration: -1},
		{Frequency: -440, Duration: 1},
		{Frequency: math.NaN(), Duration: 1},
		{Frequency: 440, Duration: math.Inf(1)},
	}

	for _, d := range bad {
		_, err := Synthesize(audio.DefaultConfig(), []note.Descriptor{resolve(t, "A4", 0.01), d})
		require.ErrorIs(t, err, ErrInvalidDescriptor)
		assert.Contains(t, err.Error(), "note 1")
	}
}

func TestSynthesize_TooManySamples(t *testing.T) {
	t.Parallel()

	cfg := audio.DefaultConfig()

	tests := []struct {
		name  string
		notes []note.Descriptor
		index string
	}{
		{"one huge note", []note.Descriptor{{Frequency: 440, Duration: 1e15}}, "note 0"},
		{"max float duration", []note.Descriptor{{Frequency: 440, Duration: math.MaxFloat64}}, "note 0"},
		{"sum over limit", []note.Descriptor{
			{Frequency: 440, Duration: 30000},
			{Duration: 1},
			{Frequency: 220, Duration: 30000},
		}, "note 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := Synthesize(cfg, tt.notes)
			require.ErrorIs(t, err, ErrTooManySamples)
			assert.Contains(t, err.Error(), tt.index)
			assert.Nil(t, out)

			out, err = SynthesizeParallel(cfg, tt.notes, 4)
			require.ErrorIs(t, err, ErrTooManySamples)
			assert.Nil(t, out)
		})
	}
}

func TestMaxSamples(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(MaxDataBytes/2), MaxSamples(audio.DefaultConfig()))

	cfg, err := audio.NewConfig(8000, 8, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(MaxDataBytes), MaxSamples(cfg))

	cfg, err = audio.NewConfig(8000, 32, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(MaxDataBytes/8), MaxSamples(cfg))
}

func TestEstimateSamples(t *testing.T) {
	t.Parallel()

	cfg := audio.DefaultConfig()
	assert.Equal(t, 0, EstimateSamples(cfg, 0))
	assert.Equal(t, 0, EstimateSamples(cfg, -1))
	assert.Equal(t, 44100, EstimateSamples(cfg, 1))
	assert.Equal(t, 4410, EstimateSamples(cfg, 0.1))
	assert.Equal(t, 0, EstimateSamples(cfg, math.NaN()))
	assert.Equal(t, math.MaxInt, EstimateSamples(cfg, math.MaxFloat64))
}

func BenchmarkSynthesize(b *testing.B) {
	cfg := audio.DefaultConfig()
	notes := []note.Descriptor{{Frequency: 440, Duration: 1}}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Synthesize(cfg, notes)
	}
}
