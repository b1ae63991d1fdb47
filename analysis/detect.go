// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

const (
	// MinSamples is the shortest input DetectFrequency accepts.
	MinSamples = 256

	// MinFrequency is the lowest frequency searched, in Hz.
	MinFrequency = 20.0

	// rms below this (about -60 dBFS) is treated as silence
	silenceRMS = 1e-3

	// a sub-harmonic at least this loud relative to the peak is taken as
	// the fundamental
	subharmonicRatio = 0.2
	maxDivisor       = 4
)

// DetectFrequency estimates the dominant frequency of samples taken at rate
// Hz. The samples are Hann windowed and transformed with a real FFT; the
// strongest bin is refined by parabolic interpolation of the log magnitudes.
//
// When a peak is an overtone whose fundamental is still clearly present,
// the fundamental is reported instead.
func DetectFrequency(samples []float32, rate int) (float64, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	if len(samples) < MinSamples {
		return 0, fmt.Errorf("%w: got %d, need %d", ErrTooShort, len(samples), MinSamples)
	}

	seq := make([]float64, len(samples))
	var mean, energy float64
	for i, s := range samples {
		seq[i] = float64(s)
		mean += seq[i]
	}
	mean /= float64(len(seq))

	// DC would otherwise leak into the lowest bins.
	for i := range seq {
		seq[i] -= mean
		energy += seq[i] * seq[i]
	}
	if math.Sqrt(energy/float64(len(seq))) < silenceRMS {
		return 0, ErrNoSignal
	}

	window.Hann(seq)

	fft := fourier.NewFFT(len(seq))
	coeffs := fft.Coefficients(nil, seq)

	mags := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c)
	}

	binWidth := float64(rate) / float64(len(seq))
	lo := max(1, int(math.Ceil(MinFrequency/binWidth)))
	hi := len(mags) - 1 // Nyquist bin is not interpolable
	if lo >= hi {
		return 0, ErrNoSignal
	}

	peak := strongestBin(mags, lo, hi)
	if mags[peak] == 0 {
		return 0, ErrNoSignal
	}
	peak = fundamentalBin(mags, peak, lo)

	return refine(mags, peak) * binWidth, nil
}

// strongestBin returns the index of the largest magnitude in [lo, hi).
func strongestBin(mags []float64, lo, hi int) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if mags[i] > mags[best] {
			best = i
		}
	}
	return best
}

// fundamentalBin looks for a strong local maximum near peak/d, trying the
// largest divisor first so the lowest plausible fundamental wins.
func fundamentalBin(mags []float64, peak, lo int) int {
	for d := maxDivisor; d >= 2; d-- {
		center := int(math.Round(float64(peak) / float64(d)))
		if center-2 < lo {
			continue
		}

		cand := strongestBin(mags, center-2, center+3)
		if mags[cand] < subharmonicRatio*mags[peak] {
			continue
		}
		if mags[cand] >= mags[cand-1] && mags[cand] >= mags[cand+1] {
			return cand
		}
	}
	return peak
}

// refine returns the fractional bin of the peak at i.
func refine(mags []float64, i int) float64 {
	if i <= 0 || i >= len(mags)-1 {
		return float64(i)
	}

	const floor = 1e-12
	a := math.Log(mags[i-1] + floor)
	b := math.Log(mags[i] + floor)
	c := math.Log(mags[i+1] + floor)

	den := a - 2*b + c
	if den == 0 {
		return float64(i)
	}

	return float64(i) + 0.5*(a-c)/den
}
