// SPDX-License-Identifier: EPL-2.0

// Package synth turns note descriptors into sampled sine waves and quantizes
// them into unsigned PCM codes.
//
// Each note is sampled at t = 0, Δt, 2Δt, ... while t < duration, where Δt is
// the sampling interval of the Config. Time is accumulated by repeated
// addition, so a note can end up one sample longer or shorter than
// ceil(duration/Δt). Every sample is
//
//	A·sin(ω·t) + A
//
// with A = Range/2, which keeps the signal inside [0, Range]. Rests produce A.
// Notes are concatenated in the order given; nothing is inserted between
// them.
//
// Quantize rounds (x/Range)·(2^BitDepth-1) half away from zero and clamps
// values that drifted outside [0, Range].
package synth
