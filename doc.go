// SPDX-License-Identifier: EPL-2.0

// Package notepcm renders musical notes to uncompressed PCM audio.
//
// A note is named by letter, accidental and octave (see package note) and
// turned into an equal-tempered frequency relative to A4 = 440 Hz. The
// pipeline then runs in four stages:
//
//   - resolve: pitches become note.Descriptor values
//   - synthesize: each descriptor is sampled as A·sin(ωt) + A (package synth)
//   - quantize: analog samples are rounded to unsigned integer codes
//   - write: the codes are stored in a WAV or AIFF container
//
// A failure is reported as a *StageError naming the stage:
//
//	d, _ := note.Resolve(note.MustPitch(note.A, note.Natural, 4), 1)
//	err := notepcm.Render(file, audio.DefaultConfig(), []note.Descriptor{d})
//
//	var se *notepcm.StageError
//	if errors.As(err, &se) {
//	    log.Printf("%s stage failed: %v", se.Stage, se.Err)
//	}
//
// # Scores
//
// RenderScore reads everything from a score.Score, including the output
// format, and looks the encoder up in an audio.Registry. NewRegistry
// returns one with all encoders and decoders of this module.
//
// # Analysis
//
// Rendered files can be checked with package analysis, which decodes WAV,
// AIFF, MP3 and Ogg Vorbis through the same registry and names the pitch it
// hears.
package notepcm
