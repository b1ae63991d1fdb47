// SPDX-License-Identifier: EPL-2.0

// Package analysis recovers the pitch of rendered or decoded audio.
//
// Sources are brought to a common rate and to mono with Prepare, which
// chains audio.NewResampler and audio.NewMonoMixer. DetectFrequency then
// finds the spectral peak with gonum's FFT and Hann window, and the
// frequency is named with note.Nearest:
//
//	res, err := analysis.Analyze(src, analysis.Options{})
//	fmt.Println(res) // 0.00s A4 +0 cents (440.01 Hz)
//
// Segments does the same for every window of a longer recording, which is
// how a rendered scale can be checked note by note.
package analysis
