// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files for analysis using github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels because go-mp3 expands mono
// streams to stereo. Wrap the source in audio.NewMonoMixer when a single
// channel is needed. Encoding MP3 is not supported.
package mp3
