// SPDX-License-Identifier: EPL-2.0

// Package score loads note sequences from YAML.
//
//	sample_rate: 44100
//	bit_depth: 16
//	format: wav
//	notes:
//	  - pitch: C4
//	    duration: 1
//	  - frequency: 440
//	    duration: 0.5
//	  - rest: true
//	    duration: 0.25
//
// Every top-level key except notes is optional. Pitches use the notation of
// note.ParsePitch. Durations are in seconds.
package score
