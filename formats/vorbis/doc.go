// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files for analysis using
// github.com/jfreymuth/oggvorbis.
//
// Reads are trimmed to whole frames, so a destination shorter than one frame
// yields nothing. Encoding Vorbis is not supported.
package vorbis
