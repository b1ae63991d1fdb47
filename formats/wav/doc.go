// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads uncompressed PCM WAV files.
//
// # Writing
//
// Write emits the canonical 44-byte RIFF/WAVE header followed by the
// samples:
//
//	Offset  Field          Size  Value
//	0       ChunkID        4     "RIFF"
//	4       ChunkSize      4     36 + SubChunk2Size
//	8       Format         4     "WAVE"
//	12      SubChunk1ID    4     "fmt "
//	16      SubChunk1Size  4     16
//	20      AudioFormat    2     1 (PCM)
//	22      NumChannels    2     channels
//	24      SampleRate     4     sample rate
//	28      ByteRate       4     rate × channels × bits/8
//	32      BlockAlign     2     channels × bits/8
//	34      BitsPerSample  2     bit depth
//	36      SubChunk2ID    4     "data"
//	40      SubChunk2Size  4     samples × channels × bits/8
//	44      Data           ...   little-endian samples
//
// Samples are the unsigned codes produced by synth.Quantize and are stored
// as-is, so the file carries the biased waveform.
//
//	cfg := audio.DefaultConfig()
//	err := wav.Write(file, cfg, samples)
//
// Write checks every sample against the bit depth and builds the file in
// memory before calling w.Write once. WriteFile does the same for a path and
// removes the file again when writing fails.
//
// # Reading
//
// ReadPCM returns the header and the raw codes of a file produced by Write,
// which makes exact round trips possible. Decoder returns an audio.Source of
// normalized float32 samples through github.com/go-audio/wav and is what the
// analysis tools use.
//
// # Error Handling
//
//   - ErrNotWavFile: missing RIFF/WAVE tags or a short header
//   - ErrOnlyPCMSupported: non-PCM or unsupported bit depth
//   - ErrUnsupportedWavLayout / ErrUnsupportedWavChunks: not the canonical layout
//   - ErrTruncatedData: the data chunk is shorter than announced
//   - ErrSampleOutOfRange / ErrDataTooLarge: Write refused its input
package wav
