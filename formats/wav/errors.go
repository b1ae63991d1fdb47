// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only integer PCM of 8, 16, 24 or 32 bits is supported")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrTruncatedData        = errors.New("WAV data chunk is truncated")
	ErrSampleOutOfRange     = errors.New("sample exceeds the bit depth")
	ErrDataTooLarge         = errors.New("sample data does not fit in a WAV file")
)
