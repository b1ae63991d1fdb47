// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a FORM/AIFF stream.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth is returned for depths other than 8, 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("only 8, 16, 24 and 32-bit PCM AIFF is supported")

	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrSampleOutOfRange is returned by Write for codes above the bit depth.
	ErrSampleOutOfRange = errors.New("sample exceeds the bit depth")
)
