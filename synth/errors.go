// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidDescriptor = errors.New("invalid note descriptor")
	ErrInvalidWorkers    = errors.New("worker count must be positive")
	ErrTooManySamples    = errors.New("too many samples for one file")
)
