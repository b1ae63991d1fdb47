// SPDX-License-Identifier: EPL-2.0

package notepcm

import (
	"errors"
	"fmt"

	"github.com/ik5/notepcm/synth"
)

// Stage names a step of the rendering pipeline.
type Stage string

const (
	StageResolve    Stage = "resolve"
	StageSynthesize Stage = "synthesize"
	StageQuantize   Stage = "quantize"
	StageWrite      Stage = "write"
)

var (
	// ErrUnknownFormat is returned when no encoder is registered for a format.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrTooManySamples is returned when the rendered signal cannot be stored
	// in a single PCM container. Synthesis checks it before allocating and
	// quantization checks the exact count again.
	ErrTooManySamples = synth.ErrTooManySamples
)

// StageError reports which pipeline stage failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
