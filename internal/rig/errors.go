package rig

import (
	"errors"
	"fmt"
)

// Domain errors for headless runs.
var (
	// ErrInvalidConfig indicates a run configuration that cannot be
	// executed (non-positive frame count or dt).
	ErrInvalidConfig = errors.New("rig: invalid run config")

	// ErrUnstable indicates a control point state went non-finite.
	ErrUnstable = errors.New("rig: control point state diverged (NaN or Inf)")
)

// RunError wraps an error with the frame it occurred on.
type RunError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("frame %d (t=%.2f): %v", e.Frame, e.Time, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
