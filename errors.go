package multiverse

import (
	"errors"
	"fmt"
)

// ErrRangeTooLarge reports a PickInt range whose item count overflows int.
var ErrRangeTooLarge = errors.New("multiverse: integer range too large")

// EmptyInputError reports a selection over zero items. It is returned
// synchronously, before any process duplication, to the sole existing
// process.
type EmptyInputError struct{}

// Error returns the error message for an EmptyInputError.
func (EmptyInputError) Error() string {
	return "multiverse: no items to select from"
}

// ForkError reports that the process-duplication primitive failed. The
// universe that attempted the duplication observes the error; the branch it
// was creating never materializes, while branches created earlier proceed
// independently.
type ForkError struct {
	// Cause is the underlying error from the duplication primitive.
	Cause error
}

// Error returns a formatted message describing the failed duplication.
func (e ForkError) Error() string {
	return fmt.Sprintf("multiverse: process duplication failed: %v", e.Cause)
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e ForkError) Unwrap() error { return e.Cause }

// ReplayError reports that a re-executed universe diverged from the plan it
// inherited: the selection call at ordinal Call was recorded over Recorded
// items but the live program presented Live. It indicates the caller's
// program does not behave deterministically up to its selection calls.
type ReplayError struct {
	Call     int
	Recorded int
	Live     int
}

// Error returns a formatted message describing the divergence.
func (e ReplayError) Error() string {
	return fmt.Sprintf("multiverse: replay mismatch at call %d: plan recorded %d items, live program has %d",
		e.Call, e.Recorded, e.Live)
}
