package forktree

import (
	"errors"
	"fmt"
)

// ErrEmptyRange reports a selection over an empty index range. It is raised
// synchronously, before any duplication is attempted.
var ErrEmptyRange = errors.New("forktree: empty range")

// SpawnError reports a failed process duplication for the branch that was
// meant to own [Lo, Hi). The branch never materializes; branches spawned
// earlier are independent processes and proceed unaffected.
type SpawnError struct {
	// Lo and Hi delimit the sub-range the failed branch would have owned.
	Lo, Hi int
	// Cause is the underlying error from the duplication primitive.
	Cause error
}

// Error returns a formatted message describing the failed duplication.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("forktree: spawning branch [%d,%d): %v", e.Lo, e.Hi, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e *SpawnError) Unwrap() error { return e.Cause }

// ReplayMismatchError reports that the inherited plan disagrees with the
// live program: the call at ordinal Call was recorded over Recorded items
// but replayed over Live items. Replay requires the caller's program to
// behave deterministically up to each selection call.
type ReplayMismatchError struct {
	Call     int
	Recorded int
	Live     int
}

// Error returns a formatted message describing the mismatch.
func (e *ReplayMismatchError) Error() string {
	return fmt.Sprintf("forktree: replay mismatch at call %d: plan recorded %d items, live program has %d",
		e.Call, e.Recorded, e.Live)
}
