package multiverse

import (
	"errors"
	"fmt"
	"sync"

	"github.com/WhitingJarod/multiverse-random/internal/forktree"
)

var (
	coordOnce sync.Once
	coord     *forktree.Coordinator
)

// coordinator returns the process-wide coordinator, created on first use so
// that a re-executed universe parses its inherited plan exactly once.
func coordinator() *forktree.Coordinator {
	coordOnce.Do(func() {
		coord = forktree.New()
	})
	return coord
}

// Pick selects an item from items. Multiverse theory compliant: rather than
// returning one probabilistically chosen item, Pick causes the calling
// program's continuation to run once per item across len(items) OS
// processes, each call returning exactly once in its own process with a
// distinct item. The calling process itself continues as one of the
// universes.
//
// Items are bound by index; each universe re-derives the sequence by
// re-running the program, so items are never serialized across processes.
//
// Errors: EmptyInputError when items is empty, ForkError when a duplication
// fails (that universe's branch is lost; siblings are unaffected), and
// ReplayError when the program behaved nondeterministically across
// re-executions.
func Pick[T any](items []T) (T, error) {
	var zero T
	index, err := PickIndex(len(items))
	if err != nil {
		return zero, err
	}
	// The leaf binding: this universe's sole item, shared with no one.
	return items[index], nil
}

// PickIndex is the index form of Pick: the continuation runs once per index
// in [0, n), each universe receiving a distinct index.
func PickIndex(n int) (int, error) {
	index, err := coordinator().Resolve(n)
	if err != nil {
		return 0, wrapResolveError(err)
	}
	return index, nil
}

// PickInt selects an integer from the inclusive range [min, max]. An
// inverted range fails like an empty sequence.
func PickInt(min, max int) (int, error) {
	if max < min {
		return 0, EmptyInputError{}
	}
	n := max - min + 1
	if n <= 0 {
		return 0, ErrRangeTooLarge
	}
	index, err := PickIndex(n)
	if err != nil {
		return 0, err
	}
	return min + index, nil
}

// wrapResolveError maps coordinator errors onto the package's public types.
func wrapResolveError(err error) error {
	var spawnErr *forktree.SpawnError
	var mismatch *forktree.ReplayMismatchError
	switch {
	case errors.Is(err, forktree.ErrEmptyRange):
		return EmptyInputError{}
	case errors.As(err, &spawnErr):
		return ForkError{Cause: spawnErr}
	case errors.As(err, &mismatch):
		return ReplayError{Call: mismatch.Call, Recorded: mismatch.Recorded, Live: mismatch.Live}
	default:
		return fmt.Errorf("multiverse: %w", err)
	}
}
