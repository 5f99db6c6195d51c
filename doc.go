// Package multiverse selects an item from a sequence without sacrificing any
// of the alternatives: instead of sampling one outcome, the calling program's
// continuation is made to run once per item, each run in its own OS process
// bound to a distinct item. Selection by exhaustive multiversal enumeration,
// not by entropy.
//
// # How a selection unfolds
//
// Pick over n items recursively bisects the index range [0, n). At every
// split the current process duplicates itself exactly once: the original
// execution keeps the left half and the duplicate owns the right half, each
// narrowing independently until it holds a single index. The tree performs
// n-1 duplications in total, no lineage more than ceil(log2 n) of them, and
// each of the n resulting processes returns from Pick exactly once with its
// own item. Sibling universes share nothing after the split except the
// inherited standard streams, whose writes interleave without coordination.
//
// # Process duplication on Go
//
// Go's runtime cannot survive a bare fork(2), so duplication is emulated by
// re-executing the current binary with the same arguments and inherited
// stdio. This is a materially different primitive than a copy-on-write fork:
// the child re-runs the program from its entry point and replays the
// parent's earlier selections from a plan passed through the environment
// (MULTIVERSE_PLAN). Two things follow for callers. The program must behave
// deterministically up to each Pick call, including making calls in the same
// order with the same item counts; a detected divergence fails with a
// ReplayError. And work performed before a Pick call is re-executed in every
// spawned universe rather than inherited by memory copy.
//
// # Partial failure
//
// A failed duplication is reported as a ForkError to the process that
// attempted it. Universes spawned earlier are already independent processes
// and cannot be recalled, so under resource pressure the fan-out may
// complete with fewer than n universes; each surviving universe still holds
// a distinct item.
//
// Exit statuses of child universes are collected asynchronously by a
// process-wide reaper installed before the first duplication, so coordinator
// processes neither block on their descendants nor leave zombies behind.
package multiverse
