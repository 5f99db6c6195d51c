// Package forktree implements the fork-tree coordinator: it partitions an
// index range across a binary tree of OS processes so that a program's
// continuation runs once per index, each process bound to a distinct index.
//
// A process resolving a range of length > 1 performs exactly one duplication
// per split: the original execution keeps the left half and the duplicated
// execution owns the right half, each recursing independently until every
// lineage reaches a single index. A process therefore performs at most
// ceil(log2 n) duplications, and the whole tree exactly n-1.
package forktree

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/WhitingJarod/multiverse-random/internal/journal"
	"github.com/WhitingJarod/multiverse-random/internal/logging"
	"github.com/WhitingJarod/multiverse-random/internal/metrics"
	"github.com/WhitingJarod/multiverse-random/internal/reaper"
	"github.com/WhitingJarod/multiverse-random/internal/splitter"
)

// tracerName identifies this package's spans. No SDK is wired by the
// library; spans are no-ops unless the embedding program installs one.
const tracerName = "github.com/WhitingJarod/multiverse-random/internal/forktree"

// Coordinator walks index ranges top-down, spawning one child universe per
// split and recording resolutions in the process journal so spawned
// universes can replay them.
type Coordinator struct {
	journal    *journal.Journal
	journalErr error
	spawner    Spawner
	log        logging.Logger
	tracer     trace.Tracer
}

// Option configures a Coordinator during construction.
type Option func(*Coordinator)

// WithSpawner sets a custom duplication primitive.
func WithSpawner(s Spawner) Option {
	return func(c *Coordinator) { c.spawner = s }
}

// WithJournal sets a custom call journal instead of the process-wide one.
func WithJournal(j *journal.Journal) Option {
	return func(c *Coordinator) { c.journal = j }
}

// WithLogger sets a custom logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// New creates a Coordinator. Without options it uses the process-wide
// journal inherited from the environment and the re-exec spawner.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		spawner: NewReexecSpawner(),
		log:     logging.NewDefaultLogger(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.journal == nil {
		c.journal, c.journalErr = journal.Shared()
	}
	return c
}

// Resolve causes the calling program to continue once per index in [0, n),
// each resulting process bound to a distinct index. In each process it
// returns exactly once, with that process's index.
//
// n <= 0 fails with ErrEmptyRange before any duplication. A failed
// duplication fails with a SpawnError in the process that attempted it;
// branches spawned earlier proceed normally and cannot be recalled, so the
// fan-out may complete with fewer than n universes.
func (c *Coordinator) Resolve(n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRange
	}
	if c.journalErr != nil {
		return 0, c.journalErr
	}

	_, span := c.tracer.Start(context.Background(), "forktree.resolve",
		trace.WithAttributes(attribute.Int("items", n)))
	defer span.End()

	lo, hi := 0, n
	if e, ok := c.journal.Begin(); ok {
		if e.N != n {
			err := &ReplayMismatchError{Call: c.journal.Call(), Recorded: e.N, Live: n}
			span.RecordError(err)
			return 0, err
		}
		if !e.Pending {
			// Resolved by an ancestor before this universe was spawned.
			c.journal.Commit(n, e.Index)
			span.SetAttributes(attribute.Int("index", e.Index), attribute.Bool("replayed", true))
			return e.Index, nil
		}
		lo, hi = e.Lo, e.Hi
	}

	for {
		mid, ok := splitter.Split(lo, hi)
		if !ok {
			break
		}
		if err := c.spawnBranch(span, mid, hi, n); err != nil {
			return 0, err
		}
		hi = mid
	}

	c.journal.Commit(n, lo)
	metrics.LeavesTotal.Inc()
	span.SetAttributes(attribute.Int("index", lo))
	c.log.Debug("selection resolved",
		logging.Int("index", lo),
		logging.Int("items", n))
	return lo, nil
}

// spawnBranch performs one process duplication for the sub-range [mid, hi).
func (c *Coordinator) spawnBranch(span trace.Span, mid, hi, n int) error {
	reaper.Install()

	branch := uuid.NewString()
	plan := c.journal.ChildPlan(mid, hi, n)
	if err := c.spawner.Spawn(plan); err != nil {
		metrics.SpawnFailuresTotal.Inc()
		spawnErr := &SpawnError{Lo: mid, Hi: hi, Cause: err}
		span.RecordError(spawnErr)
		c.log.Error("branch spawn failed", err,
			logging.String("branch", branch),
			logging.Int("lo", mid),
			logging.Int("hi", hi))
		return spawnErr
	}

	metrics.SpawnsTotal.Inc()
	span.AddEvent("spawned branch", trace.WithAttributes(
		attribute.String("branch", branch),
		attribute.Int("lo", mid),
		attribute.Int("hi", hi)))
	c.log.Debug("spawned branch",
		logging.String("branch", branch),
		logging.Int("lo", mid),
		logging.Int("hi", hi))
	return nil
}
