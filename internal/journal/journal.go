// Package journal records the multiversal calls a process has made so that a
// re-executed child can replay them deterministically.
//
// Every process keeps one entry per selection call, in call order. A resolved
// entry holds the leaf index that call bound; a pending entry holds the
// sub-range a child was spawned to resolve. The plan inherited by a child
// through the environment consists of every resolved entry of its parent at
// the moment of the split, followed by exactly one pending entry.
package journal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// EnvVar is the environment variable carrying the encoded plan into a
// re-executed child process.
const EnvVar = "MULTIVERSE_PLAN"

// formatVersion prefixes every encoded plan. A version mismatch means the
// child binary differs from its parent, which replay cannot survive.
const formatVersion = "v1"

// Entry describes one multiversal call of a process.
type Entry struct {
	// N is the item count the call was made with.
	N int
	// Index is the bound leaf index. Valid only when Pending is false.
	Index int
	// Lo and Hi delimit the half-open sub-range this process was spawned
	// to resolve. Valid only when Pending is true.
	Lo, Hi int
	// Pending marks the entry a child must resume the coordinator at.
	// Only the last entry of a plan may be pending.
	Pending bool
}

// Journal is the ordered call record of a single process. A cursor separates
// calls inherited from the parent (replayable) from calls the process has
// yet to make.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
	cursor  int
}

// New returns an empty journal, as used by the root of a fork tree.
func New() *Journal {
	return &Journal{}
}

// Begin returns the inherited entry for the process's next call, if the plan
// recorded one. It does not advance the cursor; the caller finishes the call
// with Commit.
func (j *Journal) Begin() (Entry, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cursor < len(j.entries) {
		return j.entries[j.cursor], true
	}
	return Entry{}, false
}

// Call returns the zero-based ordinal of the process's next call.
func (j *Journal) Call() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cursor
}

// Commit records the resolved index of the current call and moves on to the
// next call slot. It overwrites a replayed or pending entry in place and
// appends a fresh entry otherwise.
func (j *Journal) Commit(n, index int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	e := Entry{N: n, Index: index}
	if j.cursor < len(j.entries) {
		j.entries[j.cursor] = e
	} else {
		j.entries = append(j.entries, e)
	}
	j.cursor++
}

// ChildPlan encodes the plan a child spawned for [lo, hi) must inherit: every
// call committed so far, then the pending sub-range for the call in flight.
func (j *Journal) ChildPlan(lo, hi, n int) string {
	j.mu.Lock()
	defer j.mu.Unlock()
	tokens := make([]string, 0, j.cursor+2)
	tokens = append(tokens, formatVersion)
	for _, e := range j.entries[:j.cursor] {
		tokens = append(tokens, encodeResolved(e))
	}
	tokens = append(tokens, fmt.Sprintf("r%d-%d/%d", lo, hi, n))
	return strings.Join(tokens, ";")
}

// Encode serializes the committed entries of the journal. Used by tests and
// diagnostics; child plans are built with ChildPlan.
func (j *Journal) Encode() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	tokens := make([]string, 0, j.cursor+1)
	tokens = append(tokens, formatVersion)
	for _, e := range j.entries[:j.cursor] {
		tokens = append(tokens, encodeResolved(e))
	}
	return strings.Join(tokens, ";")
}

func encodeResolved(e Entry) string {
	return fmt.Sprintf("i%d/%d", e.Index, e.N)
}

// Parse decodes a plan produced by ChildPlan. It rejects malformed tokens,
// out-of-range values, and pending entries anywhere but the last position.
func Parse(plan string) (*Journal, error) {
	tokens := strings.Split(plan, ";")
	if tokens[0] != formatVersion {
		return nil, fmt.Errorf("journal: unsupported plan version %q", tokens[0])
	}
	j := &Journal{}
	for i, tok := range tokens[1:] {
		e, err := parseEntry(tok)
		if err != nil {
			return nil, err
		}
		if e.Pending && i != len(tokens)-2 {
			return nil, fmt.Errorf("journal: pending entry %q before end of plan", tok)
		}
		j.entries = append(j.entries, e)
	}
	return j, nil
}

func parseEntry(tok string) (Entry, error) {
	switch {
	case strings.HasPrefix(tok, "i"):
		indexStr, nStr, ok := strings.Cut(tok[1:], "/")
		index, err1 := strconv.Atoi(indexStr)
		n, err2 := strconv.Atoi(nStr)
		if !ok || err1 != nil || err2 != nil {
			return Entry{}, fmt.Errorf("journal: malformed entry %q", tok)
		}
		if n <= 0 || index < 0 || index >= n {
			return Entry{}, fmt.Errorf("journal: index out of range in entry %q", tok)
		}
		return Entry{N: n, Index: index}, nil
	case strings.HasPrefix(tok, "r"):
		span, nStr, ok := strings.Cut(tok[1:], "/")
		loStr, hiStr, okSpan := strings.Cut(span, "-")
		lo, err1 := strconv.Atoi(loStr)
		hi, err2 := strconv.Atoi(hiStr)
		n, err3 := strconv.Atoi(nStr)
		if !ok || !okSpan || err1 != nil || err2 != nil || err3 != nil {
			return Entry{}, fmt.Errorf("journal: malformed entry %q", tok)
		}
		if n <= 0 || lo < 0 || hi <= lo || hi > n {
			return Entry{}, fmt.Errorf("journal: range out of bounds in entry %q", tok)
		}
		return Entry{N: n, Lo: lo, Hi: hi, Pending: true}, nil
	default:
		return Entry{}, fmt.Errorf("journal: unrecognized entry %q", tok)
	}
}

var (
	sharedOnce sync.Once
	shared     *Journal
	sharedErr  error
)

// Shared returns the process-wide journal, parsed once from the environment.
// A process started without a plan (the root of a fork tree) gets an empty
// journal. The parse error, if any, is sticky for the life of the process.
func Shared() (*Journal, error) {
	sharedOnce.Do(func() {
		plan := os.Getenv(EnvVar)
		if plan == "" {
			shared = New()
			return
		}
		shared, sharedErr = Parse(plan)
	})
	return shared, sharedErr
}
