package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestCountersIncrement verifies each counter is registered and counts.
// Prometheus counters are process-global, so only deltas are asserted.
func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(SpawnsTotal)
	SpawnsTotal.Inc()
	if got := testutil.ToFloat64(SpawnsTotal); got != before+1 {
		t.Errorf("SpawnsTotal = %v after Inc, want %v", got, before+1)
	}

	before = testutil.ToFloat64(ReapedTotal)
	ReapedTotal.Inc()
	if got := testutil.ToFloat64(ReapedTotal); got != before+1 {
		t.Errorf("ReapedTotal = %v after Inc, want %v", got, before+1)
	}
}

// TestSnapshot verifies the runtime snapshot is populated.
func TestSnapshot(t *testing.T) {
	snap := Snapshot()

	if snap.PID <= 0 {
		t.Errorf("Snapshot().PID = %d, want > 0", snap.PID)
	}
	if snap.HeapAlloc == 0 {
		t.Error("Snapshot().HeapAlloc should be non-zero")
	}
	if snap.Goroutines <= 0 {
		t.Errorf("Snapshot().Goroutines = %d, want > 0", snap.Goroutines)
	}
}
