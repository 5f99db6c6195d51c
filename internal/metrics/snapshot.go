package metrics

import (
	"os"
	"runtime"
)

// ProcessSnapshot holds a point-in-time view of this universe's runtime,
// shown by the CLI in verbose mode.
type ProcessSnapshot struct {
	PID        int    // process id of this universe
	HeapAlloc  uint64 // bytes in use by the application
	Sys        uint64 // total bytes obtained from the OS
	NumGC      uint32 // number of completed GC cycles
	Goroutines int    // live goroutines (the reaper accounts for one)
}

// Snapshot reads current process statistics.
func Snapshot() ProcessSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return ProcessSnapshot{
		PID:        os.Getpid(),
		HeapAlloc:  m.HeapAlloc,
		Sys:        m.Sys,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}
