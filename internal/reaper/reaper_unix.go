//go:build unix

// Package reaper collects the exit status of child universes asynchronously
// so that coordinator processes never accumulate zombie entries and never
// block their own continuation waiting on descendants.
//
// The facility is process-wide and owns child reaping for the whole process:
// it waits on any child pid, so it must not be combined with code that calls
// Wait on its own children (os/exec Cmd.Wait included). Spawned universes
// start with fresh signal state, so every process installs its own reaper
// before its first spawn.
package reaper

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/WhitingJarod/multiverse-random/internal/logging"
	"github.com/WhitingJarod/multiverse-random/internal/metrics"
)

var (
	installOnce sync.Once
	log         logging.Logger = logging.NewDefaultLogger()
)

// Install registers the SIGCHLD handler and starts the background drain.
// It is safe to call from every spawn site; only the first call has effect.
// It must run before the first spawn so a child exiting immediately still
// delivers its SIGCHLD to the registered channel.
func Install() {
	installOnce.Do(func() {
		sig := make(chan os.Signal, 16)
		signal.Notify(sig, syscall.SIGCHLD)
		go drain(sig)
	})
}

// drain reaps terminated children whenever SIGCHLD arrives. Signals coalesce,
// so each notification drains every reapable child, not just one.
func drain(sig <-chan os.Signal) {
	for range sig {
		reapAll()
	}
}

// reapAll collects every already-terminated child without blocking.
func reapAll() {
	for {
		var status unix.WaitStatus
		pid, err := unix.Wait4(-1, &status, unix.WNOHANG, nil)
		if pid <= 0 || err != nil {
			return
		}
		metrics.ReapedTotal.Inc()
		log.Debug("reaped child universe",
			logging.Int("child", pid),
			logging.Int("status", int(status)))
	}
}
