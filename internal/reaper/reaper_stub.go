//go:build !unix

package reaper

// Install is a no-op on platforms without SIGCHLD semantics. Terminated
// children do not linger as zombies there; the OS releases them when their
// handles are dropped.
func Install() {}
