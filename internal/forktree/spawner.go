package forktree

import (
	"fmt"
	"os"
	"strings"

	"github.com/WhitingJarod/multiverse-random/internal/journal"
)

// Spawner creates the duplicated execution for the right half of a split.
// The production implementation re-executes the current binary; tests
// substitute an in-process simulation.
type Spawner interface {
	// Spawn starts a new process that resumes selection with the given
	// encoded plan. It must not block on the child's lifetime.
	Spawn(plan string) error
}

// ReexecSpawner duplicates the process by re-executing the current binary
// with the same arguments and inherited standard streams, passing the
// recursion state through the environment. This is a materially different
// primitive than fork(2): the child re-runs the program from its entry
// point and relies on the plan to replay earlier selection calls, so the
// caller's program must behave deterministically up to each call.
type ReexecSpawner struct{}

// NewReexecSpawner returns the production spawner.
func NewReexecSpawner() *ReexecSpawner {
	return &ReexecSpawner{}
}

// Spawn starts the child universe. The child is intentionally not waited on
// here; the reaper collects its exit status asynchronously.
func (s *ReexecSpawner) Spawn(plan string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}

	env := append(envWithout(os.Environ(), journal.EnvVar), journal.EnvVar+"="+plan)
	proc, err := os.StartProcess(exe, os.Args, &os.ProcAttr{
		Env:   env,
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	})
	if err != nil {
		return err
	}
	return proc.Release()
}

// envWithout returns env with any assignment of key removed.
func envWithout(env []string, key string) []string {
	prefix := key + "="
	out := make([]string, 0, len(env))
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return out
}
