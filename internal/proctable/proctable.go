// Package proctable inspects the OS process table for descendants of a
// process. It backs the no-zombie diagnostics: after a fork tree completes,
// no terminated child should linger unreaped.
package proctable

import (
	"slices"

	"github.com/shirou/gopsutil/v4/process"
)

// Child describes one direct child of the inspected process.
type Child struct {
	PID    int32
	Name   string
	Zombie bool
}

// Children returns the direct children of pid currently present in the
// process table. Processes that disappear mid-scan are skipped.
func Children(pid int32) ([]Child, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	var children []Child
	for _, p := range procs {
		ppid, err := p.Ppid()
		if err != nil || ppid != pid {
			continue
		}
		c := Child{PID: p.Pid}
		if name, err := p.Name(); err == nil {
			c.Name = name
		}
		if status, err := p.Status(); err == nil {
			c.Zombie = slices.Contains(status, process.Zombie)
		}
		children = append(children, c)
	}
	return children, nil
}

// ZombiesNamed returns the pids of zombie processes with the given name
// anywhere in the process table, regardless of parentage. Lets a caller
// that outlives an entire process tree check that none of its members
// linger, even the ones that were never its own children.
func ZombiesNamed(name string) ([]int32, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	var pids []int32
	for _, p := range procs {
		n, err := p.Name()
		if err != nil || n != name {
			continue
		}
		if status, err := p.Status(); err == nil && slices.Contains(status, process.Zombie) {
			pids = append(pids, p.Pid)
		}
	}
	return pids, nil
}

// Zombies returns the direct children of pid that have terminated but not
// yet been reaped.
func Zombies(pid int32) ([]Child, error) {
	children, err := Children(pid)
	if err != nil {
		return nil, err
	}
	var zombies []Child
	for _, c := range children {
		if c.Zombie {
			zombies = append(zombies, c)
		}
	}
	return zombies, nil
}
