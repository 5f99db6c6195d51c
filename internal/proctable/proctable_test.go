//go:build linux

package proctable

import (
	"os"
	"os/exec"
	"slices"
	"testing"
	"time"
)

// TestZombiesDetectsUnreapedChild starts a short-lived child, lets it exit
// without being waited on, and verifies it shows up as a zombie. Waiting on
// it afterwards must clear it from the table.
func TestZombiesDetectsUnreapedChild(t *testing.T) {
	cmd := exec.Command("true")
	if err := cmd.Start(); err != nil {
		t.Fatalf("starting child: %v", err)
	}
	pid := int32(cmd.Process.Pid)
	self := int32(os.Getpid())

	found := false
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		zombies, err := Zombies(self)
		if err != nil {
			t.Fatalf("Zombies: %v", err)
		}
		for _, z := range zombies {
			if z.PID == pid {
				found = true
			}
		}
		if found {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if !found {
		t.Fatalf("child %d never appeared as a zombie", pid)
	}

	named, err := ZombiesNamed("true")
	if err != nil {
		t.Fatalf("ZombiesNamed: %v", err)
	}
	if !slices.Contains(named, pid) {
		t.Errorf("ZombiesNamed(true) = %v, should include %d", named, pid)
	}

	if err := cmd.Wait(); err != nil {
		t.Fatalf("waiting on child: %v", err)
	}

	zombies, err := Zombies(self)
	if err != nil {
		t.Fatalf("Zombies after wait: %v", err)
	}
	for _, z := range zombies {
		if z.PID == pid {
			t.Errorf("child %d still listed as zombie after wait", pid)
		}
	}
}

// TestChildrenListsRunningChild verifies a live child appears, not as a zombie.
func TestChildrenListsRunningChild(t *testing.T) {
	cmd := exec.Command("sleep", "10")
	if err := cmd.Start(); err != nil {
		t.Fatalf("starting child: %v", err)
	}
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()

	children, err := Children(int32(os.Getpid()))
	if err != nil {
		t.Fatalf("Children: %v", err)
	}

	for _, c := range children {
		if c.PID == int32(cmd.Process.Pid) {
			if c.Zombie {
				t.Error("running child reported as zombie")
			}
			return
		}
	}
	t.Errorf("child %d not found in process table", cmd.Process.Pid)
}
