package process

import (
	"runtime"
	"testing"
	"time"
)

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires Unix-like environment")
	}
}

func waitUntil(timeout, step time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(step)
	}
	return cond()
}

// fakeProber answers liveness from a fixed table.
type fakeProber struct {
	alive map[int]bool
}

func (f fakeProber) Alive(pid int) bool { return f.alive[pid] }

// aliveAll reports every positive pid as alive.
type aliveAll struct{}

func (aliveAll) Alive(pid int) bool { return pid > 0 }
