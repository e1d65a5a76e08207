package process

import (
	"os"
	"os/exec"
	"testing"
)

func TestTableProberSelf(t *testing.T) {
	p := TableProber{}
	if !p.Alive(os.Getpid()) {
		t.Fatalf("own pid should be alive")
	}
}

func TestTableProberInvalidPIDs(t *testing.T) {
	p := TableProber{}
	for _, pid := range []int{0, -1, -12345} {
		if p.Alive(pid) {
			t.Fatalf("pid %d should not be alive", pid)
		}
	}
}

func TestTableProberExitedProcess(t *testing.T) {
	requireUnix(t)
	cmd := exec.Command("true")
	if err := cmd.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	pid := cmd.Process.Pid
	if err := cmd.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	// Reaped, so the table entry is gone (barring an unlikely pid reuse).
	if (TableProber{}).Alive(pid) {
		t.Fatalf("exited pid %d reported alive", pid)
	}
}
