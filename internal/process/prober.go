package process

import (
	"slices"

	gopsproc "github.com/shirou/gopsutil/v4/process"
)

// Prober reports whether a PID names a live process. Implementations must
// treat "no such process", "permission denied", and zombie states as not
// alive rather than returning an error.
type Prober interface {
	Alive(pid int) bool
}

// TableProber probes the OS process table. A terminated-but-unreaped child
// still has a table entry, so existence alone is not enough; the state must
// not be zombie.
type TableProber struct{}

func (TableProber) Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	p, err := gopsproc.NewProcess(int32(pid))
	if err != nil {
		return false
	}
	running, err := p.IsRunning()
	if err != nil || !running {
		return false
	}
	statuses, err := p.Status()
	if err != nil {
		return false
	}
	return !slices.Contains(statuses, gopsproc.Zombie)
}
