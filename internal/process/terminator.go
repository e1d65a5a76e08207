package process

import (
	"fmt"
	"time"
)

// Result reports how a stop attempt concluded.
type Result int

const (
	// StoppedCleanly means the process was alive and is now confirmed gone.
	StoppedCleanly Result = iota
	// AlreadyGone means the PID did not name a live process, either before
	// the first signal or at some point during the escalation.
	AlreadyGone
)

func (r Result) String() string {
	switch r {
	case StoppedCleanly:
		return "stopped"
	case AlreadyGone:
		return "already gone"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// phase of the termination escalation.
type phase int

const (
	phaseGraceful phase = iota
	phaseForceful
)

// Terminator drives graceful-then-forceful shutdown of a tracked PID. The
// target is not a child of this process, so exits are observed by polling the
// prober rather than by reaping. Total blocking time is bounded by
// TermTimeout + KillTimeout.
type Terminator struct {
	Prober       Prober
	TermTimeout  time.Duration
	KillTimeout  time.Duration
	PollInterval time.Duration

	// signal delivers the request for the given phase; overridable in tests.
	signal func(pid int, p phase) error
}

// NewTerminator returns a Terminator using OS signal delivery.
func NewTerminator(prober Prober, term, kill, poll time.Duration) *Terminator {
	return &Terminator{
		Prober:       prober,
		TermTimeout:  term,
		KillTimeout:  kill,
		PollInterval: poll,
		signal:       sendSignal,
	}
}

func sendSignal(pid int, p phase) error {
	if p == phaseGraceful {
		return terminateProcess(pid)
	}
	return killProcess(pid)
}

// Stop walks the escalation: graceful request, bounded wait, forceful kill,
// bounded wait. A process that vanishes at any point yields AlreadyGone; a
// failed signal to a dead process is not an error.
func (t *Terminator) Stop(pid int) (Result, error) {
	if !t.Prober.Alive(pid) {
		return AlreadyGone, nil
	}
	for _, p := range []phase{phaseGraceful, phaseForceful} {
		if err := t.signal(pid, p); err != nil {
			if !t.Prober.Alive(pid) {
				return AlreadyGone, nil
			}
			return StoppedCleanly, fmt.Errorf("signal pid %d: %w", pid, err)
		}
		if t.waitGone(pid, t.timeoutFor(p)) {
			return StoppedCleanly, nil
		}
	}
	return StoppedCleanly, fmt.Errorf("pid %d still running after forced kill", pid)
}

func (t *Terminator) timeoutFor(p phase) time.Duration {
	if p == phaseGraceful {
		return t.TermTimeout
	}
	return t.KillTimeout
}

// waitGone polls until the process is no longer alive or the bound elapses.
func (t *Terminator) waitGone(pid int, bound time.Duration) bool {
	deadline := time.Now().Add(bound)
	for {
		if !t.Prober.Alive(pid) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(t.PollInterval)
	}
}
