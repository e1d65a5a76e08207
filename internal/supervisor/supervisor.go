// Package supervisor composes the PID store, liveness prober, launcher, and
// terminator into the four user-facing operations and enforces the invariant
// that at most one tracked worker instance exists at a time.
package supervisor

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/peakflames/cpctl/internal/logfile"
	"github.com/peakflames/cpctl/internal/process"
)

// BuildRunner is the external collaborator that produces the worker
// executable. A failure propagates as-is; no supervisor state changes.
type BuildRunner interface {
	Build() error
	BinaryPath() string
}

// Stopper terminates a tracked PID, escalating as needed.
type Stopper interface {
	Stop(pid int) (process.Result, error)
}

// LaunchFunc spawns a detached worker and returns its PID.
type LaunchFunc func(path string, args []string, env []string, output *os.File) (int, error)

// StartState classifies the outcome of Start.
type StartState int

const (
	// Started means the worker spawned and was still alive after the settle
	// delay.
	Started StartState = iota
	// AlreadyRunning means a tracked instance exists; nothing was built or
	// spawned.
	AlreadyRunning
	// ExitedEarly means the worker spawned but was gone by the settle
	// re-probe; the log sink holds whatever it printed before dying.
	ExitedEarly
)

// StartResult is the outcome of Start along with the relevant PID.
type StartResult struct {
	State StartState
	PID   int
}

// StopState classifies the outcome of Stop.
type StopState int

const (
	// Stopped means a live instance was terminated and the record cleared.
	Stopped StopState = iota
	// NothingToStop means no valid record existed.
	NothingToStop
	// WasGone means a record existed but the process was already dead; the
	// stale record was cleared.
	WasGone
)

// StopResult is the outcome of Stop along with the PID acted on.
type StopResult struct {
	State StopState
	PID   int
}

// Status is a side-effect-free projection of the PID store.
type Status struct {
	Running bool
	PID     int
	LogPath string
}

// Supervisor owns the validity decision for the tracked instance; the store
// and prober are pure collaborators.
type Supervisor struct {
	Store    process.Store
	Prober   process.Prober
	Sink     logfile.Sink
	Build    BuildRunner
	Launch   LaunchFunc
	Stopper  Stopper
	StripEnv string
	Settle   time.Duration

	// Environ supplies the launcher's base environment; defaults to
	// os.Environ. Overridable in tests.
	Environ func() []string
}

// Start launches a background worker with the given prompt unless one is
// already tracked. The argument vector is extraArgs followed by the prompt as
// the final positional argument. Sequence: build, begin log session, spawn
// detached, persist PID, settle, re-probe.
func (s *Supervisor) Start(prompt string, extraArgs []string) (StartResult, error) {
	if pid, ok := s.Store.Read(); ok {
		return StartResult{State: AlreadyRunning, PID: pid}, nil
	}
	if err := s.Build.Build(); err != nil {
		return StartResult{}, err
	}
	out, err := s.Sink.BeginSession(time.Now())
	if err != nil {
		return StartResult{}, err
	}
	env := process.ScrubEnv(s.environ(), s.StripEnv)
	args := append(slices.Clone(extraArgs), prompt)
	pid, err := s.Launch(s.Build.BinaryPath(), args, env, out)
	// The child holds its own descriptor after the spawn; this handle is ours.
	_ = out.Close()
	if err != nil {
		return StartResult{}, err
	}
	if err := s.Store.Write(pid); err != nil {
		return StartResult{}, fmt.Errorf("record pid %d: %w", pid, err)
	}
	time.Sleep(s.Settle)
	if !s.Prober.Alive(pid) {
		return StartResult{State: ExitedEarly, PID: pid}, nil
	}
	return StartResult{State: Started, PID: pid}, nil
}

// Stop terminates the tracked instance if one exists. The PID record is
// cleared unconditionally once termination has been attempted; it is stale
// either way.
func (s *Supervisor) Stop() (StopResult, error) {
	pid, ok := s.Store.Read()
	if !ok {
		return StopResult{State: NothingToStop}, nil
	}
	res, err := s.Stopper.Stop(pid)
	s.Store.Clear()
	if err != nil {
		return StopResult{State: Stopped, PID: pid}, err
	}
	if res == process.AlreadyGone {
		return StopResult{State: WasGone, PID: pid}, nil
	}
	return StopResult{State: Stopped, PID: pid}, nil
}

// Status reports the tracked instance without side effects.
func (s *Supervisor) Status() Status {
	pid, ok := s.Store.Read()
	if !ok {
		return Status{}
	}
	return Status{Running: true, PID: pid, LogPath: s.Sink.Path}
}

// Log returns the sink contents; logfile.ErrNoLog when never started.
func (s *Supervisor) Log() (string, error) {
	return s.Sink.Read()
}

func (s *Supervisor) environ() []string {
	if s.Environ != nil {
		return s.Environ()
	}
	return os.Environ()
}
