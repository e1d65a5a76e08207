// Package logfile implements the single log sink that captures the worker's
// merged stdout/stderr stream across supervisor invocations.
package logfile

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ErrNoLog is returned by Read when the sink has never been created.
var ErrNoLog = errors.New("no log file found")

const headerTimeLayout = "2006-01-02 15:04:05"

// Sink is the append-target file for exactly one background session at a
// time. Each session truncates the file and starts with a header line; the
// detached child then appends raw output for its lifetime.
type Sink struct {
	Path   string
	Worker string // name printed in the session header
}

// BeginSession truncates the sink, writes the session header, and returns the
// handle still open for appends. The caller hands the handle to the child as
// its combined stdout/stderr and closes its own copy after the spawn.
func (s Sink) BeginSession(now time.Time) (*os.File, error) {
	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", s.Path, err)
	}
	if _, err := fmt.Fprintf(f, "=== %s started at %s ===\n\n", s.Worker, now.Local().Format(headerTimeLayout)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write log header: %w", err)
	}
	return f, nil
}

// Read returns the full current contents. Bytes that do not decode as UTF-8
// are replaced, never fatal. A missing sink yields ErrNoLog so callers can
// report "never started" instead of failing.
func (s Sink) Read() (string, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoLog
		}
		return "", fmt.Errorf("read log %s: %w", s.Path, err)
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}

// Remove deletes the sink; missing is fine. Used by clean.
func (s Sink) Remove() {
	_ = os.Remove(s.Path)
}
