package process

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store persists the PID of the single tracked worker as one textual integer.
// A record is only meaningful while the process it names is alive; Read folds
// every stale or unreadable state into "absent" so callers never have to
// distinguish a missing file from a dead PID.
type Store struct {
	Path   string
	Prober Prober
}

// Read returns the stored PID when the file exists, parses as a positive
// integer, and the prober confirms the process is alive. Anything else is
// reported as absent, never as an error.
func (s Store) Read() (int, bool) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	if s.Prober == nil || !s.Prober.Alive(pid) {
		return 0, false
	}
	return pid, true
}

// Write persists pid, overwriting any prior record.
func (s Store) Write(pid int) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}
	return os.WriteFile(s.Path, []byte(strconv.Itoa(pid)), 0o600)
}

// Clear removes the record. Clearing an absent record is not an error.
func (s Store) Clear() {
	_ = os.Remove(s.Path)
}
