package process

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Launch spawns the worker detached from the calling process: new
// session/process group so the child neither dies with the launcher nor
// receives the launcher's terminal interrupts. Stdout and stderr are merged
// into the provided file handle. It returns the child's PID immediately
// after the spawn succeeds without waiting for the child to initialize.
//
// A spawn failure (missing executable, permission denied) is fatal to the
// caller; there is no retry.
func Launch(path string, args []string, env []string, output *os.File) (int, error) {
	// #nosec G204 -- path and args come from the tool's own config and CLI
	cmd := exec.Command(path, args...)
	cmd.Env = env
	cmd.Stdout = output
	cmd.Stderr = output
	cmd.Stdin = nil
	configureSysProcAttr(cmd)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("spawn %s: %w", path, err)
	}
	pid := cmd.Process.Pid
	// Drop our handle so the child's lifetime is fully independent of ours.
	// We never Wait on it; liveness is observed through the process table.
	_ = cmd.Process.Release()
	return pid, nil
}

// ScrubEnv returns env without any entry for the named variable.
func ScrubEnv(env []string, name string) []string {
	if name == "" {
		return env
	}
	prefix := name + "="
	out := make([]string, 0, len(env))
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return out
}
