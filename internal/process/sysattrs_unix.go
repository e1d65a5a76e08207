//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// configureSysProcAttr detaches the child on Unix-like systems by starting it
// in a new session (setsid): it becomes a process group leader with no
// controlling terminal, so it survives the launcher's exit and a Ctrl+C sent
// to the launcher's foreground group never reaches it.
func configureSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
