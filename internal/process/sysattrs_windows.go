//go:build windows

package process

import (
	"os/exec"
	"syscall"
)

const createNewProcessGroup = 0x00000200

// configureSysProcAttr detaches the child on Windows with
// CREATE_NEW_PROCESS_GROUP so console Ctrl+C events for the launcher's group
// do not propagate to it. DETACHED_PROCESS is deliberately not set: it would
// spawn the child without any console, and its output is already captured
// through the redirected file handle.
func configureSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: createNewProcessGroup}
}
