//go:build !windows

package process

import "syscall"

// terminateProcess asks pid to exit gracefully.
func terminateProcess(pid int) error {
	return syscall.Kill(pid, syscall.SIGTERM)
}

// killProcess terminates pid unconditionally.
func killProcess(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}
