//go:build windows

package process

import "syscall"

var (
	kernel32             = syscall.NewLazyDLL("kernel32.dll")
	procTerminateProcess = kernel32.NewProc("TerminateProcess")
)

const processTerminate = 0x0001

// terminateProcess has no graceful equivalent on Windows; both the graceful
// and forceful phases resolve to TerminateProcess.
func terminateProcess(pid int) error {
	return killProcess(pid)
}

func killProcess(pid int) error {
	if pid <= 0 {
		return nil
	}
	handle, err := syscall.OpenProcess(processTerminate, false, uint32(pid))
	if err != nil {
		// The process is most likely already gone; the caller re-probes
		// liveness and reports AlreadyGone on its own.
		return nil
	}
	defer func() { _ = syscall.CloseHandle(handle) }()
	ret, _, callErr := procTerminateProcess.Call(uintptr(handle), uintptr(1))
	if ret == 0 {
		return callErr
	}
	return nil
}
