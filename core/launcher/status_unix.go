//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// signalStatus maps a signal death to the shell convention of 128 plus
// the signal number.
func signalStatus(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
