//go:build !unix

package launcher

import "os/exec"

// signalStatus has no signal numbers to report off unix.
func signalStatus(_ *exec.ExitError) int {
	return 1
}
