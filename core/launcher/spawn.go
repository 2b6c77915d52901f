package launcher

import (
	"errors"
	"io"
	"os/exec"
)

// Proc is a fully resolved child process: the argument vector, the
// working directory and the standard streams. Argv[0] names the program
// to find on PATH and run.
type Proc struct {
	Argv   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// SpawnFunc starts proc and waits for it to finish. The int is the
// launcher's exit status for the child: the child's own status when it
// ran, 127 when the program was not found and 126 when it could not be
// started. The error is non-nil only when the child never ran.
type SpawnFunc func(proc Proc) (int, error)

// spawn runs proc on the real operating system.
func spawn(proc Proc) (int, error) {
	cmd := exec.Command(proc.Argv[0], proc.Argv[1:]...)
	cmd.Dir = proc.Dir
	cmd.Stdin = proc.Stdin
	cmd.Stdout = proc.Stdout
	cmd.Stderr = proc.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return signalStatus(exitErr), nil
	}

	if errors.Is(err, exec.ErrNotFound) {
		return 127, err
	}
	return 126, err
}
