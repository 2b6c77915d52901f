// Package shebang resolves the interpreter command for a target file
// from the directive on its first line.
package shebang

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/enigmatic-code/run/core/script"
)

// Marker introduces the interpreter directive. It is honored anywhere on
// the first line, so languages whose comment syntax is not "#" can bury
// it inside one of their own comments.
const Marker = "#!"

// ErrNoInterpreter is reported for files that carry no directive and may
// not be executed directly.
var ErrNoInterpreter = errors.New("no interpreter found")

// Resolver reads interpreter directives from files.
type Resolver struct {
	FS afero.Fs
}

// Command returns the raw interpreter command for f: the trimmed text
// after the first Marker on the first line. A file without a marker
// resolves to the empty command, meaning run the file itself, when it is
// regular and has any execute bit set; otherwise the result is
// ErrNoInterpreter.
func (r Resolver) Command(f script.File) (string, error) {
	line, err := r.firstLine(f.Path)
	if err != nil {
		return "", err
	}

	if i := strings.Index(line, Marker); i >= 0 {
		return strings.TrimSpace(line[i+len(Marker):]), nil
	}

	info, err := r.FS.Stat(f.Path)
	if err != nil {
		return "", err
	}
	if info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0 {
		return "", nil
	}
	return "", fmt.Errorf("%s: %w", f.Path, ErrNoInterpreter)
}

func (r Resolver) firstLine(path string) (string, error) {
	fd, err := r.FS.Open(path)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	if !scanner.Scan() {
		// An oversize first line means a binary, not a directive.
		if err := scanner.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
			return "", err
		}
		return "", nil
	}
	return scanner.Text(), nil
}
