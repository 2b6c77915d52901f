// Package subst implements the template mini-language available in
// interpreter commands: @-prefixed names expanding to components of the
// target file, the argument list or environment variables.
package subst

import (
	"regexp"
	"strings"

	"github.com/enigmatic-code/run/core/script"
)

// Marker activates template substitution when it appears anywhere in an
// interpreter command. A command that uses it takes full control of its
// own argument vector.
const Marker = "@"

var namePattern = regexp.MustCompile(`@(\w+)`)

// Active reports whether command contains the substitution marker.
func Active(command string) bool {
	return strings.Contains(command, Marker)
}

// Expand replaces every @name in command in a single pass, so expanded
// text is never rescanned. The components of f fill @path, @dir, @file,
// @name, @ext and @stem; @args joins args with single spaces; any other
// name is resolved through lookup. Names lookup cannot resolve stay in
// place literally and are returned so the caller can warn about them.
func Expand(command string, f script.File, args []string, lookup func(string) (string, bool)) (string, []string) {
	var unknown []string

	expanded := namePattern.ReplaceAllStringFunc(command, func(m string) string {
		name := m[len(Marker):]
		switch name {
		case "args":
			return strings.Join(args, " ")
		case "path":
			return f.Path
		case "dir":
			return f.Dir
		case "file":
			return f.Base
		case "name":
			return f.Name
		case "ext":
			return f.Ext
		case "stem":
			return f.Stem
		}

		if value, ok := lookup(name); ok {
			return value
		}
		unknown = append(unknown, name)
		return m
	})

	return expanded, unknown
}
