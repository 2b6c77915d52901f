// Package shquote renders argument vectors in a shell-like form for
// display. The rendering is only ever echoed to the user; execution
// always passes the argument vector to the operating system directly.
package shquote

import "strings"

// safe reports whether c needs no escaping.
func safe(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.ContainsRune("-_+@:.,/=", c)
}

// Token renders a single argument. Tokens made entirely of safe
// characters pass through unchanged; anything else is wrapped in double
// quotes with every unsafe character except the space backslash-escaped.
// The empty token renders as a pair of double quotes.
func Token(s string) string {
	if s == "" {
		return `""`
	}

	var b strings.Builder
	quote := false
	for _, c := range s {
		switch {
		case safe(c):
			b.WriteRune(c)
		case c == ' ':
			quote = true
			b.WriteRune(c)
		default:
			quote = true
			b.WriteByte('\\')
			b.WriteRune(c)
		}
	}

	if !quote {
		return b.String()
	}
	return `"` + b.String() + `"`
}

// Join renders the whole argument vector on one line.
func Join(argv []string) string {
	tokens := make([]string, len(argv))
	for i, arg := range argv {
		tokens[i] = Token(arg)
	}
	return strings.Join(tokens, " ")
}
