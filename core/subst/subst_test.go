package subst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enigmatic-code/run/core/script"
)

var testFile = script.File{
	Path: "/tmp/foo.txt",
	Dir:  "/tmp",
	Base: "foo.txt",
	Name: "foo",
	Ext:  "txt",
	Stem: "/tmp/foo",
}

func noEnv(string) (string, bool) { return "", false }

func TestActive(t *testing.T) {
	assert.True(t, Active("interp @path"))
	assert.True(t, Active("mail user@example.com"))
	assert.False(t, Active("/bin/sh -e"))
	assert.False(t, Active(""))
}

func TestExpand(t *testing.T) {
	cases := []struct {
		name    string
		command string
		args    []string
		want    string
	}{
		{
			name:    "file components",
			command: "interp @name.@ext",
			want:    "interp foo.txt",
		},
		{
			name:    "name differs from file",
			command: "cmp @name @file",
			want:    "cmp foo foo.txt",
		},
		{
			name:    "path dir file",
			command: "cp @path @dir/copy-of-@file",
			want:    "cp /tmp/foo.txt /tmp/copy-of-foo.txt",
		},
		{
			name:    "stem",
			command: "gcc -o @stem @path",
			want:    "gcc -o /tmp/foo /tmp/foo.txt",
		},
		{
			name:    "args joined",
			command: "python3 @path @args",
			args:    []string{"-n", "5"},
			want:    "python3 /tmp/foo.txt -n 5",
		},
		{
			name:    "args empty",
			command: "python3 @path @args",
			want:    "python3 /tmp/foo.txt ",
		},
		{
			name:    "bare marker untouched",
			command: "interp @ @path",
			want:    "interp @ /tmp/foo.txt",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, unknown := Expand(tc.command, testFile, tc.args, noEnv)
			assert.Equal(t, tc.want, got)
			assert.Empty(t, unknown)
		})
	}
}

func TestExpandEnvironment(t *testing.T) {
	env := map[string]string{"CFLAGS": "-O2 -Wall"}
	lookup := func(name string) (string, bool) {
		value, ok := env[name]
		return value, ok
	}

	got, unknown := Expand("cc @CFLAGS @path", testFile, nil, lookup)
	assert.Equal(t, "cc -O2 -Wall /tmp/foo.txt", got)
	assert.Empty(t, unknown)
}

func TestExpandUnknownNames(t *testing.T) {
	got, unknown := Expand("interp @nope @path @missing", testFile, nil, noEnv)
	assert.Equal(t, "interp @nope /tmp/foo.txt @missing", got)
	assert.Equal(t, []string{"nope", "missing"}, unknown)
}

func TestExpandSinglePass(t *testing.T) {
	// A value containing template syntax must not be expanded again.
	lookup := func(name string) (string, bool) {
		if name == "TRICK" {
			return "@path", true
		}
		return "", false
	}

	got, unknown := Expand("interp @TRICK", testFile, nil, lookup)
	assert.Equal(t, "interp @path", got)
	assert.Empty(t, unknown)
}
