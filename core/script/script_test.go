package script

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		path string
		want File
	}{
		{
			path: "/tmp/foo.txt",
			want: File{Path: "/tmp/foo.txt", Dir: "/tmp", Base: "foo.txt", Name: "foo", Ext: "txt", Stem: "/tmp/foo"},
		},
		{
			path: "/tmp/archive.tar.gz",
			want: File{Path: "/tmp/archive.tar.gz", Dir: "/tmp", Base: "archive.tar.gz", Name: "archive.tar", Ext: "gz", Stem: "/tmp/archive.tar"},
		},
		{
			path: "/usr/local/bin/script",
			want: File{Path: "/usr/local/bin/script", Dir: "/usr/local/bin", Base: "script", Name: "script", Ext: "", Stem: "/usr/local/bin/script"},
		},
		{
			path: "/home/user/.profile",
			want: File{Path: "/home/user/.profile", Dir: "/home/user", Base: ".profile", Name: ".profile", Ext: "", Stem: "/home/user/.profile"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := Resolve(tc.path)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveRelative(t *testing.T) {
	got, err := Resolve("foo.py")
	assert.Nil(t, err)
	assert.True(t, filepath.IsAbs(got.Path))
	assert.Equal(t, "foo.py", got.Base)
	assert.Equal(t, "foo", got.Name)
	assert.Equal(t, "py", got.Ext)
}
