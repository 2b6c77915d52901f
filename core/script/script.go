// Package script derives the path components of the target file that the
// launcher and the template substitutor work with.
package script

import (
	"path/filepath"
	"strings"
)

// File is the launcher's view of the target file. All components are
// derived once from the path given on the command line.
type File struct {
	// Path is the absolute path to the file.
	Path string
	// Dir is the directory containing the file.
	Dir string
	// Base is the file name without its directory.
	Base string
	// Name is Base without its extension.
	Name string
	// Ext is the extension without the leading dot, "" when there is none.
	Ext string
	// Stem is Path without the extension.
	Stem string
}

// Resolve builds the File for path, which may be relative to the current
// directory.
func Resolve(path string) (File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return File{}, err
	}

	ext := filepath.Ext(abs)
	base := filepath.Base(abs)
	if ext == base {
		// A leading dot names a hidden file, not an extension.
		ext = ""
	}
	return File{
		Path: abs,
		Dir:  filepath.Dir(abs),
		Base: base,
		Name: strings.TrimSuffix(base, ext),
		Ext:  strings.TrimPrefix(ext, "."),
		Stem: strings.TrimSuffix(abs, ext),
	}, nil
}
