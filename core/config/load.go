package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads and validates the configuration at path. An empty path or a
// missing file yields the zero configuration; a file that exists but
// does not parse or validate is an error, since silently ignoring it
// would run commands without the defaults the user wrote down.
func Load(fsys afero.Fs, path string) (*Config, error) {
	var out Config
	if path == "" {
		return &out, nil
	}

	contents, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return &out, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
