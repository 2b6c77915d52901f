// Package config loads the launcher's optional configuration file.
//
// The file is YAML, found at $RUN_CONFIG or at run/config.yaml under the
// platform's user configuration directory. A missing file is not an
// error; every setting has a zero default.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// Name is the configuration file name inside the config directory.
	Name = "config.yaml"
	// EnvPath overrides the configuration file location.
	EnvPath = "RUN_CONFIG"
)

// Config carries the launcher defaults.
type Config struct {
	// Options is a default option prefix, parsed before RUN_OPTIONS and
	// the command line and overridable by both.
	Options string `json:"options"`

	// Interpreters maps file extensions (without the dot) to interpreter
	// commands, consulted when a file has no interpreter directive and is
	// not executable.
	Interpreters map[string]string `json:"interpreters" validate:"omitempty,dive,keys,excludesall=./,endkeys,required"`

	// Log names a file that receives one JSON record per invocation.
	// Empty disables invocation logging.
	Log string `json:"log"`
}

// Validate the configuration for basic semantic errors, reporting fields
// by their file names.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Path returns the configuration file location: $RUN_CONFIG when set,
// otherwise the per-user default. An empty result means this system has
// no configuration directory.
func Path(lookup func(string) (string, bool)) string {
	if path, ok := lookup(EnvPath); ok && path != "" {
		return path
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "run", Name)
}
