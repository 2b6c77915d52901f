// Package runlog records one entry per invocation in newline delimited
// JSON object format, for auditing what the launcher actually ran.
package runlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
)

// EnvPath overrides the log destination from the config file.
const EnvPath = "RUN_LOG"

// Entry is a single recorded invocation.
type Entry struct {
	TimestampMicros int64    `json:"timestamp_micros"`
	Target          string   `json:"target"`
	Argv            []string `json:"argv"`
	Dir             string   `json:"dir,omitempty"`
	ExitStatus      int      `json:"exit_status"`
	ElapsedMicros   int64    `json:"elapsed_micros"`
	DryRun          bool     `json:"dry_run,omitempty"`
}

// Recorder is a callback that stores entries in an external datastore.
type Recorder func(e *Entry) error

// NewJsonLinesRecorder creates a Recorder that exports entries in
// newline delimited JSON object format.
func NewJsonLinesRecorder(w io.Writer) Recorder {
	return func(e *Entry) error {
		entry, err := json.Marshal(e)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(entry))
		return err
	}
}

// Record builds the entry for one finished invocation and hands it to
// record.
func Record(record Recorder, target string, argv []string, dir string, status int, elapsed time.Duration, dry bool) error {
	return record(&Entry{
		TimestampMicros: time.Now().UnixMicro(),
		Target:          target,
		Argv:            argv,
		Dir:             dir,
		ExitStatus:      status,
		ElapsedMicros:   elapsed.Microseconds(),
		DryRun:          dry,
	})
}

// Open opens the invocation log at path in an append only state.
func Open(fsys afero.Fs, path string) (afero.File, error) {
	return fsys.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}
