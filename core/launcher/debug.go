package launcher

import (
	"io"

	"github.com/charmbracelet/log"
)

// EnvDebug enables debug tracing to stderr when set to anything
// non-empty.
const EnvDebug = "RUN_DEBUG"

// newDebugLogger returns a trace logger on w when enabled, otherwise one
// that discards everything.
func newDebugLogger(w io.Writer, enabled bool) *log.Logger {
	if !enabled {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  log.DebugLevel,
		Prefix: "run",
	})
}
