package options

import (
	"fmt"
	"io"
)

// Usage is the launcher's help text, shown for -h, for unrecognized
// options and when no target file is given. The text is maintained by
// hand so the option list can carry the attached-value forms.
const Usage = `usage: run [<options>] <file> [<args>]

Run a script via the interpreter named on its first line, whether or not
the file itself is executable. The interpreter directive is any text
following "#!" on the first line of <file>.

options:
  -v          echo the resolved command before running it
  -x          resolve and echo the command, but do not run it (implies -v)
  -q          do not echo the resolved command
  -t          report elapsed wall-clock time when the command finishes
  -R          merge the command's stderr into its stdout
  -C[<dir>]   change directory before running (default: the file's directory)
  -s[<file>]  redirect the command's stdin (default: the file itself)
  -i[<cmd>]   use <cmd> as the interpreter instead of the directive line
  -n[<cmd>]   run <cmd> when the command finishes (default: ring the bell)
  -c          keep the system awake while the command runs (best effort)
  -p          ask for confirmation before running (implies -v)
  -h          show this help and exit

Option values must be attached to their flag (-C/tmp, not -C /tmp).
Options are also read from the RUN_OPTIONS environment variable and the
"options" entry of the config file; a "--" on the command line discards
any options given before it.
`

// PrintUsage writes the help text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, Usage)
}
