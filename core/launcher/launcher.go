// Package launcher drives a single invocation: option parsing,
// interpreter resolution, template substitution and the child process
// itself.
package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/anmitsu/go-shlex"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/enigmatic-code/run/core/config"
	"github.com/enigmatic-code/run/core/options"
	"github.com/enigmatic-code/run/core/runlog"
	"github.com/enigmatic-code/run/core/script"
	"github.com/enigmatic-code/run/core/shebang"
	"github.com/enigmatic-code/run/core/shquote"
	"github.com/enigmatic-code/run/core/subst"
)

// EnvOptions supplies default options, parsed after the config file's
// and before the command line's.
const EnvOptions = "RUN_OPTIONS"

var diagPrefix = color.New(color.FgRed, color.Bold)

// Launcher wires one invocation together. The zero value is not usable;
// New fills in the operating system bindings and tests substitute their
// own.
type Launcher struct {
	FS afero.Fs

	// Stdin is the launcher's own input. The confirmation prompt reads
	// from it and the child inherits it.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// LookupEnv resolves template names and the RUN_* variables.
	LookupEnv func(string) (string, bool)

	// Spawn starts a process and waits for it.
	Spawn SpawnFunc

	// Caffeinate is the wrapper prepended by -c, empty where the
	// platform has no equivalent.
	Caffeinate []string

	// Log receives debug traces when RUN_DEBUG is set.
	Log *log.Logger
}

// New returns a Launcher bound to the real operating system.
func New() *Launcher {
	return &Launcher{
		FS:         afero.NewOsFs(),
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		LookupEnv:  os.LookupEnv,
		Spawn:      spawn,
		Caffeinate: caffeinateArgv,
		Log:        newDebugLogger(os.Stderr, os.Getenv(EnvDebug) != ""),
	}
}

// Run executes one invocation and returns the launcher's exit status:
// the child's own status, 0 for help and dry runs, 1 when the command
// could not be resolved, and 126 or 127 when it could not be started.
func (l *Launcher) Run(argv []string) int {
	cfg, err := config.Load(l.FS, config.Path(l.LookupEnv))
	if err != nil {
		l.diagf("%v", err)
		return 1
	}

	tokens := append(prefixTokens(cfg.Options, l.getenv(EnvOptions)), argv...)
	l.Log.Debug("parsing command line", "tokens", tokens)

	pass1, err := options.Parse(tokens)
	if err != nil || pass1.Help || len(pass1.Rest) == 0 {
		options.PrintUsage(l.Stdout)
		return 0
	}

	var opts options.Options
	pass1.Delta.Apply(&opts)

	file, err := script.Resolve(pass1.Rest[0])
	if err != nil {
		l.diagf("%v", err)
		return 1
	}
	args := pass1.Rest[1:]

	raw, err := l.resolveCommand(opts, file, cfg)
	if err != nil {
		l.diagf("%v", err)
		return 1
	}
	l.Log.Debug("resolved interpreter", "command", raw)

	substituted := subst.Active(raw)
	if substituted {
		var unknown []string
		raw, unknown = subst.Expand(raw, file, args, l.LookupEnv)
		for _, name := range unknown {
			l.diagf("%s%s: not defined", subst.Marker, name)
		}
	}

	words, err := shlex.Split(raw, true)
	if err != nil {
		l.diagf("%s: bad interpreter command: %v", file.Path, err)
		return 1
	}

	pass2, err := options.Parse(words)
	if err != nil || pass2.Help {
		options.PrintUsage(l.Stdout)
		return 0
	}
	pass2.Delta.Apply(&opts)

	cmdline := pass2.Rest
	if !substituted {
		// The command placed the file and arguments itself if it used
		// templates; otherwise they follow the interpreter.
		if !opts.StdinSet {
			cmdline = append(cmdline, file.Path)
		}
		cmdline = append(cmdline, args...)
	}
	if len(cmdline) == 0 {
		l.diagf("%s: empty command", file.Path)
		return 1
	}
	if opts.Caffeinate && len(l.Caffeinate) > 0 {
		cmdline = append(append([]string{}, l.Caffeinate...), cmdline...)
	}

	dir := ""
	if opts.ChdirSet {
		dir = opts.Chdir
		if dir == "" {
			dir = file.Dir
		}
	}

	if opts.Verbose {
		if dir != "" {
			fmt.Fprintln(l.Stderr, "cd "+shquote.Token(dir))
		}
		fmt.Fprintln(l.Stderr, shquote.Join(cmdline))
	}
	l.Log.Debug("launching", "argv", cmdline, "dir", dir, "dry", opts.DryRun)

	if opts.Confirm && !l.confirm() {
		return 0
	}
	if opts.DryRun {
		l.record(cfg, file, cmdline, dir, 0, 0, true)
		return 0
	}

	proc := Proc{Argv: cmdline, Dir: dir, Stdin: l.Stdin, Stdout: l.Stdout, Stderr: l.Stderr}
	if opts.MergeErr {
		proc.Stderr = l.Stdout
	}
	if opts.StdinSet {
		name := opts.StdinFile
		if name == "" {
			name = file.Path
		}
		fd, err := l.FS.Open(name)
		if err != nil {
			l.diagf("%v", err)
			return 1
		}
		defer fd.Close()
		proc.Stdin = fd
	}

	start := time.Now()
	status, err := l.Spawn(proc)
	elapsed := time.Since(start)
	if err != nil {
		l.diagf("%s: %v", cmdline[0], err)
	}
	l.Log.Debug("finished", "status", status, "elapsed", elapsed)

	if opts.Timing {
		fmt.Fprintf(l.Stderr, "%s: %s\n", file.Base, FormatElapsed(elapsed))
	}
	l.notify(opts)
	l.record(cfg, file, cmdline, dir, status, elapsed, false)

	return status
}

// resolveCommand produces the raw interpreter command: the -i override
// when one was given, otherwise the file's directive line, otherwise a
// configured fallback for the file's extension.
func (l *Launcher) resolveCommand(opts options.Options, file script.File, cfg *config.Config) (string, error) {
	if opts.InterpSet {
		return opts.Interp, nil
	}

	raw, err := shebang.Resolver{FS: l.FS}.Command(file)
	if errors.Is(err, shebang.ErrNoInterpreter) {
		if cmd, ok := cfg.Interpreters[file.Ext]; ok {
			l.Log.Debug("using configured interpreter", "ext", file.Ext, "command", cmd)
			return cmd, nil
		}
	}
	return raw, err
}

// confirm asks before running. Any answer starting with n or N declines;
// everything else, including end of input, accepts.
func (l *Launcher) confirm() bool {
	fmt.Fprint(l.Stderr, "run? [Y/n] ")
	line, _ := bufio.NewReader(l.Stdin).ReadString('\n')
	line = strings.TrimSpace(line)
	return !strings.HasPrefix(strings.ToLower(line), "n")
}

// notify signals completion: the -n command when one was given, the
// terminal bell otherwise. Notification failures are reported but never
// change the exit status.
func (l *Launcher) notify(opts options.Options) {
	if !opts.NotifySet {
		return
	}
	if opts.Notify == "" {
		fmt.Fprint(l.Stderr, "\a")
		return
	}

	words, err := shlex.Split(opts.Notify, true)
	if err != nil {
		l.diagf("notify: %v", err)
		return
	}
	if len(words) == 0 {
		return
	}
	if _, err := l.Spawn(Proc{Argv: words, Stdin: l.Stdin, Stdout: l.Stdout, Stderr: l.Stderr}); err != nil {
		l.diagf("notify: %v", err)
	}
}

// record appends the invocation to the log named by RUN_LOG or the
// config file, best effort.
func (l *Launcher) record(cfg *config.Config, file script.File, argv []string, dir string, status int, elapsed time.Duration, dry bool) {
	path := cfg.Log
	if env, ok := l.LookupEnv(runlog.EnvPath); ok && env != "" {
		path = env
	}
	if path == "" {
		return
	}

	fd, err := runlog.Open(l.FS, path)
	if err != nil {
		l.Log.Debug("invocation log unavailable", "path", path, "err", err)
		return
	}
	defer fd.Close()

	if err := runlog.Record(runlog.NewJsonLinesRecorder(fd), file.Path, argv, dir, status, elapsed, dry); err != nil {
		l.Log.Debug("invocation log write failed", "path", path, "err", err)
	}
}

// diagf prints a diagnostic on the launcher's own behalf, prefixed so it
// cannot be mistaken for child output.
func (l *Launcher) diagf(format string, args ...interface{}) {
	fmt.Fprintf(l.Stderr, "%s %s\n", diagPrefix.Sprint("run:"), fmt.Sprintf(format, args...))
}

func (l *Launcher) getenv(name string) string {
	value, _ := l.LookupEnv(name)
	return value
}

// prefixTokens builds the default option prefix: config first, then
// RUN_OPTIONS, so the environment and then the command line override it
// field by field.
func prefixTokens(configOpts, envOpts string) []string {
	return append(strings.Fields(configOpts), strings.Fields(envOpts)...)
}
