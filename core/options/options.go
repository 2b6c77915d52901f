// Package options parses the launcher's command line.
//
// The same grammar is parsed twice per invocation: once over the command
// line, prefixed by any defaults from the config file and RUN_OPTIONS,
// and once over the tokens of the resolved interpreter command, since a
// directive line may carry options meant for the launcher itself. Each
// pass is one Parse call; the resulting Deltas apply left to right onto
// a single Options value, giving later passes field-by-field precedence.
package options

import (
	getopt "github.com/pborman/getopt/v2"
)

// Options is the launcher configuration after all parse passes.
type Options struct {
	Verbose    bool // echo the resolved command
	DryRun     bool // resolve and echo but do not execute
	Timing     bool // report elapsed wall-clock time
	MergeErr   bool // point the child's stderr at stdout
	Caffeinate bool // keep the system awake while the child runs
	Confirm    bool // ask before executing

	Chdir    string // working directory, "" meaning the file's directory
	ChdirSet bool

	StdinFile string // child stdin source, "" meaning the file itself
	StdinSet  bool

	Interp    string // interpreter command overriding the directive line
	InterpSet bool

	Notify    string // command to run on completion, "" meaning ring the bell
	NotifySet bool
}

// Delta records the settings one parse pass made, in command line order.
type Delta struct {
	edits []func(*Options)
}

// Apply replays the delta onto opts.
func (d Delta) Apply(opts *Options) {
	for _, edit := range d.edits {
		edit(opts)
	}
}

func (d *Delta) add(edit func(*Options)) {
	d.edits = append(d.edits, edit)
}

// Result is the outcome of one parse pass.
type Result struct {
	Delta Delta
	// Rest holds the first non-option token and everything after it: the
	// target file and its arguments on the command line pass, the
	// interpreter argument vector on the directive pass.
	Rest []string
	// Help is set when -h was seen.
	Help bool
}

// Parse consumes leading options from tokens. Option values must be
// attached (-C/tmp, not -C /tmp); a detached token after a value option
// is the start of Rest. Parsing never mutates shared state, so passes
// are independent. An error reports an unrecognized option.
func Parse(tokens []string) (Result, error) {
	tokens = discardOverridden(tokens)

	var res Result

	set := getopt.New()
	set.Bool('v', "echo the resolved command")
	set.Bool('x', "dry run, implies -v")
	set.Bool('q', "do not echo the resolved command")
	set.Bool('t', "report elapsed time")
	set.Bool('R', "merge stderr into stdout")
	chdir := set.String('C', "", "working directory", "dir")
	stdin := set.String('s', "", "stdin source", "file")
	interp := set.String('i', "", "interpreter command", "cmd")
	notify := set.String('n', "", "completion command", "cmd")
	set.Bool('c', "keep the system awake")
	set.Bool('p', "confirm before executing")
	set.Bool('h', "show usage")

	for _, flag := range "Csin" {
		set.Lookup(flag).SetOptional()
	}

	apply := map[getopt.Option]func(){
		set.Lookup('v'): func() {
			res.Delta.add(func(o *Options) { o.Verbose = true })
		},
		set.Lookup('x'): func() {
			res.Delta.add(func(o *Options) { o.DryRun = true; o.Verbose = true })
		},
		set.Lookup('q'): func() {
			res.Delta.add(func(o *Options) { o.Verbose = false })
		},
		set.Lookup('t'): func() {
			res.Delta.add(func(o *Options) { o.Timing = true })
		},
		set.Lookup('R'): func() {
			res.Delta.add(func(o *Options) { o.MergeErr = true })
		},
		set.Lookup('c'): func() {
			res.Delta.add(func(o *Options) { o.Caffeinate = true })
		},
		set.Lookup('p'): func() {
			res.Delta.add(func(o *Options) { o.Confirm = true; o.Verbose = true })
		},
		set.Lookup('C'): func() {
			dir := *chdir
			res.Delta.add(func(o *Options) { o.Chdir = dir; o.ChdirSet = true })
		},
		set.Lookup('s'): func() {
			file := *stdin
			res.Delta.add(func(o *Options) { o.StdinFile = file; o.StdinSet = true })
		},
		set.Lookup('i'): func() {
			cmd := *interp
			res.Delta.add(func(o *Options) { o.Interp = cmd; o.InterpSet = true })
		},
		set.Lookup('n'): func() {
			cmd := *notify
			res.Delta.add(func(o *Options) { o.Notify = cmd; o.NotifySet = true })
		},
		set.Lookup('h'): func() {
			res.Help = true
		},
	}

	err := set.Getopt(append([]string{"run"}, tokens...), func(opt getopt.Option) bool {
		if fn := apply[opt]; fn != nil {
			fn()
		}
		return true
	})
	if err != nil {
		return Result{}, err
	}

	res.Rest = set.Args()
	return res, nil
}

// discardOverridden implements the "--" override: while every token
// before a "--" is option-like, everything up to and including that "--"
// is dropped. This lets a command line cancel option prefixes supplied
// by RUN_OPTIONS or the config file.
func discardOverridden(tokens []string) []string {
scan:
	for {
		for i, tok := range tokens {
			if tok == "--" {
				tokens = tokens[i+1:]
				continue scan
			}
			if !optionLike(tok) {
				break
			}
		}
		return tokens
	}
}

func optionLike(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && tok != "--"
}
