//go:build darwin

package launcher

// caffeinateArgv wraps the command in caffeinate(8) so the system stays
// awake until the child exits.
var caffeinateArgv = []string{"caffeinate"}
