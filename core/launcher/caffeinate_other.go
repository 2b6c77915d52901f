//go:build !darwin

package launcher

// caffeinateArgv is empty where the platform has no caffeinate
// equivalent; -c is accepted but does nothing.
var caffeinateArgv []string
