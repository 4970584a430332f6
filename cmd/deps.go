package cmd

import (
	"github.com/xolan/rfext/internal/cli"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps = cli.Deps

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	cli.SetDeps(d)
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	cli.ResetDeps()
}

// deps returns the dependencies commands run against.
func deps() *Deps {
	return cli.GetDeps()
}
