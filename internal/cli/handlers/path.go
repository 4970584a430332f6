package handlers

import (
	"fmt"

	"github.com/xolan/rfext/internal/cli"
	"github.com/xolan/rfext/internal/service"
)

// NormalizePath prints path normalized with the configured options and the
// given overrides
func NormalizePath(deps *cli.Deps, path string, o service.PathOverrides) {
	_, _ = fmt.Fprintln(deps.Stdout, deps.Services.Path.Normalize(path, o))
}
