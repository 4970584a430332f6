package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/rfext/internal/cli"
	"github.com/xolan/rfext/internal/keyword"
	"github.com/xolan/rfext/internal/suite"
)

// ListKeywords prints every registered keyword with its documentation
func ListKeywords(deps *cli.Deps) {
	lib, err := keyword.NewDefaultLibrary(deps.Services)
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to build keyword library", err, "")
		deps.Exit(1)
		return
	}

	kws := lib.Keywords()
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s available:\n", len(kws), cli.Pluralize("keyword", len(kws)))
	for _, k := range kws {
		_, _ = fmt.Fprintln(deps.Stdout)
		for _, line := range cli.FormatKeyword(k) {
			_, _ = fmt.Fprintln(deps.Stdout, line)
		}
	}
}

// RunSuite runs the suite file at path and exits 1 unless every step
// passed. A non-nil failFast overrides the suite's own setting.
func RunSuite(deps *cli.Deps, path string, failFast *bool) {
	s, err := suite.Load(path)
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to load suite", err, "A suite is a YAML or JSON file with a 'steps' list of {keyword, args}")
		deps.Exit(1)
		return
	}
	if failFast != nil {
		s.FailFast = *failFast
	}

	lib, err := keyword.NewDefaultLibrary(deps.Services)
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to build keyword library", err, "")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Suite: %s (%d %s)\n", s.Name, len(s.Steps), cli.Pluralize("step", len(s.Steps)))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	report := suite.NewRunner(lib, deps.Stdout).Run(s)

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "%s in %s\n", report.Summary(), cli.FormatElapsed(report.Duration))
	if !report.Passed() {
		deps.Exit(1)
	}
}
