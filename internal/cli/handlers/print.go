package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/xolan/rfext/internal/cli"
	"github.com/xolan/rfext/internal/service"
)

// PrettyPrint decodes structured data and prints one line per element.
// The data comes from inline (when set), stdin (source "-") or the file
// named by source.
func PrettyPrint(deps *cli.Deps, source, inline, format string) {
	f, err := service.ParseFormat(format)
	if err != nil {
		cli.PrintError(deps.Stderr, "Invalid format", err, "Valid formats: json, yaml, toml")
		deps.Exit(1)
		return
	}

	var data any
	switch {
	case inline != "":
		data, err = deps.Services.Print.Decode([]byte(inline), f)
	case source == "-":
		var raw []byte
		raw, err = io.ReadAll(deps.Stdin)
		if err == nil {
			data, err = deps.Services.Print.Decode(raw, f)
		}
	case source != "":
		data, err = deps.Services.Print.LoadFile(source, f)
	default:
		err = errors.New("no file, stdin or --data given")
	}
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to load data", err, "Pass a JSON, YAML or TOML file, '-' for stdin, or --data '<value>'")
		deps.Exit(1)
		return
	}

	for _, line := range deps.Services.Print.PrettyPrint(data) {
		_, _ = fmt.Fprintln(deps.Stdout, line)
	}
}
