package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/rfext/internal/cli"
	"github.com/xolan/rfext/internal/folder"
	"github.com/xolan/rfext/internal/service"
)

// CreateFolder creates the folder at path, writing attempt progress to stdout
func CreateFolder(deps *cli.Deps, path string, overwrite, recursive bool) {
	deps.Services.Folder.SetProgress(deps.Stdout)
	defer deps.Services.Folder.SetProgress(nil)

	res, err := deps.Services.Folder.Create(path, overwrite, recursive)
	if err != nil {
		folderError(deps, err)
		return
	}
	reportResult(deps, res)
}

// DeleteFolder deletes the folder at path, writing attempt progress to stdout
func DeleteFolder(deps *cli.Deps, path string, confirm bool) {
	deps.Services.Folder.SetProgress(deps.Stdout)
	defer deps.Services.Folder.SetProgress(nil)

	res, err := deps.Services.Folder.Delete(path, confirm)
	if err != nil {
		folderError(deps, err)
		return
	}
	reportResult(deps, res)
}

func folderError(deps *cli.Deps, err error) {
	var hint string
	switch {
	case errors.Is(err, folder.ErrNoPath):
		hint = "Pass the folder to operate on, e.g. 'rfext folder create /tmp/demo'"
	case errors.Is(err, folder.ErrDuplicateOwnership):
		hint = "Another handle in this process owns the folder"
	}
	cli.PrintError(deps.Stderr, "Failed to open folder", err, hint)
	deps.Exit(1)
}

// reportResult prints a successful message on stdout and a failure on
// stderr with exit code 1.
func reportResult(deps *cli.Deps, res service.Result) {
	if res.Success {
		_, _ = fmt.Fprintln(deps.Stdout, res.Message)
		return
	}
	_, _ = fmt.Fprintln(deps.Stderr, res.Message)
	deps.Exit(1)
}
