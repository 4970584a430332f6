package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/rfext/internal/cli"
)

// ShowConfig displays the current configuration
func ShowConfig(deps *cli.Deps) {
	cfg := deps.Services.Config.Get()
	path := deps.Services.Config.GetPath()

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}
	if backups := deps.Services.Config.Backups(); len(backups) > 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "Backups: %s\n", strings.Join(backups, ", "))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:       %s\n", cfg.LogLevel)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:           %s\n", cfg.Theme)
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "[folder]")
	_, _ = fmt.Fprintf(deps.Stdout, "delete_attempts: %d\n", cfg.Folder.DeleteAttempts)
	_, _ = fmt.Fprintf(deps.Stdout, "create_attempts: %d\n", cfg.Folder.CreateAttempts)
	_, _ = fmt.Fprintf(deps.Stdout, "retry_delay:     %s\n", cfg.Folder.RetryDelay.Duration)
	_, _ = fmt.Fprintln(deps.Stdout)
	_, _ = fmt.Fprintln(deps.Stdout, "[path]")
	_, _ = fmt.Fprintf(deps.Stdout, "windows:         %t\n", cfg.Path.Windows)
	if cfg.Path.ReferencePath == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "reference_path:  (none)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "reference_path:  %s\n", cfg.Path.ReferencePath)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "consider_blanks: %t\n", cfg.Path.ConsiderBlanks)
	_, _ = fmt.Fprintf(deps.Stdout, "expand_env_vars: %t\n", cfg.Path.ExpandEnvVars)
	_, _ = fmt.Fprintf(deps.Stdout, "mask:            %t\n", cfg.Path.Mask)
}

// InitConfig creates a sample config file
func InitConfig(deps *cli.Deps) {
	err := deps.Services.Config.Init()
	if err != nil {
		cli.PrintError(deps.Stderr, "Failed to create config file", err, "Remove the existing file or edit it directly")
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created config file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}
