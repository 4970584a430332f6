package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xolan/rfext/internal/cli/handlers"
	"github.com/xolan/rfext/internal/service"
)

// normalizePathCmd represents the normalize-path command
var normalizePathCmd = &cobra.Command{
	Use:   "normalize-path <path>",
	Short: "Normalize a local path, network share or internet address",
	Long: `Normalize a path: collapse separators, resolve '..' segments, expand
environment variables and optionally join it to a reference path.

Options left unset fall back to the [path] section of the config file.

Examples:
  rfext normalize-path 'C:\subfolder1///../subfolder2\\../subfolder3\'
  rfext normalize-path '\\server\share\dir' --win --mask=false
  rfext normalize-path 'sub/dir' --reference /srv/base
  rfext normalize-path '$HOME/work dir' --blanks`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.NormalizePath(deps(), args[0], pathOverrides(cmd.Flags()))
	},
}

func init() {
	rootCmd.AddCommand(normalizePathCmd)

	normalizePathCmd.Flags().Bool("win", false, "Use backslash separators")
	normalizePathCmd.Flags().String("reference", "", "Absolute path joined in front of a relative path")
	normalizePathCmd.Flags().Bool("blanks", false, "Quote the result if it contains blanks")
	normalizePathCmd.Flags().Bool("expand-env", true, "Resolve environment variables")
	normalizePathCmd.Flags().Bool("mask", true, "Double backslashes (with --win only)")
}

// pathOverrides turns the flags the user actually set into overrides, so
// unset flags keep the configured defaults.
func pathOverrides(flags *pflag.FlagSet) service.PathOverrides {
	var o service.PathOverrides
	if flags.Changed("win") {
		v, _ := flags.GetBool("win")
		o.Windows = &v
	}
	if flags.Changed("reference") {
		v, _ := flags.GetString("reference")
		o.ReferencePath = &v
	}
	if flags.Changed("blanks") {
		v, _ := flags.GetBool("blanks")
		o.ConsiderBlanks = &v
	}
	if flags.Changed("expand-env") {
		v, _ := flags.GetBool("expand-env")
		o.ExpandEnvVars = &v
	}
	if flags.Changed("mask") {
		v, _ := flags.GetBool("mask")
		o.Mask = &v
	}
	return o
}
