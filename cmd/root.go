package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/rfext/internal/cli"
	"github.com/xolan/rfext/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "rfext",
	Short: "Keyword toolbox for data printing, path normalization and folders",
	Long: `rfext exposes a small set of keywords on the command line: pretty-printing
of structured data, path normalization, and folder create/delete with retry.

Usage:
  rfext pretty-print data.yaml                  Print a data file one element per line
  rfext normalize-path 'C:\a\..\b' --win        Normalize a path
  rfext folder create /tmp/demo --recursive     Create a folder (and its parents)
  rfext folder delete /tmp/demo                 Delete a folder and its content
  rfext run suite.yaml                          Run a keyword suite
  rfext keywords                                List the available keywords
  rfext config                                  Show the effective configuration
  rfext tui                                     Launch the interactive terminal UI

Logs go to stderr. Use -v 1..5 (error..trace) to change the log level.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		_ = cmd.Help()
	},
}

var (
	configFlag  string
	verboseFlag int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: <user config dir>/rfext/config.toml)")
	rootCmd.PersistentFlags().IntVarP(&verboseFlag, "verbose", "v", 0, "Log verbosity from 1 (error) to 5 (trace), overrides log_level")
}

// setup loads the services unless a test already provided them, then
// points the logger at stderr.
func setup(cmd *cobra.Command, args []string) error {
	d := deps()
	if d.Services == nil {
		services, err := cli.LoadServices(configFlag)
		if err != nil {
			cli.PrintError(d.Stderr, "Failed to load configuration", err, "Fix the config file or pass another one with --config")
			cmd.SilenceErrors = true
			cmd.SilenceUsage = true
			return err
		}
		d.Services = services
	}

	level := d.Services.Config.Get().Level()
	if verboseFlag > 0 {
		level = logging.LevelFromVerbosity(verboseFlag)
	}
	logging.Initialize(level, d.Stderr)
	return nil
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"rfext version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
