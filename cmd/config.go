package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/rfext/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for rfext.

Shows the configuration file location, whether it exists, and all current settings.
Configuration values are merged from the config file with sensible defaults.

By default, rfext works without any configuration file. All settings have defaults:
  - log_level: warn
  - theme: dracula
  - folder: 4 delete attempts, 3 create attempts, 2s retry delay
  - path: expand_env_vars and mask on, everything else off

Examples:

  Display current configuration:
    rfext config                     Show all current settings

  Create a commented sample file:
    rfext config init

Configuration file location:
  ~/.config/rfext/config.toml        Linux
  %APPDATA%\rfext\config.toml        Windows

Use --config to read another file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(deps())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Long:  `Write a commented sample config file to the config location. An existing file is never overwritten.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(deps())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
