package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/rfext/internal/cli/handlers"
)

// prettyPrintCmd represents the pretty-print command
var prettyPrintCmd = &cobra.Command{
	Use:   "pretty-print [file|-]",
	Short: "Print structured data one element per line",
	Long: `Decode JSON, YAML or TOML data and print it one element per line, each
line tagged with the element type and its position in the enclosing container.

Usage:
  rfext pretty-print data.json                  Format taken from the extension
  rfext pretty-print - --format yaml < d.yaml   Read from stdin
  rfext pretty-print --data '[1, "a", null]'    Inline value

Without --format the format comes from the file extension, or is detected
from the content (JSON, then TOML, then YAML).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := ""
		if len(args) == 1 {
			source = args[0]
		}
		format, _ := cmd.Flags().GetString("format")
		data, _ := cmd.Flags().GetString("data")
		handlers.PrettyPrint(deps(), source, data, format)
	},
}

func init() {
	rootCmd.AddCommand(prettyPrintCmd)

	prettyPrintCmd.Flags().StringP("format", "f", "", "Data format: json, yaml or toml")
	prettyPrintCmd.Flags().StringP("data", "d", "", "Inline data instead of a file")
}
