package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/rfext/internal/cli"
	"github.com/xolan/rfext/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for rfext.

Views available:
  - Inspect: Open a JSON, YAML or TOML file and browse its pretty-printed lines
  - Paths: Normalize paths live while toggling the options
  - Folders: Create and delete folders, see the last result and open claims
  - Config: View the effective configuration and switch the theme

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-4: Jump to specific view
  - j/k or arrows: Scroll within a view
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI runs the TUI application on the loaded services
func runTUI() {
	d := deps()
	if err := tui.Run(d.Services); err != nil {
		cli.PrintError(d.Stderr, "Failed to run TUI", err, "The TUI needs an interactive terminal")
		d.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
