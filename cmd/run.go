package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/rfext/internal/cli/handlers"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <suite-file>",
	Short: "Run a keyword suite",
	Long: `Run the steps of a YAML or JSON suite file in order and report each one.

A suite file looks like this:

  name: folder smoke test
  fail_fast: true
  steps:
    - keyword: create_folder
      args: ["/tmp/rfext/demo", false, true]
    - keyword: Delete Folder
      args: {path: /tmp/rfext/demo}
    - keyword: delete_folder
      args: {path: /tmp/rfext/demo}
      expect_failure: true

Step arguments are a list (positional) or a mapping (named). A step passes
when the keyword succeeds, or fails while expect_failure is set. The command
exits with status 1 if any step did not pass.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var failFast *bool
		if cmd.Flags().Changed("fail-fast") {
			v, _ := cmd.Flags().GetBool("fail-fast")
			failFast = &v
		}
		handlers.RunSuite(deps(), args[0], failFast)
	},
}

// keywordsCmd represents the keywords command
var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the available keywords",
	Long:  `List every keyword with its arguments and documentation.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListKeywords(deps())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(keywordsCmd)

	runCmd.Flags().Bool("fail-fast", false, "Skip the remaining steps after the first failure (overrides the suite)")
}
