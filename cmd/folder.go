package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/rfext/internal/cli/handlers"
)

// folderCmd groups the folder lifecycle commands
var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Create or delete folders with retry",
	Long: `Create or delete a folder. Failed attempts are retried according to the
[folder] section of the config file (4 delete attempts, 3 create attempts,
2s apart by default). Progress is written to stdout, failures to stderr.`,
}

var folderCreateCmd = &cobra.Command{
	Use:   "create <path>",
	Short: "Create a folder",
	Long: `Create a folder. An existing folder is kept unless --overwrite is given,
in which case it is deleted first.

Examples:
  rfext folder create /tmp/demo
  rfext folder create /tmp/a/b/c --recursive
  rfext folder create /tmp/demo --overwrite`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		recursive, _ := cmd.Flags().GetBool("recursive")
		handlers.CreateFolder(deps(), args[0], overwrite, recursive)
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete a folder and its content",
	Long: `Delete a folder and everything below it. Write-protected entries are made
writable and removed again.

A folder that does not exist is reported as a failure unless --confirm=false
is given.

Examples:
  rfext folder delete /tmp/demo
  rfext folder delete /tmp/maybe --confirm=false`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		confirm, _ := cmd.Flags().GetBool("confirm")
		handlers.DeleteFolder(deps(), args[0], confirm)
	},
}

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.AddCommand(folderCreateCmd)
	folderCmd.AddCommand(folderDeleteCmd)

	folderCreateCmd.Flags().Bool("overwrite", false, "Delete an existing folder first")
	folderCreateCmd.Flags().BoolP("recursive", "r", false, "Create missing parent folders")
	folderDeleteCmd.Flags().Bool("confirm", true, "Fail when the folder does not exist")
}
