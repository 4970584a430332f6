package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xolan/rfext/internal/cli"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for rfext.

The completion command allows you to generate shell completion scripts for
bash, zsh, fish, and powershell. This enables tab-completion for commands,
flags, and arguments in your shell.

Usage:
  rfext completion bash       Generate bash completion script
  rfext completion zsh        Generate zsh completion script
  rfext completion fish       Generate fish completion script
  rfext completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(rfext completion bash)

  # Install completion permanently:
  # Linux:
  rfext completion bash > ~/.local/share/bash-completion/completions/rfext

  # macOS (requires bash-completion from Homebrew):
  rfext completion bash > $(brew --prefix)/etc/bash_completion.d/rfext

Zsh:
  # Load completion temporarily (current session only):
  source <(rfext completion zsh)

  # Install completion permanently:
  # Add to ~/.zshrc:
  echo 'fpath=(~/.zsh/completion $fpath)' >> ~/.zshrc
  echo 'autoload -Uz compinit && compinit' >> ~/.zshrc

  # Generate completion file:
  mkdir -p ~/.zsh/completion
  rfext completion zsh > ~/.zsh/completion/_rfext

  # Then restart your shell

Fish:
  # Install completion permanently:
  rfext completion fish > ~/.config/fish/completions/rfext.fish

PowerShell:
  # Open your PowerShell profile:
  notepad $PROFILE

  # Add this line to your profile:
  rfext completion powershell | Out-String | Invoke-Expression

  # Save and restart PowerShell`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	// Completion scripts are generated without loading the config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// completionGenerators writes the completion script for each supported shell
var completionGenerators = map[string]func(w io.Writer) error{
	"bash": rootCmd.GenBashCompletion,
	"zsh":  rootCmd.GenZshCompletion,
	"fish": func(w io.Writer) error {
		return rootCmd.GenFishCompletion(w, true)
	},
	"powershell": rootCmd.GenPowerShellCompletionWithDesc,
}

// generateCompletion writes the completion script for shell to stdout
func generateCompletion(shell string) {
	d := deps()
	gen, ok := completionGenerators[shell]
	if !ok {
		cli.PrintError(d.Stderr, fmt.Sprintf("Unsupported shell '%s'", shell), nil, "Supported shells: bash, zsh, fish, powershell")
		d.Exit(1)
		return
	}

	if err := gen(d.Stdout); err != nil {
		cli.PrintError(d.Stderr, fmt.Sprintf("Failed to generate %s completion", shell), err, "")
		d.Exit(1)
	}
}
