package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the command that prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for familytree and print it to stdout.

Load completions for the current session:

  bash:        source <(familytree completion bash)
  zsh:         source <(familytree completion zsh)
  fish:        familytree completion fish | source
  powershell:  familytree completion powershell | Out-String | Invoke-Expression

To load them in every session, write the script to your shell's completion
directory instead, e.g.

  familytree completion zsh > "${fpath[1]}/_familytree"
  familytree completion fish > ~/.config/fish/completions/familytree.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
