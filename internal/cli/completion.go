package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command generating shell
// completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	generators := map[string]func(*cobra.Command, io.Writer) error{
		"bash": func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
		"zsh": func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
		"fish": func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
		"powershell": func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	}

	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for the named shell on stdout.

Load it in the current session, or install it where the shell picks it up:

  source <(roomplan completion bash)
  roomplan completion bash > /etc/bash_completion.d/roomplan

  roomplan completion zsh > "${fpath[1]}/_roomplan"

  roomplan completion fish > ~/.config/fish/completions/roomplan.fish

  roomplan completion powershell | Out-String | Invoke-Expression

Zsh needs compinit enabled ("autoload -U compinit; compinit" in ~/.zshrc).`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generators[args[0]](cmd.Root(), os.Stdout)
		},
	}
}
