package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmustier/resume-sessions/internal/hooks"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "install <pi|claude-code>",
		Short:     "Install the session-titling hook for an agent",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"pi", "claude-code"},
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			switch args[0] {
			case "pi":
				return hooks.InstallPi(home, cmd.OutOrStdout())
			case "claude-code":
				return hooks.InstallClaudeCode(home, cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown agent %q (expected pi or claude-code)", args[0])
			}
		},
	}
}
