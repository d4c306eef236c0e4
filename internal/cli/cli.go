// Package cli wires the resume-sessions commands.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "resume-sessions",
		Short:         "Track titles for AI coding-agent sessions and resume them",
		SilenceErrors: false,
		SilenceUsage:  true,
		Version:       buildVersion(),
	}

	cmd.AddCommand(
		newTitleCmd(),
		newShowCmd(),
		newListCmd(),
		newResumeCmd(),
		newInstallCmd(),
	)

	return cmd
}

func buildVersion() string {
	v := version
	if commit != "" {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " " + date
	}
	return v
}
