package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmustier/resume-sessions/internal/pihistory"
	"github.com/tmustier/resume-sessions/internal/selector"
	"github.com/tmustier/resume-sessions/internal/titles"
)

// Seams for tests: the interactive picker needs a real terminal and the
// resume path launches the agent binary.
var (
	runSelector = selector.Run

	newResumeCommand = func(sessionID string) *exec.Cmd {
		cmd := exec.Command("pi", "--resume", sessionID)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return cmd
	}
)

type resumeOptions struct {
	limit       int
	project     string
	simple      bool
	interactive bool
	run         bool
	sessionsDir string
}

func newResumeCmd() *cobra.Command {
	opts := &resumeOptions{}

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Show recent Pi sessions with their titles",
		Long: "Show recent Pi sessions with their titles.\n\n" +
			"Discovers sessions from ~/.pi/agent/sessions/ and matches them with\n" +
			"titles from each project's .resume-sessions/sessions.json.",
		Example: `  resume-sessions resume              # Show last 10 sessions
  resume-sessions resume -n 5         # Show last 5 sessions
  resume-sessions resume -p dashboard # Filter by project name
  resume-sessions resume -i           # Interactive mode
  resume-sessions resume --run        # Select and resume a session`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResume(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Number of sessions to show")
	cmd.Flags().StringVarP(&opts.project, "project", "p", "", "Filter by project path (fuzzy match)")
	cmd.Flags().BoolVar(&opts.simple, "simple", false, "Use simple single-line format")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Interactive mode with search and selection")
	cmd.Flags().BoolVar(&opts.run, "run", false, "Run pi --resume with selected session (implies -i)")
	cmd.Flags().StringVar(&opts.sessionsDir, "sessions-dir", "", "Override the Pi sessions directory")

	return cmd
}

func runResume(cmd *cobra.Command, opts *resumeOptions) error {
	if opts.run {
		opts.interactive = true
	}
	out := cmd.OutOrStdout()

	dir, err := pihistory.ResolveSessionsDir(opts.sessionsDir)
	if err != nil {
		return err
	}
	sessions, err := pihistory.FindSessions(dir)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No Pi sessions found.")
		return nil
	}

	if opts.project != "" {
		sessions = filterByProject(sessions, opts.project)
	}
	if !opts.interactive && len(sessions) > opts.limit {
		sessions = sessions[:opts.limit]
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No matching sessions found.")
		return nil
	}

	pihistory.Enrich(sessions)

	titlesByID := map[string][]string{}
	for _, s := range sessions {
		if history := titles.ForSession(s.ID, pihistory.ProjectPath(s.Project)); history != nil {
			titlesByID[s.ID] = history
		}
	}

	if opts.interactive {
		return resumeInteractive(cmd, opts, sessions, titlesByID)
	}

	st := stylerFor(out)
	for i, s := range sessions {
		if opts.simple {
			fmt.Fprintln(out, formatResumeLine(s, titlesByID[s.ID]))
			continue
		}
		fmt.Fprintln(out, formatResumeLineEnhanced(s, titlesByID[s.ID], st))
		if i < len(sessions)-1 {
			fmt.Fprintln(out)
		}
	}
	return nil
}

func resumeInteractive(cmd *cobra.Command, opts *resumeOptions, sessions []pihistory.Session, titlesByID map[string][]string) error {
	selectedID, err := runSelector(sessions, titlesByID)
	if err != nil {
		return err
	}
	if selectedID == "" {
		return nil
	}
	out := cmd.OutOrStdout()

	if !opts.run {
		fmt.Fprintf(out, "\nSelected: %s\n", selectedID)
		fmt.Fprintf(out, "\nTo resume: pi --resume %s\n", selectedID)
		return nil
	}

	for _, s := range sessions {
		if s.ID == selectedID {
			fmt.Fprintf(out, "Resuming session in %s...\n", pihistory.ProjectPath(s.Project))
			break
		}
	}
	return newResumeCommand(selectedID).Run()
}

// filterByProject keeps sessions whose encoded project name or decoded path
// contains the query, case-insensitively.
func filterByProject(sessions []pihistory.Session, query string) []pihistory.Session {
	needle := strings.ToLower(query)
	out := make([]pihistory.Session, 0, len(sessions))
	for _, s := range sessions {
		if strings.Contains(strings.ToLower(s.Project), needle) ||
			strings.Contains(strings.ToLower(pihistory.ProjectPath(s.Project)), needle) {
			out = append(out, s)
		}
	}
	return out
}
