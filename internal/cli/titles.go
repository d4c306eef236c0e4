package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmustier/resume-sessions/internal/titles"
)

// historyMaxLength is the title budget for the title/show/list commands,
// which have a full line to work with.
const historyMaxLength = 80

func newTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title <session-id> <title>",
		Short: "Set or update a session title",
		Long: "Set or update a session title.\n\n" +
			"If the title differs from the current one it is appended to the\n" +
			"history. Also updates the terminal tab title.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, title := args[0], args[1]

			store, err := titles.NewStore("")
			if err != nil {
				return err
			}
			var entry titles.Entry
			err = store.Update(func(s titles.Sessions) error {
				entry = s.SetTitle(sessionID, title, time.Now())
				return nil
			})
			if err != nil {
				return err
			}

			titles.SetTerminalTitle(cmd.OutOrStdout(), title)
			fmt.Fprintf(cmd.OutOrStdout(), "Session titled: %s\n", titles.Format(entry.Titles, historyMaxLength))
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the title history for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := titles.NewStore("")
			if err != nil {
				return err
			}
			var entry titles.Entry
			err = store.Update(func(s titles.Sessions) error {
				entry = s.Ensure(args[0], time.Now())
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), titles.Format(entry.Titles, historyMaxLength))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all sessions with their titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := titles.NewStore("")
			if err != nil {
				return err
			}
			sessions, err := store.Load()
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			ids := make([]string, 0, len(sessions))
			for id := range sessions {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				entry := sessions[id]
				updated := entry.LastUpdated
				if updated == "" {
					updated = "unknown"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
					clipRunes(id, 12),
					clipRunes(updated, 19),
					titles.Format(entry.Titles, historyMaxLength))
			}
			return nil
		},
	}
}
