// Package selector implements the interactive full-screen session picker.
package selector

import (
	"fmt"
	"strings"

	"github.com/tmustier/resume-sessions/internal/pihistory"
	"github.com/tmustier/resume-sessions/internal/titles"
)

const titleMaxLength = 50

// Choice is one selectable row in the picker, with its display fields
// precomputed.
type Choice struct {
	SessionID    string
	FirstMessage string
	Title        string
	Project      string
	Time         string
	MessageCount int

	// Searchable is the lowercased haystack the filter matches against.
	Searchable string
}

// BuildChoices converts discovered sessions into picker choices. titlesByID
// carries each session's recorded title history, keyed by session ID.
func BuildChoices(sessions []pihistory.Session, titlesByID map[string][]string) []Choice {
	choices := make([]Choice, 0, len(sessions))
	for _, s := range sessions {
		// A session with no recorded titles keeps an empty title so the
		// renderer can fall back to the first message.
		title := ""
		if len(titlesByID[s.ID]) > 0 {
			title = titles.Format(titlesByID[s.ID], titleMaxLength)
		}
		project := pihistory.ProjectPath(s.Project)
		firstMsg := normalizeWhitespace(s.FirstMessage)
		choices = append(choices, Choice{
			SessionID:    s.ID,
			FirstMessage: firstMsg,
			Title:        title,
			Project:      project,
			Time:         pihistory.FormatRelativeTime(s.ModifiedAt),
			MessageCount: s.MessageCount,
			Searchable:   strings.ToLower(project + " " + firstMsg + " " + title),
		})
	}
	return choices
}

// filterChoices returns the choices whose searchable text contains the query,
// case-insensitively. An empty query matches everything.
func filterChoices(choices []Choice, query string) []Choice {
	if query == "" {
		return choices
	}
	needle := strings.ToLower(query)
	out := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if strings.Contains(c.Searchable, needle) {
			out = append(out, c)
		}
	}
	return out
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (c Choice) metadata() string {
	parts := make([]string, 0, 3)
	if c.Time != "" {
		parts = append(parts, c.Time)
	}
	parts = append(parts, fmt.Sprintf("%d messages", c.MessageCount), c.Project)
	return strings.Join(parts, " · ")
}
