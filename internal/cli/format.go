package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tmustier/resume-sessions/internal/pihistory"
	"github.com/tmustier/resume-sessions/internal/titles"
)

// styler applies ANSI emphasis when the output is a terminal and passes text
// through unchanged otherwise.
type styler struct {
	enabled bool
}

func stylerFor(w io.Writer) styler {
	f, ok := w.(*os.File)
	return styler{enabled: ok && term.IsTerminal(int(f.Fd()))}
}

func (s styler) bold(text string) string {
	if !s.enabled {
		return text
	}
	return "\x1b[1m" + text + "\x1b[0m"
}

func (s styler) dim(text string) string {
	if !s.enabled {
		return text
	}
	return "\x1b[2m" + text + "\x1b[0m"
}

// formatResumeLine renders the simple single-line listing:
//
//	2025-01-15 10:30  ~/myproject  Fix bug · Add tests
func formatResumeLine(s pihistory.Session, titleHistory []string) string {
	projectPath := pihistory.ProjectPath(s.Project)
	if len([]rune(projectPath)) > 30 {
		projectPath = "..." + lastRunes(projectPath, 27)
	}

	titleStr := "(no title)"
	if len(titleHistory) > 0 {
		titleStr = titles.Format(titleHistory, 50)
	}

	return fmt.Sprintf("%s  %-30s  %s", sessionTimestamp(s.ID), projectPath, titleStr)
}

// formatResumeLineEnhanced renders the 2-3 line listing: title (or first
// message) emphasized, first message de-emphasized below a title, then a
// metadata line.
func formatResumeLineEnhanced(s pihistory.Session, titleHistory []string, st styler) string {
	firstMsg := strings.Join(strings.Fields(s.FirstMessage), " ")
	firstMsg = truncateEnd(firstMsg, 70)

	timeStr := "unknown"
	if !s.ModifiedAt.IsZero() {
		timeStr = pihistory.FormatRelativeTime(s.ModifiedAt)
	}

	countStr := fmt.Sprintf("%d messages", s.MessageCount)
	if s.MessageCount == 1 {
		countStr = "1 message"
	}

	projectPath := pihistory.ProjectPath(s.Project)
	if len([]rune(projectPath)) > 25 {
		projectPath = "..." + lastRunes(projectPath, 22)
	}

	var lines []string
	if len(titleHistory) > 0 {
		lines = append(lines, st.bold(titles.Format(titleHistory, 70)))
		if firstMsg != "" {
			lines = append(lines, st.dim("  "+firstMsg))
		}
	} else if firstMsg != "" {
		lines = append(lines, st.bold(firstMsg))
	} else {
		lines = append(lines, st.bold("(empty session)"))
	}

	lines = append(lines, st.dim(fmt.Sprintf("  %s · %s · %s", timeStr, countStr, projectPath)))
	return strings.Join(lines, "\n")
}

// sessionTimestamp extracts a "2025-01-15 10:30" display stamp from a session
// ID of the form 2025-01-15T10-30-00_uuid. IDs in an unexpected shape fall
// back to their leading characters.
func sessionTimestamp(id string) string {
	ts, _, _ := strings.Cut(id, "_")
	if len(ts) >= 16 {
		return ts[:10] + " " + strings.ReplaceAll(ts[11:16], "-", ":")
	}
	return clipRunes(id, 16)
}

func truncateEnd(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

func clipRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func lastRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
