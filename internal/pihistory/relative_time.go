package pihistory

import (
	"fmt"
	"time"
)

// FormatRelativeTime renders t as a human-readable relative time, e.g.
// "2 hours ago". Dates older than about a month fall back to YYYY-MM-DD.
func FormatRelativeTime(t time.Time) string {
	return formatRelativeSince(t, time.Now().UTC())
}

func formatRelativeSince(t, now time.Time) string {
	seconds := now.Sub(t).Seconds()
	if seconds < 60 {
		return "just now"
	}
	if minutes := int(seconds / 60); minutes < 60 {
		return fmt.Sprintf("%d %s ago", minutes, plural("minute", minutes))
	}
	if hours := int(seconds / 3600); hours < 24 {
		return fmt.Sprintf("%d %s ago", hours, plural("hour", hours))
	}
	days := int(seconds / 86400)
	if days < 7 {
		return fmt.Sprintf("%d %s ago", days, plural("day", days))
	}
	if weeks := days / 7; weeks < 5 {
		return fmt.Sprintf("%d %s ago", weeks, plural("week", weeks))
	}
	return t.Format("2006-01-02")
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
