package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/tmustier/resume-sessions/internal/pihistory"
)

func TestSessionTimestamp(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"2025-01-15T10-30-00_abc123", "2025-01-15 10:30"},
		{"2025-06-02T09-05-59_ffff", "2025-06-02 09:05"},
		{"short-id", "short-id"},
		{"an-id-without-timestamp-but-long", "an-id-without-ti"},
	}
	for _, tt := range tests {
		if got := sessionTimestamp(tt.id); got != tt.want {
			t.Fatalf("sessionTimestamp(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFormatResumeLine(t *testing.T) {
	s := pihistory.Session{
		ID:      "2025-01-15T10-30-00_abc123",
		Project: "-tmp-demo",
	}

	got := formatResumeLine(s, []string{"Fix bug", "Add tests"})
	if !strings.HasPrefix(got, "2025-01-15 10:30  ") {
		t.Fatalf("line = %q", got)
	}
	if !strings.HasSuffix(got, "  Fix bug · Add tests") {
		t.Fatalf("line = %q", got)
	}

	got = formatResumeLine(s, nil)
	if !strings.HasSuffix(got, "  (no title)") {
		t.Fatalf("line without titles = %q", got)
	}
}

func TestFormatResumeLineEnhanced(t *testing.T) {
	s := pihistory.Session{
		ID:           "2025-01-15T10-30-00_abc123",
		Project:      "-tmp-demo",
		FirstMessage: "Please  fix the\nretry loop",
		MessageCount: 1,
		ModifiedAt:   time.Now().Add(-3 * time.Hour),
	}
	plain := styler{}

	got := formatResumeLineEnhanced(s, []string{"Fix retry"}, plain)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "Fix retry" {
		t.Fatalf("title line = %q", lines[0])
	}
	if lines[1] != "  Please fix the retry loop" {
		t.Fatalf("message line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "3 hours ago · 1 message · /tmp/demo") {
		t.Fatalf("meta line = %q", lines[2])
	}

	// Without a title the first message is promoted.
	got = formatResumeLineEnhanced(s, nil, plain)
	lines = strings.Split(got, "\n")
	if len(lines) != 2 || lines[0] != "Please fix the retry loop" {
		t.Fatalf("untitled lines = %q", lines)
	}

	// Empty session placeholder.
	s.FirstMessage = ""
	got = formatResumeLineEnhanced(s, nil, plain)
	if !strings.HasPrefix(got, "(empty session)") {
		t.Fatalf("empty session line = %q", got)
	}
}

func TestFormatResumeLineEnhancedStyled(t *testing.T) {
	s := pihistory.Session{
		ID:           "2025-01-15T10-30-00_abc123",
		Project:      "-tmp-demo",
		FirstMessage: "hello",
		MessageCount: 2,
		ModifiedAt:   time.Now(),
	}
	got := formatResumeLineEnhanced(s, []string{"Greeting"}, styler{enabled: true})
	if !strings.Contains(got, "\x1b[1mGreeting\x1b[0m") {
		t.Fatalf("title not bold:\n%q", got)
	}
	if !strings.Contains(got, "\x1b[2m  hello\x1b[0m") {
		t.Fatalf("message not dimmed:\n%q", got)
	}
}

func TestTruncateEnd(t *testing.T) {
	if got := truncateEnd(strings.Repeat("x", 80), 70); len([]rune(got)) != 70 || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncateEnd = %q", got)
	}
	if got := truncateEnd("short", 70); got != "short" {
		t.Fatalf("truncateEnd = %q", got)
	}
}
