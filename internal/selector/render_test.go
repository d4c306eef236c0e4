package selector

import (
	"strings"
	"testing"
)

func testChoices(n int) []Choice {
	choices := make([]Choice, 0, n)
	for i := 0; i < n; i++ {
		choices = append(choices, Choice{
			SessionID:    "session-" + string(rune('a'+i)),
			Title:        "Title " + string(rune('A'+i)),
			FirstMessage: "first message " + string(rune('a'+i)),
			Project:      "~/work/demo",
			Time:         "2 hours ago",
			MessageCount: i + 1,
		})
	}
	return choices
}

func frameText(lines []frameLine) string {
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(ln.text)
		b.WriteString("\n")
	}
	return b.String()
}

func TestRenderFrameHeaderAndEntries(t *testing.T) {
	state := &selectorState{width: 80, maxVisible: 8}
	choices := testChoices(3)
	lines := renderFrame(state, choices)

	text := frameText(lines)
	if !strings.Contains(text, "Resume Session") {
		t.Fatalf("missing header:\n%s", text)
	}
	if !strings.Contains(text, "› Title A") {
		t.Fatalf("missing cursor on first entry:\n%s", text)
	}
	if !strings.Contains(text, "  Title B") {
		t.Fatalf("missing unselected entry:\n%s", text)
	}
	if !strings.Contains(text, "    2 hours ago · 2 messages · ~/work/demo") {
		t.Fatalf("missing metadata line:\n%s", text)
	}
	if strings.Contains(text, "Search:") {
		t.Fatalf("search line shown while not searching:\n%s", text)
	}
	if strings.Contains(text, " of ") {
		t.Fatalf("scroll indicator shown for short list:\n%s", text)
	}
}

func TestRenderFrameSearchLine(t *testing.T) {
	state := &selectorState{width: 80, maxVisible: 8, searching: true, query: "api"}
	text := frameText(renderFrame(state, testChoices(1)))
	if !strings.Contains(text, "Search: api_") {
		t.Fatalf("missing search line:\n%s", text)
	}

	// A committed query stays visible after leaving search entry.
	state.searching = false
	text = frameText(renderFrame(state, testChoices(1)))
	if !strings.Contains(text, "Search: api_") {
		t.Fatalf("committed query not shown:\n%s", text)
	}
}

func TestRenderFrameNoMatches(t *testing.T) {
	state := &selectorState{width: 80, maxVisible: 8, query: "zzz"}
	text := frameText(renderFrame(state, nil))
	if !strings.Contains(text, "No matching sessions") {
		t.Fatalf("missing empty message:\n%s", text)
	}
}

func TestRenderFrameScrollIndicator(t *testing.T) {
	state := &selectorState{width: 80, maxVisible: 8}
	state.list.selected = 9
	state.list.ensureVisible(8, 12)

	text := frameText(renderFrame(state, testChoices(12)))
	if !strings.Contains(text, "3-10 of 12") {
		t.Fatalf("missing scroll indicator:\n%s", text)
	}
	if strings.Contains(text, "Title A\n") {
		t.Fatalf("scrolled-out entry still rendered:\n%s", text)
	}
	if !strings.Contains(text, "› Title J") {
		t.Fatalf("selected entry missing:\n%s", text)
	}
}

func TestRenderFrameSkipsEmptyFirstMessage(t *testing.T) {
	state := &selectorState{width: 80, maxVisible: 8}
	choices := []Choice{{SessionID: "s1", Title: "Quiet", Time: "just now", MessageCount: 1, Project: "~"}}
	lines := renderFrame(state, choices)

	// Header, blank, title, metadata.
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), frameText(lines))
	}
}

func TestRenderFrameUntitledFallsBackToFirstMessage(t *testing.T) {
	state := &selectorState{width: 80, maxVisible: 8}
	choices := []Choice{
		{SessionID: "s1", FirstMessage: "Fix the retry loop", Time: "just now", MessageCount: 3, Project: "~"},
		{SessionID: "s2", Time: "just now", MessageCount: 0, Project: "~"},
	}
	text := frameText(renderFrame(state, choices))
	if !strings.Contains(text, "› Fix the retry loop") {
		t.Fatalf("first message not promoted to title line:\n%s", text)
	}
	if strings.Contains(text, "    Fix the retry loop") {
		t.Fatalf("first message duplicated on detail line:\n%s", text)
	}
	if !strings.Contains(text, "  (empty session)") {
		t.Fatalf("missing empty-session placeholder:\n%s", text)
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		s     string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is far too long", 10, "this is..."},
		{"abcdef", 3, "abc"},
		{"abcdef", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateText(tt.s, tt.limit); got != tt.want {
			t.Fatalf("truncateText(%q, %d) = %q, want %q", tt.s, tt.limit, got, tt.want)
		}
	}
}
