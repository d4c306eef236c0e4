package selector

type listState struct {
	selected int
	scroll   int
}

func (s *listState) clamp(nItems int) {
	if nItems <= 0 {
		s.selected = 0
		s.scroll = 0
		return
	}
	s.selected = clampInt(s.selected, 0, nItems-1)
	s.scroll = clampInt(s.scroll, 0, max(0, nItems-1))
}

func (s *listState) ensureVisible(viewH int, nItems int) {
	if nItems <= 0 || viewH <= 0 {
		s.scroll = 0
		return
	}
	if s.selected < s.scroll {
		s.scroll = s.selected
	} else if s.selected >= s.scroll+viewH {
		s.scroll = s.selected - viewH + 1
	}
	s.scroll = clampInt(s.scroll, 0, max(0, nItems-viewH))
}

// selectorState is the full picker state between keystrokes. The terminal
// width is sampled once at startup; a resize triggers a repaint but not a
// reflow.
type selectorState struct {
	query      string
	searching  bool
	list       listState
	width      int
	maxVisible int
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
