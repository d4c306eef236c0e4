package selector

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// frameLine is one row of picker output. An empty text means a blank row.
type frameLine struct {
	text  string
	style tcell.Style
}

var (
	styleDefault  = tcell.StyleDefault
	styleHeader   = tcell.StyleDefault.Bold(true)
	styleDim      = tcell.StyleDefault.Dim(true)
	styleSearch   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

const headerText = "Resume Session  ↑↓ navigate · Enter select · / search · q quit"

// renderFrame lays out the full frame for the current state. It is pure so
// tests can assert on the produced rows without a screen.
func renderFrame(state *selectorState, filtered []Choice) []frameLine {
	lines := make([]frameLine, 0, 4+4*state.maxVisible)
	lines = append(lines,
		frameLine{text: truncateText(headerText, state.width), style: styleHeader},
		frameLine{},
	)

	if state.searching || state.query != "" {
		lines = append(lines,
			frameLine{text: truncateText("Search: "+state.query+"_", state.width), style: styleSearch},
			frameLine{},
		)
	}

	if len(filtered) == 0 {
		lines = append(lines, frameLine{text: "No matching sessions", style: styleDim})
		return lines
	}

	end := min(state.list.scroll+state.maxVisible, len(filtered))
	textLimit := state.width - 4
	for i := state.list.scroll; i < end; i++ {
		c := filtered[i]
		cursor := "  "
		lineStyle := styleDefault
		if i == state.list.selected {
			cursor = "› "
			lineStyle = styleSelected
		}

		if c.Title != "" {
			lines = append(lines, frameLine{text: cursor + truncateText(c.Title, textLimit), style: lineStyle})
			if c.FirstMessage != "" {
				lines = append(lines, frameLine{text: "    " + truncateText(c.FirstMessage, textLimit), style: styleDim})
			}
		} else {
			firstMsg := c.FirstMessage
			if firstMsg == "" {
				firstMsg = "(empty session)"
			}
			lines = append(lines, frameLine{text: cursor + truncateText(firstMsg, textLimit), style: lineStyle})
		}

		lines = append(lines, frameLine{text: truncateText("    "+c.metadata(), state.width), style: styleDim})
		if i < end-1 {
			lines = append(lines, frameLine{})
		}
	}

	if len(filtered) > state.maxVisible {
		indicator := fmt.Sprintf("%d-%d of %d", state.list.scroll+1, end, len(filtered))
		lines = append(lines, frameLine{}, frameLine{text: indicator, style: styleDim})
	}
	return lines
}

func truncateText(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
