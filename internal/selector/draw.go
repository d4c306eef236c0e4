package selector

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func drawFrame(screen tcell.Screen, lines []frameLine) {
	screen.Clear()
	for y, ln := range lines {
		if ln.text == "" {
			continue
		}
		writeText(screen, 0, y, ln.text, ln.style)
	}
	screen.Show()
}

func writeText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	offset := 0
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}
		screen.SetContent(x+offset, y, ch, nil, style)
		offset += width
	}
}
