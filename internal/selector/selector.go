package selector

import (
	"errors"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/tmustier/resume-sessions/internal/pihistory"
)

const defaultMaxVisible = 8

var errQuit = errors.New("quit")

// newScreen is swapped for a simulation screen in tests.
var newScreen = tcell.NewScreen

// Run shows the interactive picker and returns the chosen session ID. An
// empty ID with a nil error means the user cancelled.
func Run(sessions []pihistory.Session, titlesByID map[string][]string) (string, error) {
	choices := BuildChoices(sessions, titlesByID)

	screen, err := newScreen()
	if err != nil {
		return "", err
	}
	if err := screen.Init(); err != nil {
		return "", err
	}
	defer screen.Fini()

	width, _ := screen.Size()
	state := &selectorState{width: width, maxVisible: defaultMaxVisible}

	for {
		filtered := filterChoices(choices, state.query)
		state.list.clamp(len(filtered))
		state.list.ensureVisible(state.maxVisible, len(filtered))
		drawFrame(screen, renderFrame(state, filtered))

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			id, done, err := handleKey(state, filtered, ev)
			if err != nil {
				if errors.Is(err, errQuit) {
					return "", nil
				}
				return "", err
			}
			if done {
				return id, nil
			}
		}
	}
}

// handleKey applies one keystroke to the state. It returns the selected
// session ID with done=true when the user confirms a choice, and errQuit when
// they ask to leave.
func handleKey(state *selectorState, filtered []Choice, ev *tcell.EventKey) (id string, done bool, err error) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return "", false, errQuit

	case tcell.KeyUp:
		state.list.selected--
		state.list.clamp(len(filtered))
		return "", false, nil

	case tcell.KeyDown:
		state.list.selected++
		state.list.clamp(len(filtered))
		return "", false, nil

	case tcell.KeyEnter:
		if state.searching {
			// Leave search entry mode but keep the query applied.
			state.searching = false
			return "", false, nil
		}
		if len(filtered) == 0 {
			return "", false, nil
		}
		return filtered[state.list.selected].SessionID, true, nil

	case tcell.KeyEscape:
		state.query = ""
		state.searching = false
		state.list.selected = 0
		state.list.scroll = 0
		return "", false, nil

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if state.searching && state.query != "" {
			runes := []rune(state.query)
			state.query = string(runes[:len(runes)-1])
			state.list.selected = 0
			state.list.scroll = 0
		}
		return "", false, nil

	case tcell.KeyRune:
		r := ev.Rune()
		// q quits even while typing a query.
		if r == 'q' {
			return "", false, errQuit
		}
		if r == '/' {
			state.searching = true
			state.query = ""
			state.list.selected = 0
			state.list.scroll = 0
			return "", false, nil
		}
		if state.searching && unicode.IsPrint(r) {
			state.query += string(r)
			state.list.selected = 0
			state.list.scroll = 0
		}
		return "", false, nil
	}

	return "", false, nil
}
