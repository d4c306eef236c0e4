package titles

import (
	"fmt"
	"io"
)

// SetTerminalTitle sets the terminal tab title. OSC 0 sets both the icon
// name and the window title.
func SetTerminalTitle(w io.Writer, title string) {
	fmt.Fprintf(w, "\x1b]0;%s\a", title)
}
