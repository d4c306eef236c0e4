package titles

import (
	"strings"
	"unicode/utf8"
)

const separator = " · "

// Format renders a title history for display:
//
//   - no titles: "New session"
//   - one title: verbatim
//   - several:   "Fix Pi discovery · Add dynamic titles"
//   - too long:  "New session ··· Fix glob pattern · Add titles"
//
// The last fallback shows just the final two titles and is not truncated
// further, so it can still exceed maxLength for pathological title lengths.
func Format(titles []string, maxLength int) string {
	if len(titles) == 0 {
		return defaultTitle
	}
	if len(titles) == 1 {
		return titles[0]
	}

	full := strings.Join(titles, separator)
	if utf8.RuneCountInString(full) <= maxLength {
		return full
	}

	lastTwo := strings.Join(titles[len(titles)-2:], separator)
	abbreviated := titles[0] + " ··· " + lastTwo
	if utf8.RuneCountInString(abbreviated) <= maxLength {
		return abbreviated
	}
	return lastTwo
}
