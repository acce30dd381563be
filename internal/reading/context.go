package reading

import (
	"strings"
	"unicode"
)

// DefaultContextWindow is the number of characters kept on each side of a
// looked-up phrase.
const DefaultContextWindow = 100

const ellipsis = "..."

// ExtractContext returns "...{before} {phrase} {after}..." where before and
// after are up to window characters (runes) of fullText around the first
// case-insensitive occurrence of phrase, each trimmed of surrounding
// whitespace. When phrase does not occur, the excerpt is taken as if it
// started at position 0.
func ExtractContext(fullText, phrase string, window int) string {
	window = max(window, 0)

	text := []rune(fullText)
	needle := []rune(phrase)

	pos := indexFold(text, needle)
	if pos < 0 {
		pos = 0
	}

	before := strings.TrimSpace(string(text[max(0, pos-window):pos]))

	afterStart := min(len(text), pos+len(needle))
	afterEnd := min(len(text), afterStart+window)
	after := strings.TrimSpace(string(text[afterStart:afterEnd]))

	return ellipsis + before + " " + phrase + " " + after + ellipsis
}

// indexFold is a rune-offset, case-insensitive strings.Index.
func indexFold(text, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(text); i++ {
		matched := true
		for j, r := range needle {
			if unicode.ToLower(text[i+j]) != unicode.ToLower(r) {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}
