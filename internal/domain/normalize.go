package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeContent prepares story text for storage: it composes the text to
// NFC (so "é" written as "e" + U+0301 becomes one letter) and trims
// surrounding whitespace. Inner whitespace and line breaks are kept.
func NormalizeContent(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// NormalizePhrase prepares a vocabulary phrase for storage and comparison:
//   - composes to NFC
//   - trims leading/trailing whitespace
//   - compresses whitespace runs into a single space
//
// Case and diacritics are preserved.
func NormalizePhrase(phrase string) string {
	phrase = strings.TrimSpace(norm.NFC.String(phrase))
	if phrase == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(phrase))
	prevSpace := false
	for _, r := range phrase {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
