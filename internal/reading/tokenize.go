// Package reading splits story text into tokens and works out which words
// a reader selected, plus the surrounding context sent along with a lookup.
package reading

import (
	"regexp"

	"github.com/robdix/spanish-reading/internal/domain"
)

// delimiterRe matches one delimiter token: a run of whitespace (including
// Unicode space separators) or a single punctuation mark.
var delimiterRe = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+|[.,!?;]`)

// Tokenize splits text into word and non-word tokens. Delimiters are kept as
// tokens of their own, so joining every token's Text gives back text exactly.
func Tokenize(text string) []domain.Token {
	if text == "" {
		return nil
	}

	locs := delimiterRe.FindAllStringIndex(text, -1)
	tokens := make([]domain.Token, 0, 2*len(locs)+1)

	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			tokens = append(tokens, newToken(text[last:loc[0]]))
		}
		tokens = append(tokens, newToken(text[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(text) {
		tokens = append(tokens, newToken(text[last:]))
	}

	return tokens
}

func newToken(s string) domain.Token {
	return domain.Token{Text: s, IsWord: IsWord(s)}
}

// IsWord reports whether s is made only of ASCII letters and the Latin-1
// letters used in Spanish (á é í ó ú ü ñ and their capitals, among others).
// The multiplication and division signs in that block are not letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= 0xC0 && r <= 0xFF && r != 0xD7 && r != 0xF7:
		default:
			return false
		}
	}
	return true
}
