package reading

import (
	"strings"

	"github.com/robdix/spanish-reading/internal/domain"
)

// ResolveSelection returns the phrase covered by a drag from start to end
// (token positions, in either order). Only word tokens are kept and they are
// joined with single spaces, so punctuation inside the drag is dropped.
// An empty string means nothing selectable was covered.
func ResolveSelection(tokens []domain.Token, start, end int) string {
	lo, hi := min(start, end), max(start, end)
	if len(tokens) == 0 || hi < 0 || lo >= len(tokens) {
		return ""
	}
	lo = max(lo, 0)
	hi = min(hi, len(tokens)-1)

	words := make([]string, 0, hi-lo+1)
	for _, tok := range tokens[lo : hi+1] {
		if tok.IsWord {
			words = append(words, tok.Text)
		}
	}
	return strings.Join(words, " ")
}

// ResolveRange is ResolveSelection for a SelectionRange.
func ResolveRange(tokens []domain.Token, r domain.SelectionRange) string {
	return ResolveSelection(tokens, r.Start, r.End)
}

// IsTokenInActivePhrase reports whether the token at index belongs to phrase.
//
// A single-word phrase matches every token with the same text. A phrase with
// a space matches by character position: the token must lie inside the first
// occurrence of phrase in fullText. Later occurrences of a multi-word phrase
// are not highlighted.
func IsTokenInActivePhrase(tokens []domain.Token, index int, fullText, phrase string) bool {
	if phrase == "" || index < 0 || index >= len(tokens) {
		return false
	}

	tok := tokens[index]
	if !strings.Contains(phrase, " ") {
		return tok.Text == phrase
	}

	phraseStart := strings.Index(fullText, phrase)
	if phraseStart < 0 {
		return false
	}

	tokenEnd := 0
	for _, t := range tokens[:index+1] {
		tokenEnd += len(t.Text)
	}
	tokenStart := tokenEnd - len(tok.Text)

	return tokenStart >= phraseStart && tokenEnd <= phraseStart+len(phrase)
}

// PhraseOccurrences returns the positions of all tokens for which
// IsTokenInActivePhrase is true, in one pass over tokens.
func PhraseOccurrences(tokens []domain.Token, fullText, phrase string) []int {
	if phrase == "" {
		return nil
	}

	var out []int
	if !strings.Contains(phrase, " ") {
		for i, tok := range tokens {
			if tok.Text == phrase {
				out = append(out, i)
			}
		}
		return out
	}

	phraseStart := strings.Index(fullText, phrase)
	if phraseStart < 0 {
		return nil
	}
	phraseEnd := phraseStart + len(phrase)

	offset := 0
	for i, tok := range tokens {
		start, end := offset, offset+len(tok.Text)
		offset = end
		if start >= phraseEnd {
			break
		}
		if start >= phraseStart && end <= phraseEnd {
			out = append(out, i)
		}
	}
	return out
}
