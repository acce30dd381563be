// Package export turns saved vocabulary into flashcard import files.
//
// The serializer is pure: it reports which entries it included and leaves
// marking them as exported to the caller, once the output was delivered.
package export

import (
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
)

// Header is the fixed preamble of an Anki text import file.
const Header = "#separator:semicolon\n#html:true\n#tags:spanish-reading\n"

const (
	columnSep = ";"
	rowSep    = "\n"
)

// Result is a serialized export and the entries it contains.
type Result struct {
	Text        string
	Included    []domain.VocabularyEntry
	IncludedIDs []uuid.UUID
}

// Select returns the entries an export in the given mode includes:
// ExportModeNew keeps entries never exported, any other mode keeps all.
func Select(entries []domain.VocabularyEntry, mode domain.ExportMode) []domain.VocabularyEntry {
	out := make([]domain.VocabularyEntry, 0, len(entries))
	for _, e := range entries {
		if mode == domain.ExportModeNew && e.Exported() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Serialize renders entries as semicolon-separated rows, one column per
// mapping, preceded by Header. Unknown field names render as "".
func Serialize(entries []domain.VocabularyEntry, mappings []domain.FieldMapping) string {
	var b strings.Builder
	b.WriteString(Header)

	cols := make([]string, len(mappings))
	for _, e := range entries {
		for i, m := range mappings {
			cols[i] = escapeColumn(renderSlot(e, m, true))
		}
		b.WriteString(strings.Join(cols, columnSep))
		b.WriteString(rowSep)
	}
	return b.String()
}

// Build selects entries for mode and serializes them.
func Build(entries []domain.VocabularyEntry, mappings []domain.FieldMapping, mode domain.ExportMode) Result {
	included := Select(entries, mode)

	ids := make([]uuid.UUID, len(included))
	for i, e := range included {
		ids[i] = e.ID
	}

	return Result{
		Text:        Serialize(included, mappings),
		Included:    included,
		IncludedIDs: ids,
	}
}

// renderSlot joins the non-empty values of the slot's fields with its
// separator. With markup, example text gets the phrase emphasized.
func renderSlot(e domain.VocabularyEntry, m domain.FieldMapping, markup bool) string {
	parts := make([]string, 0, len(m.SourceFields))
	for _, name := range m.SourceFields {
		v := fieldValue(e, name)
		if v == "" {
			continue
		}
		if markup && name == domain.FieldExample {
			v = emphasize(v, e.Phrase, deref(e.Infinitive))
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, m.Separator)
}

func fieldValue(e domain.VocabularyEntry, name string) string {
	switch name {
	case domain.FieldPhrase, domain.FieldWord:
		return e.Phrase
	case domain.FieldDefinition:
		return e.Definition
	case domain.FieldExample:
		return e.Example
	case domain.FieldExampleTranslation, domain.FieldExampleTranslationCamel:
		return e.ExampleTranslation
	case domain.FieldInfinitive:
		return deref(e.Infinitive)
	case domain.FieldNotes:
		return deref(e.Notes)
	default:
		return ""
	}
}

// emphasize wraps every case-insensitive occurrence of the terms in <b></b>.
// Overlapping or touching occurrences become one emphasized run.
func emphasize(text string, terms ...string) string {
	var spans [][]int
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
		spans = append(spans, re.FindAllStringIndex(text, -1)...)
	}
	if len(spans) == 0 {
		return text
	}

	slices.SortFunc(spans, func(a, b []int) int { return a[0] - b[0] })

	merged := [][]int{{spans[0][0], spans[0][1]}}
	for _, s := range spans[1:] {
		last := merged[len(merged)-1]
		if s[0] <= last[1] {
			last[1] = max(last[1], s[1])
			continue
		}
		merged = append(merged, []int{s[0], s[1]})
	}

	var b strings.Builder
	b.Grow(len(text) + len(merged)*7)
	prev := 0
	for _, s := range merged {
		b.WriteString(text[prev:s[0]])
		b.WriteString("<b>")
		b.WriteString(text[s[0]:s[1]])
		b.WriteString("</b>")
		prev = s[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}

// escapeColumn quotes a column that contains the separator, a quote or a
// line break, doubling inner quotes.
func escapeColumn(s string) string {
	if !strings.ContainsAny(s, columnSep+"\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
