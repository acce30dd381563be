package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry is a saved phrase with its definition. Unique per (user, phrase).
type VocabularyEntry struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	StoryID            *uuid.UUID
	Phrase             string
	Definition         string
	Example            string
	ExampleTranslation string
	Infinitive         *string
	Notes              *string
	Context            *string
	ExportedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Exported reports whether the entry was already included in an export.
func (e VocabularyEntry) Exported() bool { return e.ExportedAt != nil }

// Export field names accepted in a FieldMapping.
const (
	FieldPhrase             = "phrase"
	FieldWord               = "word"
	FieldDefinition         = "definition"
	FieldExample            = "example"
	FieldExampleTranslation = "example_translation"
	FieldInfinitive         = "infinitive"
	FieldNotes              = "notes"

	FieldExampleTranslationCamel = "exampleTranslation"
)

// IsExportField reports whether name is a field an export column can render.
// Unknown names are still accepted by the serializer and render empty.
func IsExportField(name string) bool {
	switch name {
	case FieldPhrase, FieldWord, FieldDefinition, FieldExample,
		FieldExampleTranslation, FieldExampleTranslationCamel,
		FieldInfinitive, FieldNotes:
		return true
	}
	return false
}

// FieldMapping is one export column built from one or more entry fields.
type FieldMapping struct {
	SourceFields []string `json:"sourceFields" yaml:"source_fields"`
	Separator    string   `json:"separator"    yaml:"separator"`
}

// VocabularyCounts backs the "N new of M total" export prompt.
type VocabularyCounts struct {
	Total       int
	NotExported int
}

// VocabularyFilter narrows a vocabulary listing.
type VocabularyFilter struct {
	NotExportedOnly bool
	StoryID         *uuid.UUID
	Limit           int
	Offset          int
}
