package vocabulary

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
)

const (
	maxPhraseLen  = 200
	maxFieldLen   = 2000
	maxContextLen = 2000
)

// SaveInput holds a looked-up phrase and its definition payload.
type SaveInput struct {
	Phrase             string
	Definition         string
	Example            string
	ExampleTranslation string
	Infinitive         *string
	Notes              *string
	// StoryID links the entry to the story it was looked up in. When Context
	// is empty the context is cut from that story's text.
	StoryID *uuid.UUID
	Context *string
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	phrase := strings.TrimSpace(i.Phrase)
	if phrase == "" {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "required"})
	}
	if utf8.RuneCountInString(phrase) > maxPhraseLen {
		errs = append(errs, domain.FieldError{Field: "phrase", Message: "max 200 characters"})
	}

	for _, f := range []struct{ name, value string }{
		{"definition", i.Definition},
		{"example", i.Example},
		{"exampleTranslation", i.ExampleTranslation},
	} {
		if utf8.RuneCountInString(f.value) > maxFieldLen {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "max 2000 characters"})
		}
	}
	if i.Notes != nil && utf8.RuneCountInString(*i.Notes) > maxFieldLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}
	if i.Context != nil && utf8.RuneCountInString(*i.Context) > maxContextLen {
		errs = append(errs, domain.FieldError{Field: "context", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing vocabulary.
type ListInput struct {
	Mode    domain.ExportMode
	StoryID *uuid.UUID
	Limit   int
	Offset  int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Mode != "" && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be new or all"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
