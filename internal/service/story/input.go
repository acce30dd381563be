package story

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/robdix/spanish-reading/internal/domain"
)

const (
	maxTitleLen   = 200
	maxContentLen = 200_000
	maxHTMLLen    = 5 << 20
)

// CreateInput holds the parameters for storing a story.
type CreateInput struct {
	// Title defaults to the first line of Content.
	Title       *string
	Content     string
	Difficulty  *domain.Difficulty
	ContentType domain.ContentType
	SourceURL   *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 200000 characters"})
	}
	if i.Title != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Title)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be one of A1, A2, B1, B2, C1"})
	}
	if i.ContentType != "" && !i.ContentType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "invalid value"})
	}
	if i.SourceURL != nil {
		if u, err := url.Parse(*i.SourceURL); err != nil || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "source_url", Message: "must be an absolute URL"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportInput holds an HTML page to turn into a story.
type ImportInput struct {
	HTML       string
	SourceURL  string
	Difficulty *domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.HTML) == "" {
		errs = append(errs, domain.FieldError{Field: "html", Message: "required"})
	}
	if len(i.HTML) > maxHTMLLen {
		errs = append(errs, domain.FieldError{Field: "html", Message: "too large"})
	}
	if i.SourceURL != "" {
		if u, err := url.Parse(i.SourceURL); err != nil || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "source_url", Message: "must be an absolute URL"})
		}
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be one of A1, A2, B1, B2, C1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds the parameters for listing stories.
type ListInput struct {
	Difficulty  *domain.Difficulty
	ContentType *domain.ContentType
	Limit       int
	Offset      int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}
	if i.ContentType != nil && !i.ContentType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "invalid value"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LookupInput is a drag selection over a story's tokens.
type LookupInput struct {
	Start int
	End   int
}
