package progress

import (
	"time"

	"github.com/robdix/spanish-reading/internal/domain"
)

const (
	// maxWordsPerEvent bounds a single logged reading; larger values are typos.
	maxWordsPerEvent = 1_000_000
	// maxStoriesPerEvent bounds StoriesDelta so it always fits the column.
	maxStoriesPerEvent = 1_000
	// minLogYear is the earliest year a reading can be logged for.
	minLogYear = 1970
)

// LogReadingInput holds the parameters for logging a reading session.
type LogReadingInput struct {
	// Date is YYYY-MM-DD; empty means today in the user's timezone.
	Date         string
	WordCount    int
	StoriesDelta int

	date time.Time
}

// Validate checks all fields and collects all errors.
func (i *LogReadingInput) Validate() error {
	var errs []domain.FieldError

	if i.Date != "" {
		d, err := ParseDate(i.Date)
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		case d.Year() < minLogYear:
			errs = append(errs, domain.FieldError{Field: "date", Message: "must not be before 1970"})
		default:
			i.date = d
		}
	}
	if i.WordCount < 1 {
		errs = append(errs, domain.FieldError{Field: "word_count", Message: "must be at least 1"})
	}
	if i.WordCount > maxWordsPerEvent {
		errs = append(errs, domain.FieldError{Field: "word_count", Message: "too large"})
	}
	if i.StoriesDelta < 0 {
		errs = append(errs, domain.FieldError{Field: "stories_delta", Message: "must not be negative"})
	}
	if i.StoriesDelta > maxStoriesPerEvent {
		errs = append(errs, domain.FieldError{Field: "stories_delta", Message: "too large"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetGoalInput holds a new goal value.
type SetGoalInput struct {
	Words int
}

// Validate checks all fields and collects all errors.
func (i *SetGoalInput) Validate() error {
	if i.Words < 1 {
		return domain.NewValidationError("words", "must be at least 1")
	}
	return nil
}

// CalendarInput selects a month.
type CalendarInput struct {
	Year  int
	Month int
}

// Validate checks all fields and collects all errors.
func (i *CalendarInput) Validate() error {
	var errs []domain.FieldError

	if i.Year < 1970 || i.Year > 9999 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 1970 and 9999"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
