// Package progress tracks how much a user reads: per-day aggregates, daily
// goals, streaks and the monthly calendar.
package progress

import (
	"github.com/robdix/spanish-reading/internal/domain"
)

// ApplyReadingEvent merges ev into existing and returns the new aggregate for
// that day. existing is nil for the first event of the day.
//
// This is the compute step of a read-modify-write: the caller loads existing
// under a row lock and stores the result under the same (user, date) key.
// Non-positive word counts and negative story deltas are rejected.
func ApplyReadingEvent(existing *domain.DailyStat, ev domain.ReadingEvent) (domain.DailyStat, error) {
	var errs []domain.FieldError

	if ev.WordCount <= 0 {
		errs = append(errs, domain.FieldError{Field: "word_count", Message: "must be at least 1"})
	}
	if ev.StoriesDelta < 0 {
		errs = append(errs, domain.FieldError{Field: "stories_delta", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.DailyStat{}, domain.NewValidationErrors(errs)
	}

	if existing == nil {
		return domain.DailyStat{
			UserID:           ev.UserID,
			Date:             domain.CivilDate(ev.Date),
			WordsRead:        ev.WordCount,
			StoriesCompleted: ev.StoriesDelta,
		}, nil
	}

	next := *existing
	next.WordsRead += ev.WordCount
	next.StoriesCompleted += ev.StoriesDelta
	return next, nil
}
