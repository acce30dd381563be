package progress

import (
	"fmt"
	"time"

	"github.com/robdix/spanish-reading/internal/domain"
)

// Today returns the user's current calendar day as a civil date.
func Today(now time.Time, tz *time.Location) time.Time {
	return domain.CivilDate(now.In(tz))
}

// DayStart returns the start of the current day in the user's timezone, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	userNow := now.In(tz)
	dayStart := time.Date(userNow.Year(), userNow.Month(), userNow.Day(), 0, 0, 0, 0, tz)
	return dayStart.UTC()
}

// EndOfDay returns the first instant after the civil date day in tz, as UTC.
func EndOfDay(day time.Time, tz *time.Location) time.Time {
	// AddDate handles DST correctly, Add(24h) does not
	next := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, tz).AddDate(0, 0, 1)
	return next.UTC()
}

// MonthBounds returns the first and last civil dates of a month.
func MonthBounds(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last
}

// ParseTimezone parses a timezone string, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDate parses an ISO 8601 date-only string (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}
