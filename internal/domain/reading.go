package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is one piece of a tokenized text. Non-word tokens carry whitespace
// and punctuation verbatim.
type Token struct {
	Text   string `json:"text"`
	IsWord bool   `json:"isWord"`
}

// SelectionRange is a drag gesture over token positions.
type SelectionRange struct {
	Start int
	End   int
}

// DailyStat is the per-user, per-day reading aggregate.
// Date is a civil day stored as midnight UTC.
type DailyStat struct {
	UserID           uuid.UUID
	Date             time.Time
	WordsRead        int
	StoriesCompleted int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReadingEvent is a single completed reading to be merged into a DailyStat.
type ReadingEvent struct {
	UserID       uuid.UUID
	Date         time.Time
	WordCount    int
	StoriesDelta int
}

// GoalEvent declares a daily word goal effective from a moment in time.
// Goal events are append-only.
type GoalEvent struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	DailyWords    int
	EffectiveFrom time.Time
}

// CalendarDay is one day of the monthly reading calendar.
type CalendarDay struct {
	Date   time.Time
	Words  int
	Goal   *int
	Status DayStatus
}

// StatsOverview is the summary shown on the stats page.
type StatsOverview struct {
	TodayWords       int
	AllTimeWords     int
	StoriesCompleted int
	Streak           int
	DailyGoal        *int
	OverallGoal      *int
}

// OverallProgress returns the share of the overall goal already read, in [0, 1].
// Returns 0 when no overall goal is set.
func (o StatsOverview) OverallProgress() float64 {
	if o.OverallGoal == nil || *o.OverallGoal <= 0 {
		return 0
	}
	p := float64(o.AllTimeWords) / float64(*o.OverallGoal)
	if p > 1 {
		return 1
	}
	return p
}

// CivilDate returns t's calendar day (in t's own location) as midnight UTC.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateLayout is the ISO 8601 date-only layout used on the wire and in SQL.
const DateLayout = "2006-01-02"
