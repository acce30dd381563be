package progress

import (
	"time"

	"github.com/robdix/spanish-reading/internal/domain"
)

// ActiveGoal returns the daily word goal in effect on onDate.
//
// Events are compared at day granularity: an event counts if its
// EffectiveFrom falls on or before onDate's calendar day (each timestamp is
// read in its own location). Among those, the one with the latest
// EffectiveFrom wins; on identical timestamps the later event in history
// wins. history does not need to be sorted. ok is false when no goal had been
// set by that day.
func ActiveGoal(history []domain.GoalEvent, onDate time.Time) (goal int, ok bool) {
	day := domain.CivilDate(onDate)

	var best *domain.GoalEvent
	for i := range history {
		ev := &history[i]
		if domain.CivilDate(ev.EffectiveFrom).After(day) {
			continue
		}
		if best == nil || !ev.EffectiveFrom.Before(best.EffectiveFrom) {
			best = ev
		}
	}

	if best == nil {
		return 0, false
	}
	return best.DailyWords, true
}

// goalsIn returns a copy of history with every EffectiveFrom converted to loc,
// so ActiveGoal compares days as the user sees them.
func goalsIn(history []domain.GoalEvent, loc *time.Location) []domain.GoalEvent {
	out := make([]domain.GoalEvent, len(history))
	for i, ev := range history {
		ev.EffectiveFrom = ev.EffectiveFrom.In(loc)
		out[i] = ev
	}
	return out
}
