package progress

import "github.com/robdix/spanish-reading/internal/domain"

// DayStatusFor classifies a calendar day. Any reading counts as success
// when no goal (or a zero goal) was active.
func DayStatusFor(words int, goal *int) domain.DayStatus {
	switch {
	case words <= 0:
		return domain.DayStatusNone
	case goal == nil || *goal <= 0:
		return domain.DayStatusReached
	case words >= *goal:
		return domain.DayStatusMet
	default:
		return domain.DayStatusUnder
	}
}
