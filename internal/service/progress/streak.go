package progress

import (
	"slices"
	"time"

	"github.com/robdix/spanish-reading/internal/domain"
)

// ComputeStreak returns the number of consecutive days with reading that end
// today or yesterday.
//
// stats may be unsorted. When a date appears more than once the entry listed
// last is used. The most recent day must be today or yesterday and have
// words read; from there the streak walks back one calendar day at a time
// and stops at the first missing day or day with zero words.
func ComputeStreak(stats []domain.DailyStat, today time.Time) int {
	if len(stats) == 0 {
		return 0
	}

	words := make(map[time.Time]int, len(stats))
	for _, s := range stats {
		words[domain.CivilDate(s.Date)] = s.WordsRead
	}

	days := make([]time.Time, 0, len(words))
	for d := range words {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })

	today = domain.CivilDate(today)
	yesterday := today.AddDate(0, 0, -1)

	latest := days[0]
	if !latest.Equal(today) && !latest.Equal(yesterday) {
		return 0
	}
	if words[latest] <= 0 {
		return 0
	}

	streak := 1
	cursor := latest
	for _, d := range days[1:] {
		if !d.Equal(cursor.AddDate(0, 0, -1)) || words[d] <= 0 {
			break
		}
		streak++
		cursor = d
	}
	return streak
}
