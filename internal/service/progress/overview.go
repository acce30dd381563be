package progress

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

// Overview returns today's words, all-time totals, the current streak and
// the goals in effect today.
func (s *Service) Overview(ctx context.Context) (domain.StatsOverview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StatsOverview{}, domain.ErrUnauthorized
	}

	settings, err := s.userSettings(ctx, userID)
	if err != nil {
		return domain.StatsOverview{}, fmt.Errorf("progress.Overview: %w", err)
	}
	loc := ParseTimezone(settings.Timezone)
	today := Today(s.now(), loc)

	var (
		stats []domain.DailyStat
		goals []domain.GoalEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.stats.List(gctx, userID, nil, nil)
		if err != nil {
			return fmt.Errorf("list daily stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goals, err = s.goals.ListUntil(gctx, userID, EndOfDay(today, loc))
		if err != nil {
			return fmt.Errorf("list goals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.StatsOverview{}, fmt.Errorf("progress.Overview: %w", err)
	}

	overview := domain.StatsOverview{
		Streak:      ComputeStreak(stats, today),
		OverallGoal: settings.OverallGoal,
	}
	for _, st := range stats {
		overview.AllTimeWords += st.WordsRead
		overview.StoriesCompleted += st.StoriesCompleted
		if st.Date.Equal(today) {
			overview.TodayWords = st.WordsRead
		}
	}
	if goal, ok := ActiveGoal(goalsIn(goals, loc), today); ok {
		overview.DailyGoal = &goal
	}

	return overview, nil
}

// Calendar returns one entry per day of the month with the words read, the
// goal active that day and the resulting status.
func (s *Service) Calendar(ctx context.Context, input CalendarInput) ([]domain.CalendarDay, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.userSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("progress.Calendar: %w", err)
	}
	loc := ParseTimezone(settings.Timezone)
	first, last := MonthBounds(input.Year, time.Month(input.Month))

	var (
		stats []domain.DailyStat
		goals []domain.GoalEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.stats.List(gctx, userID, &first, &last)
		if err != nil {
			return fmt.Errorf("list daily stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		goals, err = s.goals.ListUntil(gctx, userID, EndOfDay(last, loc))
		if err != nil {
			return fmt.Errorf("list goals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("progress.Calendar: %w", err)
	}

	words := make(map[time.Time]int, len(stats))
	for _, st := range stats {
		words[domain.CivilDate(st.Date)] = st.WordsRead
	}
	goals = goalsIn(goals, loc)

	days := make([]domain.CalendarDay, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		day := domain.CalendarDay{Date: d, Words: words[d]}
		if goal, ok := ActiveGoal(goals, d); ok {
			day.Goal = &goal
		}
		day.Status = DayStatusFor(day.Words, day.Goal)
		days = append(days, day)
	}

	return days, nil
}
