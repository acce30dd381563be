package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

// LogReading adds a reading session to the authenticated user's stats for
// the given day (today in the user's timezone when no date is given). Days
// after today are rejected.
func (s *Service) LogReading(ctx context.Context, input LogReadingInput) (domain.DailyStat, error) {
	if err := input.Validate(); err != nil {
		return domain.DailyStat{}, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DailyStat{}, domain.ErrUnauthorized
	}

	today, err := s.UserToday(ctx, userID)
	if err != nil {
		return domain.DailyStat{}, fmt.Errorf("progress.LogReading: %w", err)
	}

	date := input.date
	if date.IsZero() {
		date = today
	}
	// A future row would end the streak until that day arrives.
	if date.After(today) {
		return domain.DailyStat{}, domain.NewValidationError("date", "must not be in the future")
	}

	stat, err := s.RecordReading(ctx, domain.ReadingEvent{
		UserID:       userID,
		Date:         date,
		WordCount:    input.WordCount,
		StoriesDelta: input.StoriesDelta,
	})
	if err != nil {
		return domain.DailyStat{}, fmt.Errorf("progress.LogReading: %w", err)
	}

	s.log.InfoContext(ctx, "reading logged",
		slog.String("user_id", userID.String()),
		slog.String("date", stat.Date.Format(domain.DateLayout)),
		slog.Int("word_count", input.WordCount),
		slog.Int("words_read", stat.WordsRead),
	)

	return stat, nil
}

// RecordReading merges ev into the stored DailyStat for (ev.UserID, ev.Date).
//
// The row is read with a lock, merged with ApplyReadingEvent and written back
// in one transaction. When no row exists yet the insert cannot overwrite a
// concurrent one: if another event created the row first, the merge is
// repeated against that row. Runs inside the caller's transaction if ctx
// carries one.
func (s *Service) RecordReading(ctx context.Context, ev domain.ReadingEvent) (domain.DailyStat, error) {
	ev.Date = domain.CivilDate(ev.Date)

	var result domain.DailyStat
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for attempt := 0; ; attempt++ {
			existing, err := s.stats.GetForUpdate(txCtx, ev.UserID, ev.Date)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("get daily stat: %w", err)
			}
			if err != nil {
				existing = nil
			}

			next, err := ApplyReadingEvent(existing, ev)
			if err != nil {
				return err
			}

			if existing != nil {
				saved, err := s.stats.Update(txCtx, next)
				if err != nil {
					return fmt.Errorf("update daily stat: %w", err)
				}
				result = *saved
				return nil
			}

			saved, err := s.stats.Insert(txCtx, next)
			if err == nil {
				result = *saved
				return nil
			}
			if !errors.Is(err, domain.ErrAlreadyExists) || attempt > 0 {
				return fmt.Errorf("insert daily stat: %w", err)
			}
		}
	})
	if err != nil {
		return domain.DailyStat{}, err
	}

	return result, nil
}
