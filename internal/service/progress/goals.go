package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

// SetDailyGoal records a new daily word goal, effective now. Earlier goals
// stay in the history so past days keep the goal that applied to them.
func (s *Service) SetDailyGoal(ctx context.Context, input SetGoalInput) (*domain.GoalEvent, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ev, err := s.goals.Append(ctx, domain.GoalEvent{
		ID:            uuid.New(),
		UserID:        userID,
		DailyWords:    input.Words,
		EffectiveFrom: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("progress.SetDailyGoal: %w", err)
	}

	s.log.InfoContext(ctx, "daily goal set",
		slog.String("user_id", userID.String()),
		slog.Int("daily_words", input.Words),
	)

	return ev, nil
}

// SetOverallGoal stores the user's all-time word goal.
func (s *Service) SetOverallGoal(ctx context.Context, input SetGoalInput) (*domain.UserSettings, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.UpsertOverallGoal(ctx, userID, input.Words)
	if err != nil {
		return nil, fmt.Errorf("progress.SetOverallGoal: %w", err)
	}

	return settings, nil
}

// SetTimezone stores the IANA timezone used to decide what "today" is.
func (s *Service) SetTimezone(ctx context.Context, tz string) (*domain.UserSettings, error) {
	if _, err := time.LoadLocation(tz); err != nil || tz == "" {
		return nil, domain.NewValidationError("timezone", "must be a valid IANA timezone")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.UpsertTimezone(ctx, userID, tz)
	if err != nil {
		return nil, fmt.Errorf("progress.SetTimezone: %w", err)
	}

	return settings, nil
}
