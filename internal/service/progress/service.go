package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type statRepo interface {
	GetForUpdate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyStat, error)
	Insert(ctx context.Context, stat domain.DailyStat) (*domain.DailyStat, error)
	Update(ctx context.Context, stat domain.DailyStat) (*domain.DailyStat, error)
	List(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.DailyStat, error)
}

type goalRepo interface {
	Append(ctx context.Context, ev domain.GoalEvent) (*domain.GoalEvent, error)
	ListUntil(ctx context.Context, userID uuid.UUID, until time.Time) ([]domain.GoalEvent, error)
}

type settingsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpsertOverallGoal(ctx context.Context, userID uuid.UUID, goal int) (*domain.UserSettings, error)
	UpsertTimezone(ctx context.Context, userID uuid.UUID, tz string) (*domain.UserSettings, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service records reading events and derives statistics from them.
type Service struct {
	stats           statRepo
	goals           goalRepo
	settings        settingsRepo
	tx              txManager
	log             *slog.Logger
	defaultTimezone string
	now             func() time.Time
}

// NewService creates a new progress service. defaultTimezone applies to
// users who never saved one.
func NewService(
	log *slog.Logger,
	stats statRepo,
	goals goalRepo,
	settings settingsRepo,
	tx txManager,
	defaultTimezone string,
) *Service {
	return &Service{
		stats:           stats,
		goals:           goals,
		settings:        settings,
		tx:              tx,
		log:             log.With("service", "progress"),
		defaultTimezone: defaultTimezone,
		now:             time.Now,
	}
}

// userSettings returns the stored settings, or defaults when the user has none.
func (s *Service) userSettings(ctx context.Context, userID uuid.UUID) (domain.UserSettings, error) {
	settings, err := s.settings.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		d := domain.DefaultUserSettings(userID)
		if s.defaultTimezone != "" {
			d.Timezone = s.defaultTimezone
		}
		return d, nil
	}
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("load settings: %w", err)
	}
	return *settings, nil
}

// UserToday returns the current calendar day in the user's timezone.
func (s *Service) UserToday(ctx context.Context, userID uuid.UUID) (time.Time, error) {
	settings, err := s.userSettings(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}
	return Today(s.now(), ParseTimezone(settings.Timezone)), nil
}
