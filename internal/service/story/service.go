// Package story manages reading texts: creating and importing them, serving
// their tokens, resolving lookups and recording completed reads.
package story

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/reading"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type storyRepo interface {
	Create(ctx context.Context, story domain.Story) (*domain.Story, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	List(ctx context.Context, filter domain.StoryFilter) ([]domain.Story, error)
}

type userStoryRepo interface {
	GetForUpdate(ctx context.Context, userID, storyID uuid.UUID) (*domain.UserStory, error)
	Upsert(ctx context.Context, us domain.UserStory) (*domain.UserStory, error)
}

type readingRecorder interface {
	UserToday(ctx context.Context, userID uuid.UUID) (time.Time, error)
	RecordReading(ctx context.Context, ev domain.ReadingEvent) (domain.DailyStat, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service provides story operations.
type Service struct {
	stories       storyRepo
	userStories   userStoryRepo
	progress      readingRecorder
	tx            txManager
	log           *slog.Logger
	contextWindow int
	now           func() time.Time
}

// NewService creates a new story service.
func NewService(
	log *slog.Logger,
	stories storyRepo,
	userStories userStoryRepo,
	progress readingRecorder,
	tx txManager,
	contextWindow int,
) *Service {
	if contextWindow <= 0 {
		contextWindow = reading.DefaultContextWindow
	}
	return &Service{
		stories:       stories,
		userStories:   userStories,
		progress:      progress,
		tx:            tx,
		log:           log.With("service", "story"),
		contextWindow: contextWindow,
		now:           time.Now,
	}
}
