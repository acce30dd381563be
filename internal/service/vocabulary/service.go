package vocabulary

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/reading"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type vocabRepo interface {
	Upsert(ctx context.Context, entry domain.VocabularyEntry) (*domain.VocabularyEntry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularyEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ResetExported(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)
	Counts(ctx context.Context, userID uuid.UUID) (domain.VocabularyCounts, error)
}

type storyReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error)
}

// Service manages the user's saved vocabulary.
type Service struct {
	vocab         vocabRepo
	stories       storyReader
	log           *slog.Logger
	contextWindow int
}

// NewService creates a new vocabulary service. contextWindow is the number
// of characters of story text kept on each side of a saved phrase.
func NewService(
	log *slog.Logger,
	vocab vocabRepo,
	stories storyReader,
	contextWindow int,
) *Service {
	if contextWindow <= 0 {
		contextWindow = reading.DefaultContextWindow
	}
	return &Service{
		vocab:         vocab,
		stories:       stories,
		log:           log.With("service", "vocabulary"),
		contextWindow: contextWindow,
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
