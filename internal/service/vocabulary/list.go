package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

// List returns the user's vocabulary, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	entries, err := s.vocab.List(ctx, userID, domain.VocabularyFilter{
		NotExportedOnly: input.Mode == domain.ExportModeNew,
		StoryID:         input.StoryID,
		Limit:           limit,
		Offset:          input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}

	return entries, nil
}

// Get returns a single entry by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.vocab.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary entry: %w", err)
	}

	return entry, nil
}

// Counts returns how many entries the user has and how many were never exported.
func (s *Service) Counts(ctx context.Context) (domain.VocabularyCounts, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.VocabularyCounts{}, domain.ErrUnauthorized
	}

	counts, err := s.vocab.Counts(ctx, userID)
	if err != nil {
		return domain.VocabularyCounts{}, fmt.Errorf("count vocabulary: %w", err)
	}

	return counts, nil
}
