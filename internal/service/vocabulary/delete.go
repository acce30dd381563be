package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

// Delete removes an entry by ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.vocab.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete vocabulary entry: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()),
	)

	return nil
}

// ResetExported clears the export timestamp of the given entries so the next
// "new" export includes them again.
func (s *Service) ResetExported(ctx context.Context, ids []uuid.UUID) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if len(ids) == 0 {
		return 0, domain.NewValidationError("ids", "required")
	}

	n, err := s.vocab.ResetExported(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf("reset exported: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary export reset",
		slog.String("user_id", userID.String()),
		slog.Int("count", n),
	)

	return n, nil
}
