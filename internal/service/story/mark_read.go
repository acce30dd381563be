package story

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

// MarkAsReadResult reports the user's story state and the day's totals.
type MarkAsReadResult struct {
	UserStory domain.UserStory
	DailyStat *domain.DailyStat
	// AlreadyRead is set when the story had been marked before; nothing was
	// counted again.
	AlreadyRead bool
}

// MarkAsRead records that the user finished a story. The first time, the
// story's words and one completed story are added to today's stats in the
// same transaction.
func (s *Service) MarkAsRead(ctx context.Context, storyID uuid.UUID) (MarkAsReadResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return MarkAsReadResult{}, domain.ErrUnauthorized
	}

	story, err := s.stories.GetByID(ctx, storyID)
	if err != nil {
		return MarkAsReadResult{}, fmt.Errorf("story.MarkAsRead: %w", err)
	}

	today, err := s.progress.UserToday(ctx, userID)
	if err != nil {
		return MarkAsReadResult{}, fmt.Errorf("story.MarkAsRead: %w", err)
	}

	var result MarkAsReadResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.userStories.GetForUpdate(txCtx, userID, storyID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get user story: %w", err)
		}
		if existing != nil && existing.Status == domain.StoryStatusRead {
			result = MarkAsReadResult{UserStory: *existing, AlreadyRead: true}
			return nil
		}

		now := s.now().UTC()
		us := domain.UserStory{
			ID:          uuid.New(),
			UserID:      userID,
			StoryID:     storyID,
			Status:      domain.StoryStatusRead,
			WordsRead:   story.WordCount,
			CompletedAt: &now,
			CreatedAt:   now,
			LastReadAt:  now,
		}
		if existing != nil {
			us.ID = existing.ID
			us.CreatedAt = existing.CreatedAt
		}

		saved, err := s.userStories.Upsert(txCtx, us)
		if errors.Is(err, domain.ErrAlreadyExists) {
			// A concurrent request marked it read between the lock and the write.
			result = MarkAsReadResult{UserStory: us, AlreadyRead: true}
			return nil
		}
		if err != nil {
			return fmt.Errorf("save user story: %w", err)
		}
		result.UserStory = *saved

		if story.WordCount == 0 {
			return nil
		}

		stat, err := s.progress.RecordReading(txCtx, domain.ReadingEvent{
			UserID:       userID,
			Date:         today,
			WordCount:    story.WordCount,
			StoriesDelta: 1,
		})
		if err != nil {
			return fmt.Errorf("record reading: %w", err)
		}
		result.DailyStat = &stat
		return nil
	})
	if err != nil {
		return MarkAsReadResult{}, fmt.Errorf("story.MarkAsRead: %w", err)
	}

	if !result.AlreadyRead {
		s.log.InfoContext(ctx, "story marked as read",
			slog.String("user_id", userID.String()),
			slog.String("story_id", storyID.String()),
			slog.Int("word_count", story.WordCount),
		)
	}

	return result, nil
}
