package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/reading"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

// Save stores a phrase for the current user. Saving a phrase that already
// exists overwrites its definition fields; its export state is kept.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.VocabularyEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	phrase := domain.NormalizePhrase(input.Phrase)

	contextText := trimOrNil(input.Context)
	if contextText == nil && input.StoryID != nil {
		c, err := s.storyContext(ctx, *input.StoryID, phrase)
		if err != nil {
			return nil, fmt.Errorf("vocabulary.Save: %w", err)
		}
		contextText = c
	}

	entry, err := s.vocab.Upsert(ctx, domain.VocabularyEntry{
		ID:                 uuid.New(),
		UserID:             userID,
		StoryID:            input.StoryID,
		Phrase:             phrase,
		Definition:         strings.TrimSpace(input.Definition),
		Example:            strings.TrimSpace(input.Example),
		ExampleTranslation: strings.TrimSpace(input.ExampleTranslation),
		Infinitive:         trimOrNil(input.Infinitive),
		Notes:              trimOrNil(input.Notes),
		Context:            contextText,
	})
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Save: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary saved",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.String("phrase", phrase),
	)

	return entry, nil
}

// storyContext cuts the text around phrase out of the story. A story that
// no longer exists yields no context rather than an error.
func (s *Service) storyContext(ctx context.Context, storyID uuid.UUID, phrase string) (*string, error) {
	story, err := s.stories.GetByID(ctx, storyID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}

	c := reading.ExtractContext(story.Content, phrase, s.contextWindow)
	return &c, nil
}
