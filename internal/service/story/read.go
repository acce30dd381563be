package story

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/reading"
)

// LookupResult is the phrase behind a selection with the text around it.
type LookupResult struct {
	Phrase  string
	Context string
	// Highlight lists the token indexes belonging to the phrase.
	Highlight []int
}

// Get returns a story by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get story: %w", err)
	}
	return story, nil
}

// List returns stories matching the filter, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Story, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	stories, err := s.stories.List(ctx, domain.StoryFilter{
		Difficulty:  input.Difficulty,
		ContentType: input.ContentType,
		Limit:       limit,
		Offset:      input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	return stories, nil
}

// Tokens splits the story text into display tokens.
func (s *Service) Tokens(ctx context.Context, id uuid.UUID) ([]domain.Token, error) {
	story, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return reading.Tokenize(story.Content), nil
}

// Lookup resolves a token selection to a phrase, cuts its context from the
// story and reports which tokens to highlight.
func (s *Service) Lookup(ctx context.Context, id uuid.UUID, input LookupInput) (LookupResult, error) {
	story, err := s.Get(ctx, id)
	if err != nil {
		return LookupResult{}, err
	}

	tokens := reading.Tokenize(story.Content)
	phrase := reading.ResolveSelection(tokens, input.Start, input.End)
	if phrase == "" {
		return LookupResult{}, domain.NewValidationError("selection", "contains no words")
	}

	return LookupResult{
		Phrase:    phrase,
		Context:   reading.ExtractContext(story.Content, phrase, s.contextWindow),
		Highlight: reading.PhraseOccurrences(tokens, story.Content, phrase),
	}, nil
}
