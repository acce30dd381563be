package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/robdix/spanish-reading/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a fresh user identifier. Users live in the identity
// provider, so there is no row to insert.
func NewUserID() uuid.UUID {
	return uuid.New()
}

// SeedSettings stores settings for userID with the given timezone and
// optional overall goal.
func SeedSettings(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, tz string, overallGoal *int) domain.UserSettings {
	t.Helper()

	settings := domain.UserSettings{
		UserID:      userID,
		OverallGoal: overallGoal,
		Timezone:    tz,
		UpdatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_settings (user_id, overall_goal, timezone, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		settings.UserID, settings.OverallGoal, settings.Timezone, settings.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSettings: %v", err)
	}
	return settings
}

// SeedStory creates a story with the given content. Returns a filled domain.Story.
func SeedStory(t *testing.T, pool *pgxpool.Pool, content string) domain.Story {
	t.Helper()

	level := domain.DifficultyA2
	story := domain.Story{
		ID:          uuid.New(),
		Title:       "Story " + uniqueSuffix(),
		Content:     content,
		Difficulty:  &level,
		ContentType: domain.ContentTypeStory,
		WordCount:   len(strings.Fields(content)),
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO stories (id, title, content, difficulty, content_type, word_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		story.ID, story.Title, story.Content, string(level), string(story.ContentType), story.WordCount, story.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStory: %v", err)
	}
	return story
}

// SeedVocabulary saves a phrase for userID. When exported is true the entry
// is marked as already exported.
func SeedVocabulary(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, phrase string, exported bool) domain.VocabularyEntry {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.VocabularyEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Phrase:     phrase,
		Definition: "definition of " + phrase,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if exported {
		entry.ExportedAt = &now
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_vocabulary (id, user_id, phrase, definition, exported_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.UserID, entry.Phrase, entry.Definition, entry.ExportedAt, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabulary: %v", err)
	}
	return entry
}
