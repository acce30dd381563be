package story

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/robdix/spanish-reading/internal/adapter/postgres"
	"github.com/robdix/spanish-reading/internal/domain"
)

const userStoryColumns = `id, user_id, story_id, status, words_read, completed_at, created_at, last_read_at`

const (
	getUserStoryForUpdateSQL = `SELECT ` + userStoryColumns + `
		FROM user_stories
		WHERE user_id = $1 AND story_id = $2
		FOR UPDATE`

	// The conflict update is skipped for rows already marked read, so a
	// racing second writer gets no row back instead of counting twice.
	upsertUserStorySQL = `INSERT INTO user_stories (id, user_id, story_id, status, words_read, completed_at, created_at, last_read_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, story_id) DO UPDATE
		SET status = EXCLUDED.status,
		    words_read = EXCLUDED.words_read,
		    completed_at = EXCLUDED.completed_at,
		    last_read_at = EXCLUDED.last_read_at
		WHERE user_stories.status <> 'read'
		RETURNING ` + userStoryColumns
)

// UserStoryRepo provides per-user story state backed by PostgreSQL.
type UserStoryRepo struct {
	db postgres.DB
}

// NewUserStoryRepo creates a new user story repository.
func NewUserStoryRepo(db postgres.DB) *UserStoryRepo {
	return &UserStoryRepo{db: db}
}

func scanUserStory(row pgx.Row) (*domain.UserStory, error) {
	var (
		us     domain.UserStory
		status string
	)
	err := row.Scan(&us.ID, &us.UserID, &us.StoryID, &status, &us.WordsRead,
		&us.CompletedAt, &us.CreatedAt, &us.LastReadAt)
	if err != nil {
		return nil, err
	}
	us.Status = domain.StoryStatus(status)
	return &us, nil
}

// GetForUpdate returns the user's state for a story and locks the row until
// the surrounding transaction ends. Returns domain.ErrNotFound if none exists.
func (r *UserStoryRepo) GetForUpdate(ctx context.Context, userID, storyID uuid.UUID) (*domain.UserStory, error) {
	us, err := scanUserStory(postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, getUserStoryForUpdateSQL, userID, storyID))
	if err != nil {
		return nil, postgres.MapError(err, "user_story", storyID)
	}
	return us, nil
}

// Upsert inserts or updates the user's state for a story. ID and CreatedAt
// of an existing row are kept. Returns domain.ErrAlreadyExists when the
// existing row is already marked read.
func (r *UserStoryRepo) Upsert(ctx context.Context, us domain.UserStory) (*domain.UserStory, error) {
	if us.ID == uuid.Nil {
		us.ID = uuid.New()
	}

	saved, err := scanUserStory(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertUserStorySQL,
		us.ID, us.UserID, us.StoryID, string(us.Status), us.WordsRead,
		us.CompletedAt, us.CreatedAt, us.LastReadAt,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user_story %s: %w", us.StoryID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, "user_story", us.StoryID)
	}
	return saved, nil
}
