// Package story implements the story catalog and per-user story state
// repositories using PostgreSQL.
package story

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/robdix/spanish-reading/internal/adapter/postgres"
	"github.com/robdix/spanish-reading/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var storyColumns = []string{
	"id", "title", "content", "difficulty", "content_type",
	"word_count", "source_url", "created_by", "created_at",
}

const createSQL = `INSERT INTO stories (id, title, content, difficulty, content_type, word_count, source_url, created_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
	RETURNING id, title, content, difficulty, content_type, word_count, source_url, created_by, created_at`

const getByIDSQL = `SELECT id, title, content, difficulty, content_type, word_count, source_url, created_by, created_at
	FROM stories
	WHERE id = $1`

// Repo provides story persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new story repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type storyRow struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	Difficulty  *string    `db:"difficulty"`
	ContentType string     `db:"content_type"`
	WordCount   int        `db:"word_count"`
	SourceURL   *string    `db:"source_url"`
	CreatedBy   *uuid.UUID `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r storyRow) toDomain() domain.Story {
	s := domain.Story{
		ID:          r.ID,
		Title:       r.Title,
		Content:     r.Content,
		ContentType: domain.ContentType(r.ContentType),
		WordCount:   r.WordCount,
		SourceURL:   r.SourceURL,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
	}
	if r.Difficulty != nil {
		d := domain.Difficulty(*r.Difficulty)
		s.Difficulty = &d
	}
	return s
}

func scanStory(row pgx.Row) (*domain.Story, error) {
	var r storyRow
	err := row.Scan(&r.ID, &r.Title, &r.Content, &r.Difficulty, &r.ContentType,
		&r.WordCount, &r.SourceURL, &r.CreatedBy, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	s := r.toDomain()
	return &s, nil
}

func difficultyParam(d *domain.Difficulty) *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a story by primary key.
// Returns domain.ErrNotFound if the story does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	s, err := scanStory(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "story", id)
	}
	return s, nil
}

// List returns stories newest first, narrowed by the filter.
func (r *Repo) List(ctx context.Context, filter domain.StoryFilter) ([]domain.Story, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := max(filter.Offset, 0)

	query := postgres.Builder().
		Select(storyColumns...).
		From("stories").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if filter.Difficulty != nil {
		query = query.Where(sq.Eq{"difficulty": string(*filter.Difficulty)})
	}
	if filter.ContentType != nil {
		query = query.Where(sq.Eq{"content_type": string(*filter.ContentType)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stories query: %w", err)
	}

	var rows []storyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	stories := make([]domain.Story, len(rows))
	for i, row := range rows {
		stories[i] = row.toDomain()
	}
	return stories, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new story. A zero ID is replaced with a fresh one.
func (r *Repo) Create(ctx context.Context, story domain.Story) (*domain.Story, error) {
	if story.ID == uuid.Nil {
		story.ID = uuid.New()
	}

	created, err := scanStory(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		story.ID, story.Title, story.Content, difficultyParam(story.Difficulty),
		string(story.ContentType), story.WordCount, story.SourceURL, story.CreatedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "story", story.ID)
	}
	return created, nil
}
