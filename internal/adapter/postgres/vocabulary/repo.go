// Package vocabulary implements the saved-phrase repository using PostgreSQL.
package vocabulary

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

const entity = "vocabulary_entry"

var entryColumns = []string{
	"id", "user_id", "story_id", "phrase", "definition", "example", "example_translation",
	"infinitive", "notes", "context", "exported_at", "created_at", "updated_at",
}

const returningColumns = `id, user_id, story_id, phrase, definition, example, example_translation,
	infinitive, notes, context, exported_at, created_at, updated_at`

const (
	// Re-saving a phrase replaces its definition payload. exported_at is
	// never touched here; story and context are kept when not supplied.
	upsertSQL = `INSERT INTO user_vocabulary (id, user_id, story_id, phrase, definition, example,
		example_translation, infinitive, notes, context, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		ON CONFLICT (user_id, phrase) DO UPDATE
		SET definition = EXCLUDED.definition,
		    example = EXCLUDED.example,
		    example_translation = EXCLUDED.example_translation,
		    infinitive = EXCLUDED.infinitive,
		    notes = EXCLUDED.notes,
		    story_id = COALESCE(EXCLUDED.story_id, user_vocabulary.story_id),
		    context = COALESCE(EXCLUDED.context, user_vocabulary.context),
		    updated_at = now()
		RETURNING ` + returningColumns

	getByIDSQL = `SELECT ` + returningColumns + `
		FROM user_vocabulary
		WHERE user_id = $1 AND id = $2`

	deleteSQL = `DELETE FROM user_vocabulary WHERE user_id = $1 AND id = $2`

	countsSQL = `SELECT count(*), count(*) FILTER (WHERE exported_at IS NULL)
		FROM user_vocabulary
		WHERE user_id = $1`
)

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new vocabulary repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID                 uuid.UUID  `db:"id"`
	UserID             uuid.UUID  `db:"user_id"`
	StoryID            *uuid.UUID `db:"story_id"`
	Phrase             string     `db:"phrase"`
	Definition         string     `db:"definition"`
	Example            string     `db:"example"`
	ExampleTranslation string     `db:"example_translation"`
	Infinitive         *string    `db:"infinitive"`
	Notes              *string    `db:"notes"`
	Context            *string    `db:"context"`
	ExportedAt         *time.Time `db:"exported_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (r entryRow) toDomain() domain.VocabularyEntry {
	return domain.VocabularyEntry(r)
}

func scanEntry(row pgx.Row) (*domain.VocabularyEntry, error) {
	var r entryRow
	err := row.Scan(&r.ID, &r.UserID, &r.StoryID, &r.Phrase, &r.Definition, &r.Example,
		&r.ExampleTranslation, &r.Infinitive, &r.Notes, &r.Context, &r.ExportedAt,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e := r.toDomain()
	return &e, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the user's entry by primary key.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.VocabularyEntry, error) {
	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, userID, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return e, nil
}

// List returns the user's entries newest first. A zero Limit means no limit.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, error) {
	query := postgres.Builder().
		Select(entryColumns...).
		From("user_vocabulary").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")

	if filter.NotExportedOnly {
		query = query.Where(sq.Eq{"exported_at": nil})
	}
	if filter.StoryID != nil {
		query = query.Where(sq.Eq{"story_id": *filter.StoryID})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user_vocabulary query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list user_vocabulary: %w", err)
	}

	entries := make([]domain.VocabularyEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// Counts returns the user's total and never-exported entry counts.
func (r *Repo) Counts(ctx context.Context, userID uuid.UUID) (domain.VocabularyCounts, error) {
	var c domain.VocabularyCounts
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, countsSQL, userID).
		Scan(&c.Total, &c.NotExported)
	if err != nil {
		return domain.VocabularyCounts{}, fmt.Errorf("count user_vocabulary: %w", err)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts an entry or, when the user already saved the phrase,
// overwrites its definition fields. The stored ID and export state win over
// the ones passed in.
func (r *Repo) Upsert(ctx context.Context, entry domain.VocabularyEntry) (*domain.VocabularyEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	saved, err := scanEntry(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertSQL,
		entry.ID, entry.UserID, entry.StoryID, entry.Phrase, entry.Definition, entry.Example,
		entry.ExampleTranslation, entry.Infinitive, entry.Notes, entry.Context,
	))
	if err != nil {
		return nil, postgres.MapError(err, entity, entry.ID)
	}
	return saved, nil
}

// Delete removes the user's entry.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, userID, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// MarkExported stamps the user's entries in ids with at. Returns the number
// of rows changed; ids of other users are ignored.
func (r *Repo) MarkExported(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, at time.Time) (int, error) {
	return r.setExportedAt(ctx, userID, ids, &at)
}

// ResetExported clears the export stamp of the user's entries in ids.
func (r *Repo) ResetExported(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	return r.setExportedAt(ctx, userID, ids, nil)
}

func (r *Repo) setExportedAt(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, at *time.Time) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := postgres.Builder().
		Update("user_vocabulary").
		Set("exported_at", at).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user_vocabulary update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("update user_vocabulary exported_at: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
