// Package dailystat implements the per-day reading aggregate repository
// using PostgreSQL.
package dailystat

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/robdix/spanish-reading/internal/adapter/postgres"
	"github.com/robdix/spanish-reading/internal/domain"
)

const entity = "reading_stat"

const statColumns = `user_id, date, words_read, stories_completed, created_at, updated_at`

const (
	getForUpdateSQL = `SELECT ` + statColumns + `
		FROM reading_stats
		WHERE user_id = $1 AND date = $2
		FOR UPDATE`

	insertSQL = `INSERT INTO reading_stats (user_id, date, words_read, stories_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING ` + statColumns

	updateSQL = `UPDATE reading_stats
		SET words_read = $3, stories_completed = $4, updated_at = now()
		WHERE user_id = $1 AND date = $2
		RETURNING ` + statColumns
)

// Repo provides reading stat persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new daily stat repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// statRow mirrors a reading_stats row for pgxscan.
type statRow struct {
	UserID           uuid.UUID `db:"user_id"`
	Date             time.Time `db:"date"`
	WordsRead        int       `db:"words_read"`
	StoriesCompleted int       `db:"stories_completed"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r statRow) toDomain() domain.DailyStat {
	return domain.DailyStat{
		UserID:           r.UserID,
		Date:             domain.CivilDate(r.Date),
		WordsRead:        r.WordsRead,
		StoriesCompleted: r.StoriesCompleted,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func scanStat(row pgx.Row) (*domain.DailyStat, error) {
	var r statRow
	if err := row.Scan(&r.UserID, &r.Date, &r.WordsRead, &r.StoriesCompleted, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	stat := r.toDomain()
	return &stat, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetForUpdate returns the stat for (userID, date) and locks the row until
// the surrounding transaction ends. Returns domain.ErrNotFound if no row exists.
func (r *Repo) GetForUpdate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	stat, err := scanStat(q.QueryRow(ctx, getForUpdateSQL, userID, domain.CivilDate(date)))
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return stat, nil
}

// List returns the user's stats ordered by date ascending. from and to are
// inclusive bounds; nil means unbounded.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.DailyStat, error) {
	query := postgres.Builder().
		Select(statColumns).
		From("reading_stats").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date ASC")

	if from != nil {
		query = query.Where(sq.GtOrEq{"date": domain.CivilDate(*from)})
	}
	if to != nil {
		query = query.Where(sq.LtOrEq{"date": domain.CivilDate(*to)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reading_stats query: %w", err)
	}

	var rows []statRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list reading_stats: %w", err)
	}

	stats := make([]domain.DailyStat, len(rows))
	for i, row := range rows {
		stats[i] = row.toDomain()
	}
	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert creates the stat row for (UserID, Date).
// Returns domain.ErrAlreadyExists if a concurrent writer created it first.
func (r *Repo) Insert(ctx context.Context, stat domain.DailyStat) (*domain.DailyStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	created, err := scanStat(q.QueryRow(ctx, insertSQL,
		stat.UserID, domain.CivilDate(stat.Date), stat.WordsRead, stat.StoriesCompleted,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s %s: %w", entity, stat.UserID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, postgres.MapError(err, entity, stat.UserID)
	}
	return created, nil
}

// Update overwrites the counters of an existing stat row.
// Returns domain.ErrNotFound if the row does not exist.
func (r *Repo) Update(ctx context.Context, stat domain.DailyStat) (*domain.DailyStat, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	updated, err := scanStat(q.QueryRow(ctx, updateSQL,
		stat.UserID, domain.CivilDate(stat.Date), stat.WordsRead, stat.StoriesCompleted,
	))
	if err != nil {
		return nil, postgres.MapError(err, entity, stat.UserID)
	}
	return updated, nil
}
