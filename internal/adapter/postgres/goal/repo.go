// Package goal implements the append-only daily goal history using PostgreSQL.
package goal

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/robdix/spanish-reading/internal/adapter/postgres"
	"github.com/robdix/spanish-reading/internal/domain"
)

const appendSQL = `INSERT INTO user_goal_history (id, user_id, daily_words, effective_from)
	VALUES ($1, $2, $3, $4)
	RETURNING id, user_id, daily_words, effective_from`

// Repo provides goal history persistence backed by PostgreSQL.
// Rows are never updated or deleted.
type Repo struct {
	db postgres.DB
}

// New creates a new goal history repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type goalRow struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	DailyWords    int       `db:"daily_words"`
	EffectiveFrom time.Time `db:"effective_from"`
}

func (r goalRow) toDomain() domain.GoalEvent {
	return domain.GoalEvent{
		ID:            r.ID,
		UserID:        r.UserID,
		DailyWords:    r.DailyWords,
		EffectiveFrom: r.EffectiveFrom,
	}
}

// Append stores a new goal event. A zero ID is replaced with a fresh one.
func (r *Repo) Append(ctx context.Context, ev domain.GoalEvent) (*domain.GoalEvent, error) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}

	var row goalRow
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, appendSQL, ev.ID, ev.UserID, ev.DailyWords, ev.EffectiveFrom).
		Scan(&row.ID, &row.UserID, &row.DailyWords, &row.EffectiveFrom)
	if err != nil {
		return nil, postgres.MapError(err, "goal_event", ev.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// ListUntil returns the user's goal events effective at or before until,
// oldest first.
func (r *Repo) ListUntil(ctx context.Context, userID uuid.UUID, until time.Time) ([]domain.GoalEvent, error) {
	sql, args, err := postgres.Builder().
		Select("id", "user_id", "daily_words", "effective_from").
		From("user_goal_history").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"effective_from": until}).
		OrderBy("effective_from ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user_goal_history query: %w", err)
	}

	var rows []goalRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list user_goal_history: %w", err)
	}

	events := make([]domain.GoalEvent, len(rows))
	for i, row := range rows {
		events[i] = row.toDomain()
	}
	return events, nil
}
