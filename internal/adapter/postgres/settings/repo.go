// Package settings implements per-user reading settings using PostgreSQL.
package settings

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/robdix/spanish-reading/internal/adapter/postgres"
	"github.com/robdix/spanish-reading/internal/domain"
)

const entity = "user_settings"

const (
	getSQL = `SELECT user_id, overall_goal, timezone, updated_at
		FROM user_settings
		WHERE user_id = $1`

	upsertOverallGoalSQL = `INSERT INTO user_settings (user_id, overall_goal, timezone, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE
		SET overall_goal = EXCLUDED.overall_goal, updated_at = now()
		RETURNING user_id, overall_goal, timezone, updated_at`

	upsertTimezoneSQL = `INSERT INTO user_settings (user_id, timezone, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE
		SET timezone = EXCLUDED.timezone, updated_at = now()
		RETURNING user_id, overall_goal, timezone, updated_at`
)

// Repo provides user settings persistence backed by PostgreSQL.
type Repo struct {
	db              postgres.DB
	defaultTimezone string
}

// New creates a new settings repository. defaultTimezone is stored when a
// row is created by a write that does not set the timezone.
func New(db postgres.DB, defaultTimezone string) *Repo {
	if defaultTimezone == "" {
		defaultTimezone = domain.DefaultUserSettings(uuid.Nil).Timezone
	}
	return &Repo{db: db, defaultTimezone: defaultTimezone}
}

func scanSettings(row pgx.Row) (*domain.UserSettings, error) {
	var s domain.UserSettings
	if err := row.Scan(&s.UserID, &s.OverallGoal, &s.Timezone, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Get returns the user's settings.
// Returns domain.ErrNotFound if the user never saved any.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	s, err := scanSettings(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return s, nil
}

// UpsertOverallGoal stores the overall word goal, creating the settings row
// with the default timezone when missing.
func (r *Repo) UpsertOverallGoal(ctx context.Context, userID uuid.UUID, goal int) (*domain.UserSettings, error) {
	s, err := scanSettings(postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, upsertOverallGoalSQL, userID, goal, r.defaultTimezone))
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return s, nil
}

// UpsertTimezone stores the IANA timezone name used for day boundaries.
func (r *Repo) UpsertTimezone(ctx context.Context, userID uuid.UUID, tz string) (*domain.UserSettings, error) {
	s, err := scanSettings(postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, upsertTimezoneSQL, userID, tz))
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return s, nil
}
