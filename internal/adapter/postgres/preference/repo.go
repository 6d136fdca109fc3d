// Package preference persists per-user conversion defaults.
package preference

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/outcomes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// Repo provides user preference persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new preference repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type preferenceRow struct {
	UserID                      uuid.UUID `db:"user_id"`
	AutoCreateActionsFromChunks bool      `db:"auto_create_actions_from_chunks"`
	DefaultPostConversionAction string    `db:"default_post_conversion_action"`
	UpdatedAt                   time.Time `db:"updated_at"`
}

const columns = `user_id, auto_create_actions_from_chunks, default_post_conversion_action, updated_at`

const getSQL = `SELECT ` + columns + ` FROM user_preferences WHERE user_id = $1`

// Get returns the stored preference. Returns domain.ErrNotFound if the user
// never saved one.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserPreference, error) {
	var row preferenceRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getSQL, userID); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("user_preference %s: %w", userID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "user_preference", userID)
	}
	return toDomain(row), nil
}

const upsertSQL = `
INSERT INTO user_preferences (user_id, auto_create_actions_from_chunks, default_post_conversion_action, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
	auto_create_actions_from_chunks = EXCLUDED.auto_create_actions_from_chunks,
	default_post_conversion_action = EXCLUDED.default_post_conversion_action,
	updated_at = EXCLUDED.updated_at
RETURNING ` + columns

// Upsert stores pref, replacing any existing row.
func (r *Repo) Upsert(ctx context.Context, pref domain.UserPreference) (*domain.UserPreference, error) {
	var row preferenceRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertSQL,
		pref.UserID, pref.AutoCreateActionsFromChunks, string(pref.DefaultPostConversionAction), pref.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_preference", pref.UserID)
	}
	return toDomain(row), nil
}

func toDomain(row preferenceRow) *domain.UserPreference {
	return &domain.UserPreference{
		UserID:                      row.UserID,
		AutoCreateActionsFromChunks: row.AutoCreateActionsFromChunks,
		DefaultPostConversionAction: domain.PostConversionAction(row.DefaultPostConversionAction),
		UpdatedAt:                   row.UpdatedAt,
	}
}
