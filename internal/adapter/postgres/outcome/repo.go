// Package outcome persists outcomes and actions produced by chunk conversion.
package outcome

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/outcomes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// Repo provides outcome and action persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new outcome repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const outcomeColumns = `id, user_id, title, purpose, description, area_id, goal_id, status, source_chunk_id, created_at`

type outcomeRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	Title         string     `db:"title"`
	Purpose       string     `db:"purpose"`
	Description   *string    `db:"description"`
	AreaID        uuid.UUID  `db:"area_id"`
	GoalID        *uuid.UUID `db:"goal_id"`
	Status        string     `db:"status"`
	SourceChunkID *uuid.UUID `db:"source_chunk_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

const actionColumns = `id, outcome_id, title, source_chunk_item_id, sort_order, priority, duration_minutes, created_at`

type actionRow struct {
	ID                uuid.UUID  `db:"id"`
	OutcomeID         uuid.UUID  `db:"outcome_id"`
	Title             string     `db:"title"`
	SourceChunkItemID *uuid.UUID `db:"source_chunk_item_id"`
	SortOrder         int        `db:"sort_order"`
	Priority          string     `db:"priority"`
	DurationMinutes   int        `db:"duration_minutes"`
	CreatedAt         time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Outcomes
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO outcomes (id, user_id, title, purpose, description, area_id, goal_id, status, source_chunk_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (source_chunk_id) DO NOTHING
RETURNING ` + outcomeColumns

// Create inserts an outcome. When another outcome already references the
// same source chunk nothing is inserted and domain.ErrAlreadyExists is
// returned. The conflict is absorbed by ON CONFLICT rather than raised, so
// the surrounding transaction stays usable for GetBySourceChunk.
func (r *Repo) Create(ctx context.Context, o *domain.Outcome) (*domain.Outcome, error) {
	var row outcomeRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		o.ID, o.UserID, o.Title, o.Purpose, o.Description, o.AreaID, o.GoalID,
		string(o.Status), o.SourceChunkID, o.CreatedAt,
	)
	if pgxscan.NotFound(err) {
		return nil, fmt.Errorf("outcome for chunk %s: %w", o.SourceChunkID, domain.ErrAlreadyExists)
	}
	if err != nil {
		return nil, mapError(err, "outcome", o.ID)
	}
	return toDomainOutcome(row), nil
}

const getByIDSQL = `SELECT ` + outcomeColumns + ` FROM outcomes WHERE id = $1`

// GetByID returns an outcome by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Outcome, error) {
	var row outcomeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, mapError(err, "outcome", id)
	}
	return toDomainOutcome(row), nil
}

const getBySourceChunkSQL = `SELECT ` + outcomeColumns + ` FROM outcomes WHERE source_chunk_id = $1`

// GetBySourceChunk returns the outcome created from chunkID.
func (r *Repo) GetBySourceChunk(ctx context.Context, chunkID uuid.UUID) (*domain.Outcome, error) {
	var row outcomeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getBySourceChunkSQL, chunkID); err != nil {
		return nil, mapError(err, "outcome by chunk", chunkID)
	}
	return toDomainOutcome(row), nil
}

// ---------------------------------------------------------------------------
// Actions
// ---------------------------------------------------------------------------

// CreateActions inserts actions in one multi-row statement. Rows that
// already exist for the same (outcome_id, sort_order) are skipped, so a
// resumed conversion can re-run this step safely.
func (r *Repo) CreateActions(ctx context.Context, actions []domain.Action) error {
	if len(actions) == 0 {
		return nil
	}

	ins := psql.Insert("actions").
		Columns("id", "outcome_id", "title", "source_chunk_item_id", "sort_order", "priority", "duration_minutes", "created_at").
		Suffix("ON CONFLICT (outcome_id, sort_order) DO NOTHING")

	for _, a := range actions {
		ins = ins.Values(a.ID, a.OutcomeID, a.Title, a.SourceChunkItemID, a.SortOrder,
			string(a.Priority), a.DurationMinutes, a.CreatedAt)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert actions: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return mapError(err, "outcome actions", actions[0].OutcomeID)
	}
	return nil
}

const listActionsSQL = `SELECT ` + actionColumns + ` FROM actions WHERE outcome_id = $1 ORDER BY sort_order`

// ListActions returns an outcome's actions in sort order.
func (r *Repo) ListActions(ctx context.Context, outcomeID uuid.UUID) ([]domain.Action, error) {
	var rows []actionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listActionsSQL, outcomeID); err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}

	actions := make([]domain.Action, len(rows))
	for i, row := range rows {
		actions[i] = domain.Action{
			ID:                row.ID,
			OutcomeID:         row.OutcomeID,
			Title:             row.Title,
			SourceChunkItemID: row.SourceChunkItemID,
			SortOrder:         row.SortOrder,
			Priority:          domain.ActionPriority(row.Priority),
			DurationMinutes:   row.DurationMinutes,
			CreatedAt:         row.CreatedAt,
		}
	}
	return actions, nil
}

const countOutcomesSQL = `SELECT count(*) FROM outcomes WHERE source_chunk_id = $1`

// CountBySourceChunk returns how many outcomes reference chunkID. It is
// always 0 or 1; tests use it to assert no duplicate was created.
func (r *Repo) CountBySourceChunk(ctx context.Context, chunkID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countOutcomesSQL, chunkID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count outcomes: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mapError(err error, entity string, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return postgres.MapError(err, entity, id)
}

func toDomainOutcome(row outcomeRow) *domain.Outcome {
	return &domain.Outcome{
		ID:            row.ID,
		UserID:        row.UserID,
		Title:         row.Title,
		Purpose:       row.Purpose,
		Description:   row.Description,
		AreaID:        row.AreaID,
		GoalID:        row.GoalID,
		Status:        domain.OutcomeStatus(row.Status),
		SourceChunkID: row.SourceChunkID,
		CreatedAt:     row.CreatedAt,
	}
}
