// Package inbox implements the ItemStore repository using PostgreSQL.
// It persists captured inbox items and their triage state. Chunk membership
// (the chunk_id back-reference) is written only by the chunk repository.
package inbox

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

// Repo provides inbox item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new inbox repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const itemColumns = `id, user_id, org_id, content, item_type, chunk_id, triaged, triaged_to_id, created_at`

// itemRow is the scany scan target for inbox_items.
type itemRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	OrgID       *uuid.UUID `db:"org_id"`
	Content     string     `db:"content"`
	ItemType    string     `db:"item_type"`
	ChunkID     *uuid.UUID `db:"chunk_id"`
	Triaged     bool       `db:"triaged"`
	TriagedToID *uuid.UUID `db:"triaged_to_id"`
	CreatedAt   time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + itemColumns + ` FROM inbox_items WHERE id = $1 AND user_id = $2`

// GetByID returns an inbox item by primary key.
// Returns domain.ErrNotFound if the item does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.InboxItem, error) {
	return r.getOne(ctx, itemID, getByIDSQL, itemID, userID)
}

const getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

// GetForUpdate is GetByID with a row lock. Must run inside a transaction.
func (r *Repo) GetForUpdate(ctx context.Context, userID, itemID uuid.UUID) (*domain.InboxItem, error) {
	return r.getOne(ctx, itemID, getForUpdateSQL, itemID, userID)
}

func (r *Repo) getOne(ctx context.Context, itemID uuid.UUID, query string, args ...any) (*domain.InboxItem, error) {
	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, itemID)
	}
	item := toDomain(row)
	return &item, nil
}

// ListUntriaged returns untriaged items matching filter, newest first, and
// the total number of matches ignoring limit/offset.
func (r *Repo) ListUntriaged(ctx context.Context, userID uuid.UUID, filter domain.ItemFilter) ([]domain.InboxItem, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := untriagedWhere(userID, filter)

	countSQL, countArgs, err := psql.Select("count(*)").From("inbox_items").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count inbox_items: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inbox_items: %w", err)
	}

	sel := psql.Select(itemColumns).From("inbox_items").Where(where).OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sel = sel.Offset(uint64(filter.Offset))
	}

	listSQL, listArgs, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list inbox_items: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list inbox_items: %w", err)
	}

	items := make([]domain.InboxItem, len(rows))
	for i, row := range rows {
		items[i] = toDomain(row)
	}
	return items, total, nil
}

func untriagedWhere(userID uuid.UUID, filter domain.ItemFilter) sq.And {
	where := sq.And{
		sq.Eq{"user_id": userID},
		sq.Eq{"triaged": false},
	}
	if filter.ItemType != nil {
		where = append(where, sq.Eq{"item_type": string(*filter.ItemType)})
	}
	if filter.ChunkID != nil {
		where = append(where, sq.Eq{"chunk_id": *filter.ChunkID})
	} else if filter.Chunked != nil {
		if *filter.Chunked {
			where = append(where, sq.NotEq{"chunk_id": nil})
		} else {
			where = append(where, sq.Eq{"chunk_id": nil})
		}
	}
	if filter.Search != nil && *filter.Search != "" {
		where = append(where, sq.ILike{"content": "%" + *filter.Search + "%"})
	}
	return where
}

const countUntriagedSQL = `SELECT count(*) FROM inbox_items WHERE user_id = $1 AND NOT triaged`

// CountUntriaged returns the number of untriaged items a user holds.
func (r *Repo) CountUntriaged(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countUntriagedSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count untriaged inbox_items: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO inbox_items (id, user_id, org_id, content, item_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + itemColumns

// Create inserts a new inbox item and returns the persisted domain.InboxItem.
func (r *Repo) Create(ctx context.Context, item *domain.InboxItem) (*domain.InboxItem, error) {
	return r.getOne(ctx, item.ID, createSQL,
		item.ID, item.UserID, item.OrgID, item.Content, string(item.ItemType), item.CreatedAt,
	)
}

const updateTypeSQL = `
UPDATE inbox_items SET item_type = $3
WHERE id = $1 AND user_id = $2 AND NOT triaged
RETURNING ` + itemColumns

// UpdateType changes an untriaged item's type. A triaged or missing item
// yields domain.ErrNotFound; callers lock and check state first.
func (r *Repo) UpdateType(ctx context.Context, userID, itemID uuid.UUID, itemType domain.ItemType) (*domain.InboxItem, error) {
	return r.getOne(ctx, itemID, updateTypeSQL, itemID, userID, string(itemType))
}

const deleteSQL = `DELETE FROM inbox_items WHERE id = $1 AND user_id = $2 AND NOT triaged`

// Delete removes an untriaged item. Returns domain.ErrNotFound if no
// untriaged item matched.
func (r *Repo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, itemID, userID)
	if err != nil {
		return mapError(err, itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inbox_item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

const markTriagedSQL = `
UPDATE inbox_items SET triaged = true, triaged_to_id = $2
WHERE id = $1 AND (NOT triaged OR triaged_to_id = $2)`

const triagedToSQL = `SELECT triaged_to_id FROM inbox_items WHERE id = $1`

// MarkTriaged marks an item triaged to outcomeID. Re-marking to the same
// outcome is a no-op; an item already triaged to a different outcome yields
// a *domain.ConflictError.
func (r *Repo) MarkTriaged(ctx context.Context, itemID, outcomeID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, markTriagedSQL, itemID, outcomeID)
	if err != nil {
		return mapError(err, itemID)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var current *uuid.UUID
	if err := q.QueryRow(ctx, triagedToSQL, itemID).Scan(&current); err != nil {
		return mapError(err, itemID)
	}
	return domain.NewConflictError("inbox_item", itemID,
		fmt.Sprintf("already triaged to outcome %s", uuidString(current)))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mapError(err error, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("inbox_item %s: %w", id, domain.ErrNotFound)
	}
	return postgres.MapError(err, "inbox_item", id)
}

func toDomain(row itemRow) domain.InboxItem {
	return domain.InboxItem{
		ID:          row.ID,
		UserID:      row.UserID,
		OrgID:       row.OrgID,
		Content:     row.Content,
		ItemType:    domain.ItemType(row.ItemType),
		ChunkID:     row.ChunkID,
		Triaged:     row.Triaged,
		TriagedToID: row.TriagedToID,
		CreatedAt:   row.CreatedAt,
	}
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return "<none>"
	}
	return id.String()
}
