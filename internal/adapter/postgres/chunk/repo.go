// Package chunk implements the ChunkStore repository using PostgreSQL.
//
// Membership is stored twice: as chunk_items rows and as the
// inbox_items.chunk_id back-reference. Every method that changes one
// changes the other in the same statement batch; callers wrap them in a
// transaction via TxManager.
package chunk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/outcomes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// Repo provides chunk persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new chunk repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const chunkColumns = `c.id, c.user_id, c.org_id, c.name, c.description, c.color, c.status,
	c.converted_to_type, c.converted_to_id, c.converted_at, c.converted_token,
	c.conversion_token, c.conversion_step, c.conversion_request, c.pending_outcome_id, c.conversion_started_at,
	c.created_at, c.updated_at`

const itemCountColumn = `(SELECT count(*) FROM chunk_items ci WHERE ci.chunk_id = c.id) AS item_count`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + chunkColumns + `, ` + itemCountColumn + `
FROM chunks c WHERE c.id = $1 AND c.user_id = $2`

// GetByID returns a chunk with its member count.
// Returns domain.ErrNotFound if the chunk does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, chunkID uuid.UUID) (*domain.Chunk, error) {
	var row chunkRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, chunkID, userID); err != nil {
		return nil, mapError(err, "chunk", chunkID)
	}
	return row.toDomain()
}

const lockSQL = `SELECT ` + chunkColumns + ` FROM chunks c WHERE c.id = $1 FOR UPDATE`

// Lock returns the chunk with a row lock held until the surrounding
// transaction ends. Every membership or conversion change takes this lock
// first, which serializes writers per chunk. ItemCount is not populated.
func (r *Repo) Lock(ctx context.Context, chunkID uuid.UUID) (*domain.Chunk, error) {
	var row chunkRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, lockSQL, chunkID); err != nil {
		return nil, mapError(err, "chunk", chunkID)
	}
	return row.toDomain()
}

// List returns a user's chunks, newest first, with member counts.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ChunkFilter) ([]domain.Chunk, error) {
	sel := psql.Select(chunkColumns, itemCountColumn).
		From("chunks c").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC", "c.id")

	if filter.Status != nil {
		sel = sel.Where(sq.Eq{"c.status": string(*filter.Status)})
	}
	if filter.Converted != nil {
		if *filter.Converted {
			sel = sel.Where(sq.NotEq{"c.converted_to_id": nil})
		} else {
			sel = sel.Where(sq.Eq{"c.converted_to_id": nil})
		}
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list chunks: %w", err)
	}

	var rows []chunkRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}

	chunks := make([]domain.Chunk, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, *c)
	}
	return chunks, nil
}

const listStaleSQL = `SELECT ` + chunkColumns + ` FROM chunks c
WHERE c.conversion_token IS NOT NULL AND c.conversion_started_at < $1
ORDER BY c.conversion_started_at
LIMIT $2`

// ListStaleConversions returns chunks whose in-flight conversion marker was
// last touched before olderThan, across all users.
func (r *Repo) ListStaleConversions(ctx context.Context, olderThan time.Time, limit int) ([]domain.Chunk, error) {
	var rows []chunkRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listStaleSQL, olderThan, limit); err != nil {
		return nil, fmt.Errorf("list stale conversions: %w", err)
	}

	chunks := make([]domain.Chunk, 0, len(rows))
	for _, row := range rows {
		c, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, *c)
	}
	return chunks, nil
}

// ---------------------------------------------------------------------------
// Chunk writes
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO chunks AS c (id, user_id, org_id, name, description, color, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + chunkColumns

// Create inserts a new chunk.
func (r *Repo) Create(ctx context.Context, chunk *domain.Chunk) (*domain.Chunk, error) {
	var row chunkRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		chunk.ID, chunk.UserID, chunk.OrgID, chunk.Name, chunk.Description, chunk.Color,
		string(chunk.Status), chunk.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, "chunk", chunk.ID)
	}
	return row.toDomain()
}

// Update applies a partial update to name/description/color. Empty
// description or color clears the column.
func (r *Repo) Update(ctx context.Context, chunkID uuid.UUID, params domain.ChunkUpdateParams, now time.Time) error {
	upd := psql.Update("chunks").Set("updated_at", now).Where(sq.Eq{"id": chunkID})

	if params.Name != nil {
		upd = upd.Set("name", *params.Name)
	}
	if params.Description != nil {
		upd = upd.Set("description", nullIfEmpty(*params.Description))
	}
	if params.Color != nil {
		upd = upd.Set("color", nullIfEmpty(*params.Color))
	}

	return r.execUpdate(ctx, chunkID, upd)
}

// SetStatus sets the chunk's ACTIVE/ARCHIVED status.
func (r *Repo) SetStatus(ctx context.Context, chunkID uuid.UUID, status domain.ChunkStatus, now time.Time) error {
	upd := psql.Update("chunks").
		Set("status", string(status)).
		Set("updated_at", now).
		Where(sq.Eq{"id": chunkID})

	return r.execUpdate(ctx, chunkID, upd)
}

func (r *Repo) execUpdate(ctx context.Context, chunkID uuid.UUID, upd sq.UpdateBuilder) error {
	query, args, err := upd.ToSql()
	if err != nil {
		return fmt.Errorf("build update chunk: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "chunk", chunkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chunk %s: %w", chunkID, domain.ErrNotFound)
	}
	return nil
}

const deleteSQL = `DELETE FROM chunks WHERE id = $1 AND converted_to_id IS NULL AND conversion_token IS NULL`

// Delete removes an unconverted chunk. Members must be detached first with
// DetachAll; chunk_items rows cascade regardless.
func (r *Repo) Delete(ctx context.Context, chunkID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, chunkID)
	if err != nil {
		return mapError(err, "chunk", chunkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chunk %s: %w", chunkID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Membership
// ---------------------------------------------------------------------------

const memberColumns = `ci.id, ci.chunk_id, ci.inbox_item_id, ci.sort_order, ci.created_at,
	i.user_id, i.org_id, i.content, i.item_type, i.triaged, i.triaged_to_id, i.created_at AS item_created_at`

const listItemsSQL = `SELECT ` + memberColumns + `
FROM chunk_items ci JOIN inbox_items i ON i.id = ci.inbox_item_id
WHERE ci.chunk_id = $1
ORDER BY ci.sort_order`

// ListItems returns the chunk's members ordered by sort_order, with the
// inbox item populated.
func (r *Repo) ListItems(ctx context.Context, chunkID uuid.UUID) ([]domain.ChunkItem, error) {
	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listItemsSQL, chunkID); err != nil {
		return nil, fmt.Errorf("list chunk_items: %w", err)
	}

	items := make([]domain.ChunkItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

const getItemSQL = `SELECT ` + memberColumns + `
FROM chunk_items ci JOIN inbox_items i ON i.id = ci.inbox_item_id
WHERE ci.id = $1`

// GetItem returns a single membership row.
func (r *Repo) GetItem(ctx context.Context, chunkItemID uuid.UUID) (*domain.ChunkItem, error) {
	var row memberRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getItemSQL, chunkItemID); err != nil {
		return nil, mapError(err, "chunk_item", chunkItemID)
	}
	item := row.toDomain()
	return &item, nil
}

const addItemSQL = `
INSERT INTO chunk_items (id, chunk_id, inbox_item_id, sort_order, created_at)
SELECT $1, $2, $3, COALESCE(MAX(sort_order), 0) + 1, $4
FROM chunk_items WHERE chunk_id = $2
RETURNING sort_order`

const attachSQL = `UPDATE inbox_items SET chunk_id = $2 WHERE id = $1 AND chunk_id IS NULL AND NOT triaged`

// AddItem appends an item to the chunk with sort_order = max+1 and sets the
// item's chunk_id. The item must be loose: an item already in any chunk
// yields a *domain.ConflictError. Callers hold the chunk lock.
func (r *Repo) AddItem(ctx context.Context, chunkID, itemID uuid.UUID, now time.Time) (*domain.ChunkItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, attachSQL, itemID, chunkID)
	if err != nil {
		return nil, mapError(err, "inbox_item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewConflictError("inbox_item", itemID, "item is already in a chunk or triaged")
	}

	ci := &domain.ChunkItem{
		ID:          uuid.New(),
		ChunkID:     chunkID,
		InboxItemID: itemID,
		CreatedAt:   now,
	}
	if err := q.QueryRow(ctx, addItemSQL, ci.ID, chunkID, itemID, now).Scan(&ci.SortOrder); err != nil {
		if err = mapError(err, "chunk_item", ci.ID); isAlreadyExists(err) {
			return nil, domain.NewConflictError("inbox_item", itemID, "item is already in a chunk")
		}
		return nil, err
	}
	return ci, nil
}

const removeItemSQL = `DELETE FROM chunk_items WHERE id = $1 RETURNING inbox_item_id`

const detachSQL = `UPDATE inbox_items SET chunk_id = NULL WHERE id = $1`

// RemoveItem deletes a membership row and clears the item's chunk_id.
// Remaining sort_order values are left as they are.
func (r *Repo) RemoveItem(ctx context.Context, chunkItemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var itemID uuid.UUID
	if err := q.QueryRow(ctx, removeItemSQL, chunkItemID).Scan(&itemID); err != nil {
		return mapError(err, "chunk_item", chunkItemID)
	}
	if _, err := q.Exec(ctx, detachSQL, itemID); err != nil {
		return mapError(err, "inbox_item", itemID)
	}
	return nil
}

const detachItemSQL = `DELETE FROM chunk_items WHERE inbox_item_id = $1`

// DetachItem removes the membership of itemID, whichever chunk holds it, and
// clears the item's chunk_id. Detaching a loose item is a no-op.
func (r *Repo) DetachItem(ctx context.Context, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, detachItemSQL, itemID); err != nil {
		return mapError(err, "inbox_item", itemID)
	}
	if _, err := q.Exec(ctx, detachSQL, itemID); err != nil {
		return mapError(err, "inbox_item", itemID)
	}
	return nil
}

const detachAllSQL = `UPDATE inbox_items SET chunk_id = NULL WHERE chunk_id = $1`

const deleteItemsSQL = `DELETE FROM chunk_items WHERE chunk_id = $1`

// DetachAll removes every member of the chunk and clears their chunk_id.
// Returns the number of detached items.
func (r *Repo) DetachAll(ctx context.Context, chunkID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteItemsSQL, chunkID); err != nil {
		return 0, mapError(err, "chunk", chunkID)
	}
	tag, err := q.Exec(ctx, detachAllSQL, chunkID)
	if err != nil {
		return 0, mapError(err, "chunk", chunkID)
	}
	return int(tag.RowsAffected()), nil
}

const reorderSQL = `
UPDATE chunk_items ci SET sort_order = o.ord
FROM unnest($2::uuid[]) WITH ORDINALITY AS o(item_id, ord)
WHERE ci.chunk_id = $1 AND ci.inbox_item_id = o.item_id`

// Reorder rewrites sort_order so that orderedItemIDs[i] gets i+1. The caller
// verifies the id set equals current membership. The (chunk_id, sort_order)
// uniqueness check is deferred to commit, so swaps are allowed.
func (r *Repo) Reorder(ctx context.Context, chunkID uuid.UUID, orderedItemIDs []uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, reorderSQL, chunkID, orderedItemIDs)
	if err != nil {
		return mapError(err, "chunk", chunkID)
	}
	if int(tag.RowsAffected()) != len(orderedItemIDs) {
		return domain.NewConflictError("chunk", chunkID, "membership changed during reorder")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Conversion marker
// ---------------------------------------------------------------------------

const saveMarkerSQL = `
UPDATE chunks SET
	conversion_token = $3,
	conversion_step = $4,
	conversion_request = $5,
	pending_outcome_id = $6,
	conversion_started_at = $7,
	updated_at = $7
WHERE id = $1 AND conversion_token IS NOT DISTINCT FROM $2`

// SaveConversionMarker compare-and-swaps the in-flight conversion marker:
// the write succeeds only if the chunk's current token equals expected
// (nil meaning "no conversion in flight"). On mismatch it returns
// domain.ErrConversionInProgress.
func (r *Repo) SaveConversionMarker(ctx context.Context, chunkID uuid.UUID, expected *uuid.UUID, m domain.ConversionMarker) error {
	reqJSON, err := json.Marshal(m.Request)
	if err != nil {
		return fmt.Errorf("chunk %s marshal conversion request: %w", chunkID, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, saveMarkerSQL,
		chunkID, expected, m.Token, string(m.Step), reqJSON, m.OutcomeID, m.StartedAt,
	)
	if err != nil {
		return mapError(err, "chunk", chunkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chunk %s: %w", chunkID, domain.ErrConversionInProgress)
	}
	return nil
}

const markConvertedSQL = `
UPDATE chunks SET
	converted_to_type = $3,
	converted_to_id = $4,
	converted_at = $5,
	converted_token = $2,
	status = CASE WHEN $6 THEN 'ARCHIVED'::chunk_status ELSE status END,
	conversion_step = 'CHUNK_UPDATED',
	updated_at = $5
WHERE id = $1 AND conversion_token = $2 AND converted_to_id IS NULL`

// MarkConverted sets the converted triple in one statement, archives the
// chunk when archive is true and advances the cursor to CHUNK_UPDATED.
// The write is guarded by the conversion token.
func (r *Repo) MarkConverted(ctx context.Context, chunkID, token, outcomeID uuid.UUID, at time.Time, archive bool) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, markConvertedSQL,
		chunkID, token, string(domain.ConvertedToOutcome), outcomeID, at, archive,
	)
	if err != nil {
		return mapError(err, "chunk", chunkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chunk %s: %w", chunkID, domain.ErrConversionInProgress)
	}
	return nil
}

const clearMarkerSQL = `
UPDATE chunks SET
	conversion_token = NULL,
	conversion_step = NULL,
	conversion_request = NULL,
	pending_outcome_id = NULL,
	conversion_started_at = NULL
WHERE id = $1 AND conversion_token = $2`

// ClearConversionMarker removes the in-flight marker held by token.
func (r *Repo) ClearConversionMarker(ctx context.Context, chunkID, token uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, clearMarkerSQL, chunkID, token)
	if err != nil {
		return mapError(err, "chunk", chunkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chunk %s: %w", chunkID, domain.ErrConversionInProgress)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapError(err error, entity string, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return postgres.MapError(err, entity, id)
}

func isAlreadyExists(err error) bool {
	return errors.Is(err, domain.ErrAlreadyExists)
}
