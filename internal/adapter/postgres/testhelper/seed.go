package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedItem inserts an untriaged, unchunked NOTE for userID.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, content string) domain.InboxItem {
	t.Helper()

	item := domain.InboxItem{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		ItemType:  domain.ItemTypeNote,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO inbox_items (id, user_id, content, item_type, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.UserID, item.Content, string(item.ItemType), item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return item
}

// SeedChunk inserts an empty ACTIVE chunk for userID.
func SeedChunk(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Chunk {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	chunk := domain.Chunk{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Chunk " + uniqueSuffix(),
		Status:    domain.ChunkStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO chunks (id, user_id, name, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		chunk.ID, chunk.UserID, chunk.Name, string(chunk.Status), chunk.CreatedAt, chunk.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChunk: %v", err)
	}
	return chunk
}

// SeedChunkWithItems inserts a chunk with n member items whose sort_order
// runs 1..n. Both membership and the item back-reference are written.
func SeedChunkWithItems(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, n int) (domain.Chunk, []domain.InboxItem) {
	t.Helper()
	ctx := context.Background()

	chunk := SeedChunk(t, pool, userID)
	items := make([]domain.InboxItem, 0, n)

	for i := range n {
		item := SeedItem(t, pool, userID, "item "+uniqueSuffix())

		if _, err := pool.Exec(ctx,
			`INSERT INTO chunk_items (id, chunk_id, inbox_item_id, sort_order) VALUES ($1, $2, $3, $4)`,
			uuid.New(), chunk.ID, item.ID, i+1,
		); err != nil {
			t.Fatalf("testhelper: SeedChunkWithItems insert chunk_item: %v", err)
		}
		if _, err := pool.Exec(ctx,
			`UPDATE inbox_items SET chunk_id = $2 WHERE id = $1`, item.ID, chunk.ID,
		); err != nil {
			t.Fatalf("testhelper: SeedChunkWithItems set chunk_id: %v", err)
		}

		item.ChunkID = &chunk.ID
		items = append(items, item)
	}

	chunk.ItemCount = n
	return chunk, items
}

// SeedOutcome inserts an ACTIVE outcome. sourceChunkID may be nil.
func SeedOutcome(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, sourceChunkID *uuid.UUID) domain.Outcome {
	t.Helper()

	o := domain.Outcome{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         "Outcome " + uniqueSuffix(),
		Purpose:       "because",
		AreaID:        uuid.New(),
		Status:        domain.OutcomeStatusActive,
		SourceChunkID: sourceChunkID,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO outcomes (id, user_id, title, purpose, area_id, status, source_chunk_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		o.ID, o.UserID, o.Title, o.Purpose, o.AreaID, string(o.Status), o.SourceChunkID, o.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOutcome: %v", err)
	}
	return o
}
