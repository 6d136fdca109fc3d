package chunk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// AddItem appends a loose item to the chunk with sort_order max+1. An item
// that already belongs to a chunk is a conflict; it must be removed first.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.ChunkItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var ci *domain.ChunkItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		ci, err = s.addLocked(txCtx, userID, input.ChunkID, input.ItemID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item added to chunk",
		slog.String("user_id", userID.String()),
		slog.String("chunk_id", input.ChunkID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.Int("sort_order", ci.SortOrder),
	)

	return ci, nil
}

// addLocked runs inside a transaction.
func (s *Service) addLocked(ctx context.Context, userID, chunkID, itemID uuid.UUID) (*domain.ChunkItem, error) {
	if _, err := s.lockMutable(ctx, userID, chunkID); err != nil {
		return nil, err
	}

	members, err := s.chunks.ListItems(ctx, chunkID)
	if err != nil {
		return nil, fmt.Errorf("list chunk items: %w", err)
	}

	ci, err := s.attach(ctx, userID, chunkID, itemID, len(members))
	if err != nil {
		return nil, err
	}

	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeChunk,
		EntityID:   &chunkID,
		Action:     domain.AuditActionUpdate,
		Changes: map[string]any{
			"added_item": map[string]any{"item_id": itemID.String(), "sort_order": ci.SortOrder},
		},
	}); err != nil {
		return nil, fmt.Errorf("audit log: %w", err)
	}

	return ci, nil
}
