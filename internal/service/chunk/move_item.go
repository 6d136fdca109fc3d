package chunk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// MoveItem moves an item into another chunk as detach-then-attach in two
// transactions. If the attach fails the item is left loose, never in two
// chunks.
func (s *Service) MoveItem(ctx context.Context, input MoveItemInput) (*domain.ChunkItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	target, err := s.chunks.GetByID(ctx, userID, input.ToChunkID)
	if err != nil {
		return nil, fmt.Errorf("get target chunk: %w", err)
	}
	if target.IsLocked() {
		return nil, domain.ErrConversionLocked
	}

	item, err := s.items.GetByID(ctx, userID, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get inbox item: %w", err)
	}

	if item.ChunkID != nil && *item.ChunkID == input.ToChunkID {
		return s.findMember(ctx, input.ToChunkID, input.ItemID)
	}

	if item.ChunkID != nil {
		if err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			return s.detachLocked(txCtx, userID, *item.ChunkID, input.ItemID)
		}); err != nil {
			return nil, err
		}
	}

	var ci *domain.ChunkItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		ci, err = s.addLocked(txCtx, userID, input.ToChunkID, input.ItemID)
		return err
	})
	if err != nil {
		if item.ChunkID != nil {
			s.log.WarnContext(ctx, "item left unchunked after failed move",
				slog.String("user_id", userID.String()),
				slog.String("item_id", input.ItemID.String()),
				slog.String("from_chunk_id", item.ChunkID.String()),
				slog.String("to_chunk_id", input.ToChunkID.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.String("to_chunk_id", input.ToChunkID.String()),
	}
	if item.ChunkID != nil {
		attrs = append(attrs, slog.String("from_chunk_id", item.ChunkID.String()))
	}
	s.log.InfoContext(ctx, "item moved", attrs...)

	return ci, nil
}

// detachLocked runs inside a transaction.
func (s *Service) detachLocked(ctx context.Context, userID, chunkID, itemID uuid.UUID) error {
	if _, err := s.lockMutable(ctx, userID, chunkID); err != nil {
		return err
	}

	item, err := s.items.GetForUpdate(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("get inbox item: %w", err)
	}
	if item.ChunkID == nil || *item.ChunkID != chunkID {
		return domain.NewConflictError("inbox_item", itemID, "item moved concurrently, retry")
	}

	if err := s.chunks.DetachItem(ctx, itemID); err != nil {
		return fmt.Errorf("detach item: %w", err)
	}

	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeChunk,
		EntityID:   &chunkID,
		Action:     domain.AuditActionUpdate,
		Changes: map[string]any{
			"removed_item": map[string]any{"item_id": itemID.String()},
		},
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func (s *Service) findMember(ctx context.Context, chunkID, itemID uuid.UUID) (*domain.ChunkItem, error) {
	members, err := s.chunks.ListItems(ctx, chunkID)
	if err != nil {
		return nil, fmt.Errorf("list chunk items: %w", err)
	}
	for i := range members {
		if members[i].InboxItemID == itemID {
			return &members[i], nil
		}
	}
	return nil, domain.NewConflictError("inbox_item", itemID, "item moved concurrently, retry")
}
