package chunk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// RemoveItem deletes a membership row and clears the item's chunk_id.
// Sort orders of the remaining members are left as they are.
func (s *Service) RemoveItem(ctx context.Context, chunkItemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if chunkItemID == uuid.Nil {
		return domain.NewValidationError("chunk_item_id", "required")
	}

	var removed *domain.ChunkItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ci, err := s.chunks.GetItem(txCtx, chunkItemID)
		if err != nil {
			return fmt.Errorf("get chunk item: %w", err)
		}
		if ci.Item == nil || ci.Item.UserID != userID {
			return fmt.Errorf("chunk_item %s: %w", chunkItemID, domain.ErrNotFound)
		}

		if _, err := s.lockMutable(txCtx, userID, ci.ChunkID); err != nil {
			return err
		}

		if err := s.chunks.RemoveItem(txCtx, chunkItemID); err != nil {
			return fmt.Errorf("remove chunk item: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeChunk,
			EntityID:   &ci.ChunkID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"removed_item": map[string]any{"item_id": ci.InboxItemID.String(), "sort_order": ci.SortOrder},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		removed = ci
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item removed from chunk",
		slog.String("user_id", userID.String()),
		slog.String("chunk_id", removed.ChunkID.String()),
		slog.String("item_id", removed.InboxItemID.String()),
	)

	return nil
}
