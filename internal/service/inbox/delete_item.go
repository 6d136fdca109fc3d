package inbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// DeleteItem hard-deletes an untriaged item. A chunk member is detached
// from its chunk in the same transaction.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}

	var detachedFrom *uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Peek without a lock so the chunk lock can be taken before the
		// item lock, the same order membership edits use.
		peek, err := s.items.GetByID(txCtx, userID, itemID)
		if err != nil {
			return fmt.Errorf("get inbox item: %w", err)
		}
		if peek.ChunkID != nil {
			chunk, err := s.chunks.Lock(txCtx, *peek.ChunkID)
			if err != nil {
				return fmt.Errorf("lock chunk: %w", err)
			}
			if chunk.IsLocked() {
				return domain.ErrConversionLocked
			}
		}

		item, err := s.items.GetForUpdate(txCtx, userID, itemID)
		if err != nil {
			return fmt.Errorf("get inbox item: %w", err)
		}
		if item.Triaged {
			return domain.NewConflictError("inbox_item", item.ID, "triaged items cannot be deleted")
		}
		if !sameChunk(peek.ChunkID, item.ChunkID) {
			return domain.NewConflictError("inbox_item", item.ID, "item moved while deleting, retry")
		}

		if item.ChunkID != nil {
			if err := s.chunks.DetachItem(txCtx, item.ID); err != nil {
				return fmt.Errorf("detach from chunk: %w", err)
			}
			detachedFrom = item.ChunkID
		}

		if err := s.items.Delete(txCtx, userID, item.ID); err != nil {
			return fmt.Errorf("delete inbox item: %w", err)
		}

		changes := map[string]any{"content": item.Content}
		if detachedFrom != nil {
			changes["chunk_id"] = detachedFrom.String()
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeInboxItem,
			EntityID:   &item.ID,
			Action:     domain.AuditActionDelete,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.String("item_id", itemID.String()),
	}
	if detachedFrom != nil {
		attrs = append(attrs, slog.String("chunk_id", detachedFrom.String()))
	}
	s.log.InfoContext(ctx, "inbox item deleted", attrs...)

	return nil
}

func sameChunk(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
