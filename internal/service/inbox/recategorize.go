package inbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// Recategorize changes the type of an untriaged item. Items that sit in a
// chunk must be removed from it first.
func (s *Service) Recategorize(ctx context.Context, input RecategorizeInput) (*domain.InboxItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.InboxItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetForUpdate(txCtx, userID, input.ItemID)
		if err != nil {
			return fmt.Errorf("get inbox item: %w", err)
		}

		if item.Triaged {
			return domain.NewConflictError("inbox_item", item.ID, "item is already triaged")
		}
		if item.IsChunked() {
			return domain.NewConflictError("inbox_item", item.ID, "remove the item from its chunk first")
		}
		if item.ItemType == input.ItemType {
			updated = item
			return nil
		}

		updated, err = s.items.UpdateType(txCtx, userID, item.ID, input.ItemType)
		if err != nil {
			return fmt.Errorf("update inbox item type: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeInboxItem,
			EntityID:   &item.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"item_type": map[string]any{"old": item.ItemType, "new": input.ItemType},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "inbox item recategorized",
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.String("item_type", input.ItemType.String()),
	)

	return updated, nil
}
