package chunk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// Reorder rewrites sort_order so that input.ItemIDs[i] gets i+1. The id set
// must equal the chunk's current membership exactly.
func (s *Service) Reorder(ctx context.Context, input ReorderInput) ([]domain.ChunkItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var items []domain.ChunkItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lockMutable(txCtx, userID, input.ChunkID); err != nil {
			return err
		}

		current, err := s.chunks.ListItems(txCtx, input.ChunkID)
		if err != nil {
			return fmt.Errorf("list chunk items: %w", err)
		}
		if err := sameMembers(current, input.ItemIDs); err != nil {
			return err
		}

		if len(input.ItemIDs) > 0 {
			if err := s.chunks.Reorder(txCtx, input.ChunkID, input.ItemIDs); err != nil {
				return fmt.Errorf("reorder chunk: %w", err)
			}
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeChunk,
			EntityID:   &input.ChunkID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"order": map[string]any{"old": memberIDs(current), "new": idStrings(input.ItemIDs)},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		items, err = s.chunks.ListItems(txCtx, input.ChunkID)
		if err != nil {
			return fmt.Errorf("list chunk items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "chunk reordered",
		slog.String("user_id", userID.String()),
		slog.String("chunk_id", input.ChunkID.String()),
		slog.Int("items", len(items)),
	)

	return items, nil
}

// sameMembers rejects partial reorders and unknown ids. ids is already
// known to be duplicate-free.
func sameMembers(current []domain.ChunkItem, ids []uuid.UUID) error {
	if len(current) != len(ids) {
		return domain.NewValidationError("item_ids",
			fmt.Sprintf("must list all %d chunk items, got %d", len(current), len(ids)))
	}
	members := make(map[uuid.UUID]struct{}, len(current))
	for _, ci := range current {
		members[ci.InboxItemID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := members[id]; !ok {
			return domain.NewValidationError("item_ids", fmt.Sprintf("item %s is not in the chunk", id))
		}
	}
	return nil
}

func memberIDs(items []domain.ChunkItem) []string {
	out := make([]string, len(items))
	for i, ci := range items {
		out[i] = ci.InboxItemID.String()
	}
	return out
}
