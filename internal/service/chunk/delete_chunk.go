package chunk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// DeleteChunk detaches every member item and removes the chunk. Converted
// chunks must be archived instead.
func (s *Service) DeleteChunk(ctx context.Context, chunkID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var detached int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.lockMutable(txCtx, userID, chunkID)
		if err != nil {
			return err
		}

		detached, err = s.chunks.DetachAll(txCtx, chunkID)
		if err != nil {
			return fmt.Errorf("detach chunk items: %w", err)
		}

		if err := s.chunks.Delete(txCtx, chunkID); err != nil {
			return fmt.Errorf("delete chunk: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeChunk,
			EntityID:   &chunkID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name":           c.Name,
				"detached_items": detached,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "chunk deleted",
		slog.String("user_id", userID.String()),
		slog.String("chunk_id", chunkID.String()),
		slog.Int("detached_items", detached),
	)

	return nil
}
