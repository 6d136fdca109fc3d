package chunk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// CreateChunk creates an ACTIVE chunk, optionally pre-populated with loose
// items in the given order. Either every item is attached or none is.
func (s *Service) CreateChunk(ctx context.Context, input CreateChunkInput) (*domain.ChunkWithItems, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	var result *domain.ChunkWithItems

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.chunks.Create(txCtx, &domain.Chunk{
			ID:          uuid.New(),
			UserID:      userID,
			OrgID:       ctxutil.OrgIDFromCtx(ctx),
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
			Color:       trimOrNil(input.Color),
			Status:      domain.ChunkStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create chunk: %w", err)
		}

		// The new row is invisible to other transactions until commit, so
		// no chunk lock is needed while attaching.
		members := make([]domain.ChunkItem, 0, len(input.ItemIDs))
		for _, itemID := range input.ItemIDs {
			ci, err := s.attach(txCtx, userID, created.ID, itemID, len(members))
			if err != nil {
				return err
			}
			members = append(members, *ci)
		}
		created.ItemCount = len(members)

		changes := map[string]any{"name": created.Name}
		if len(input.ItemIDs) > 0 {
			changes["item_ids"] = idStrings(input.ItemIDs)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeChunk,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		result = &domain.ChunkWithItems{Chunk: *created, Items: members}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "chunk created",
		slog.String("user_id", userID.String()),
		slog.String("chunk_id", result.ID.String()),
		slog.String("name", result.Name),
		slog.Int("items", len(result.Items)),
	)

	return result, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
