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

// UpdateChunk applies a partial update to the chunk's name, color and
// description. Converted chunks reject it with ErrConversionLocked.
func (s *Service) UpdateChunk(ctx context.Context, input UpdateChunkInput) (*domain.Chunk, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Chunk
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.lockMutable(txCtx, userID, input.ChunkID)
		if err != nil {
			return err
		}

		params := domain.ChunkUpdateParams{
			Name:        trimmed(input.Name),
			Color:       trimmed(input.Color),
			Description: trimmed(input.Description),
		}
		if err := s.chunks.Update(txCtx, input.ChunkID, params, s.now()); err != nil {
			return fmt.Errorf("update chunk: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeChunk,
			EntityID:   &input.ChunkID,
			Action:     domain.AuditActionUpdate,
			Changes:    updateChanges(old, params),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		updated, err = s.chunks.GetByID(txCtx, userID, input.ChunkID)
		if err != nil {
			return fmt.Errorf("reload chunk: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "chunk updated",
		slog.String("user_id", userID.String()),
		slog.String("chunk_id", input.ChunkID.String()),
	)

	return updated, nil
}

// ArchiveChunk sets the chunk status to ARCHIVED. Allowed on converted chunks.
func (s *Service) ArchiveChunk(ctx context.Context, chunkID uuid.UUID) (*domain.Chunk, error) {
	return s.setStatus(ctx, chunkID, domain.ChunkStatusArchived)
}

// UnarchiveChunk sets the chunk status back to ACTIVE.
func (s *Service) UnarchiveChunk(ctx context.Context, chunkID uuid.UUID) (*domain.Chunk, error) {
	return s.setStatus(ctx, chunkID, domain.ChunkStatusActive)
}

func (s *Service) setStatus(ctx context.Context, chunkID uuid.UUID, status domain.ChunkStatus) (*domain.Chunk, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Chunk
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.lockOwned(txCtx, userID, chunkID)
		if err != nil {
			return err
		}

		if c.Status != status {
			if err := s.chunks.SetStatus(txCtx, chunkID, status, s.now()); err != nil {
				return fmt.Errorf("set chunk status: %w", err)
			}
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeChunk,
				EntityID:   &chunkID,
				Action:     domain.AuditActionUpdate,
				Changes: map[string]any{
					"status": map[string]any{"old": c.Status, "new": status},
				},
			}); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}

		updated, err = s.chunks.GetByID(txCtx, userID, chunkID)
		if err != nil {
			return fmt.Errorf("reload chunk: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "chunk status set",
		slog.String("user_id", userID.String()),
		slog.String("chunk_id", chunkID.String()),
		slog.String("status", status.String()),
	)

	return updated, nil
}

// trimmed keeps nil as nil and trims everything else, so "" stays a clear.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func updateChanges(old *domain.Chunk, p domain.ChunkUpdateParams) map[string]any {
	changes := make(map[string]any)
	if p.Name != nil {
		changes["name"] = map[string]any{"old": old.Name, "new": *p.Name}
	}
	if p.Color != nil {
		changes["color"] = map[string]any{"old": old.Color, "new": *p.Color}
	}
	if p.Description != nil {
		changes["description"] = map[string]any{"old": old.Description, "new": *p.Description}
	}
	return changes
}
