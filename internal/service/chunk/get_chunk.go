package chunk

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// GetChunk returns a chunk with its items ordered by sort_order.
func (s *Service) GetChunk(ctx context.Context, chunkID uuid.UUID) (*domain.ChunkWithItems, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.chunks.GetByID(ctx, userID, chunkID)
	if err != nil {
		return nil, fmt.Errorf("get chunk: %w", err)
	}

	items, err := s.chunks.ListItems(ctx, chunkID)
	if err != nil {
		return nil, fmt.Errorf("list chunk items: %w", err)
	}

	return &domain.ChunkWithItems{Chunk: *c, Items: items}, nil
}

// ListChunks returns the user's chunks, newest first.
func (s *Service) ListChunks(ctx context.Context, input ListChunksInput) ([]domain.Chunk, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	chunks, err := s.chunks.List(ctx, userID, domain.ChunkFilter{
		Status:    input.Status,
		Converted: input.Converted,
	})
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}

	return chunks, nil
}
