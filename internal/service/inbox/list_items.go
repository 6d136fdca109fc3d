package inbox

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// ListUntriaged returns a page of the user's untriaged items, newest first,
// and the total number of matches.
func (s *Service) ListUntriaged(ctx context.Context, input ListItemsInput) ([]domain.InboxItem, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	filter := domain.ItemFilter{
		ItemType: input.ItemType,
		Chunked:  input.Chunked,
		ChunkID:  input.ChunkID,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}
	if input.Search != nil {
		if q := domain.NormalizeText(*input.Search); q != "" {
			filter.Search = &q
		}
	}

	items, total, err := s.items.ListUntriaged(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list inbox items: %w", err)
	}

	return items, total, nil
}

// GetItem returns a single inbox item by ID.
func (s *Service) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InboxItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	item, err := s.items.GetByID(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get inbox item: %w", err)
	}

	return item, nil
}
