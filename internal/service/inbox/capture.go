package inbox

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// Capture creates a new untriaged, unchunked NOTE.
func (s *Service) Capture(ctx context.Context, input CaptureInput) (*domain.InboxItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxContentLength); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)

	if s.cfg.MaxInboxItems > 0 {
		count, err := s.items.CountUntriaged(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("count inbox items: %w", err)
		}
		if count >= s.cfg.MaxInboxItems {
			return nil, domain.NewBusinessRuleError(fmt.Sprintf("inbox is full (max %d untriaged items)", s.cfg.MaxInboxItems))
		}
	}

	item, err := s.items.Create(ctx, &domain.InboxItem{
		ID:        uuid.New(),
		UserID:    userID,
		OrgID:     ctxutil.OrgIDFromCtx(ctx),
		Content:   content,
		ItemType:  domain.ItemTypeNote,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create inbox item: %w", err)
	}

	preview := content
	if len(preview) > 50 {
		preview = preview[:50]
	}

	s.log.InfoContext(ctx, "inbox item captured",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("content", preview),
	)

	return item, nil
}
