package inbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// MarkTriaged resolves an item to an outcome. Repeating the call with the
// same outcome is a no-op; a different outcome is a conflict.
func (s *Service) MarkTriaged(ctx context.Context, input MarkTriagedInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Ownership check and row lock.
		if _, err := s.items.GetForUpdate(txCtx, userID, input.ItemID); err != nil {
			return fmt.Errorf("get inbox item: %w", err)
		}
		if err := s.items.MarkTriaged(txCtx, input.ItemID, input.OutcomeID); err != nil {
			return fmt.Errorf("mark triaged: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "inbox item triaged",
		slog.String("user_id", userID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.String("outcome_id", input.OutcomeID.String()),
	)
	return nil
}
