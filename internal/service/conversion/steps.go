package conversion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// steps advances r from its current cursor to DONE, one transaction per
// step. r.marker is updated only after a step commits.
func (s *Service) steps(ctx context.Context, r *run) error {
	for r.marker.Step != domain.ConversionStepDone {
		var next domain.ConversionMarker
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var err error
			next, err = s.advance(txCtx, r)
			return err
		})
		if err != nil {
			return fmt.Errorf("conversion step after %s: %w", r.marker.Step, err)
		}

		s.log.DebugContext(ctx, "conversion step committed",
			slog.String("chunk_id", r.chunkID.String()),
			slog.String("step", next.Step.String()),
		)
		r.marker = next
	}
	return nil
}

// advance performs the step that follows the cursor committed on the chunk
// and returns the marker as committed. The committed cursor wins over
// r.marker: another run holding the same token may have moved it. It must
// not mutate r; the transaction may be retried.
func (s *Service) advance(ctx context.Context, r *run) (domain.ConversionMarker, error) {
	chunk, err := s.chunks.Lock(ctx, r.chunkID)
	if err != nil {
		return domain.ConversionMarker{}, fmt.Errorf("lock chunk: %w", err)
	}

	if chunk.Conversion == nil {
		if chunk.IsConverted() && chunk.ConvertedToken != nil && *chunk.ConvertedToken == r.marker.Token {
			done := r.marker
			done.OutcomeID = chunk.ConvertedToID
			done.Step = domain.ConversionStepDone
			return done, nil
		}
		return domain.ConversionMarker{}, fmt.Errorf("chunk %s marker lost: %w", r.chunkID, domain.ErrConversionInProgress)
	}
	if chunk.Conversion.Token != r.marker.Token {
		return domain.ConversionMarker{}, fmt.Errorf("chunk %s marker lost: %w", r.chunkID, domain.ErrConversionInProgress)
	}

	cur := *r
	cur.marker = *chunk.Conversion
	if cur.marker.Step != r.marker.Step {
		s.log.DebugContext(ctx, "conversion cursor moved by another run",
			slog.String("chunk_id", r.chunkID.String()),
			slog.String("expected", r.marker.Step.String()),
			slog.String("committed", cur.marker.Step.String()),
		)
	}

	next := cur.marker
	next.StartedAt = s.now()

	switch cur.marker.Step {
	case domain.ConversionStepPending:
		outcomeID, err := s.createOutcome(ctx, &cur)
		if err != nil {
			return next, err
		}
		next.OutcomeID = &outcomeID
		next.Step = domain.ConversionStepOutcomeCreated

	case domain.ConversionStepOutcomeCreated:
		if cur.marker.Request.AutoCreateActions {
			if err := s.createActions(ctx, &cur); err != nil {
				return next, err
			}
		}
		next.Step = domain.ConversionStepActionsCreated

	case domain.ConversionStepActionsCreated:
		if err := s.markConverted(ctx, &cur); err != nil {
			return next, err
		}
		// MarkConverted moves the cursor itself.
		next.Step = domain.ConversionStepChunkUpdated
		return next, nil

	case domain.ConversionStepChunkUpdated:
		if err := s.triageItems(ctx, &cur); err != nil {
			return next, err
		}
		next.Step = domain.ConversionStepItemsTriaged

	case domain.ConversionStepItemsTriaged:
		if err := s.chunks.ClearConversionMarker(ctx, cur.chunkID, cur.marker.Token); err != nil {
			return next, fmt.Errorf("clear conversion marker: %w", err)
		}
		next.Step = domain.ConversionStepDone
		return next, nil

	default:
		return next, fmt.Errorf("unknown conversion step %q", cur.marker.Step)
	}

	if err := s.chunks.SaveConversionMarker(ctx, cur.chunkID, &cur.marker.Token, next); err != nil {
		return next, fmt.Errorf("save conversion marker: %w", err)
	}
	return next, nil
}

// createOutcome is step 1. An outcome that already points at the chunk is
// adopted instead of duplicated.
func (s *Service) createOutcome(ctx context.Context, r *run) (uuid.UUID, error) {
	req := r.marker.Request
	created, err := s.outcomes.Create(ctx, &domain.Outcome{
		ID:            uuid.New(),
		UserID:        r.userID,
		Title:         req.Title,
		Purpose:       req.Purpose,
		Description:   req.Description,
		AreaID:        req.AreaID,
		GoalID:        req.GoalID,
		Status:        domain.OutcomeStatusActive,
		SourceChunkID: &r.chunkID,
		CreatedAt:     s.now(),
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		existing, getErr := s.outcomes.GetBySourceChunk(ctx, r.chunkID)
		if getErr != nil {
			return uuid.Nil, fmt.Errorf("get outcome by source chunk: %w", getErr)
		}
		s.log.WarnContext(ctx, "adopting existing outcome for chunk",
			slog.String("chunk_id", r.chunkID.String()),
			slog.String("outcome_id", existing.ID.String()),
		)
		return existing.ID, nil
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("create outcome: %w", err)
	}

	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     r.userID,
		EntityType: domain.EntityTypeOutcome,
		EntityID:   &created.ID,
		Action:     domain.AuditActionCreate,
		Changes: map[string]any{
			"title":           created.Title,
			"source_chunk_id": r.chunkID.String(),
		},
	}); err != nil {
		return uuid.Nil, fmt.Errorf("audit log: %w", err)
	}

	return created.ID, nil
}

// createActions is step 2. Actions mirror chunk order; sort_order is the
// zero-based position of the item in the chunk.
func (s *Service) createActions(ctx context.Context, r *run) error {
	members, err := s.chunks.ListItems(ctx, r.chunkID)
	if err != nil {
		return fmt.Errorf("list chunk items: %w", err)
	}

	outcomeID := *r.marker.OutcomeID
	now := s.now()
	actions := make([]domain.Action, 0, len(members))
	for i, m := range members {
		if m.Item == nil {
			return fmt.Errorf("chunk item %s loaded without its inbox item", m.ID)
		}
		srcID := m.ID
		actions = append(actions, domain.Action{
			ID:                uuid.New(),
			OutcomeID:         outcomeID,
			Title:             m.Item.Content,
			SourceChunkItemID: &srcID,
			SortOrder:         i,
			Priority:          domain.ActionPriority(s.cfg.DefaultActionPriority),
			DurationMinutes:   s.cfg.DefaultActionDurationMin,
			CreatedAt:         now,
		})
	}

	if err := s.outcomes.CreateActions(ctx, actions); err != nil {
		return fmt.Errorf("create actions: %w", err)
	}
	return nil
}

// markConverted is step 3.
func (s *Service) markConverted(ctx context.Context, r *run) error {
	outcomeID := *r.marker.OutcomeID
	archive := r.marker.Request.ArchiveAfter

	if err := s.chunks.MarkConverted(ctx, r.chunkID, r.marker.Token, outcomeID, s.now(), archive); err != nil {
		return fmt.Errorf("mark chunk converted: %w", err)
	}

	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     r.userID,
		EntityType: domain.EntityTypeChunk,
		EntityID:   &r.chunkID,
		Action:     domain.AuditActionConvert,
		Changes: map[string]any{
			"outcome_id": outcomeID.String(),
			"token":      r.marker.Token.String(),
			"archived":   archive,
		},
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

// triageItems is step 4.
func (s *Service) triageItems(ctx context.Context, r *run) error {
	members, err := s.chunks.ListItems(ctx, r.chunkID)
	if err != nil {
		return fmt.Errorf("list chunk items: %w", err)
	}

	outcomeID := *r.marker.OutcomeID
	for _, m := range members {
		if err := s.items.MarkTriaged(ctx, m.InboxItemID, outcomeID); err != nil {
			return fmt.Errorf("mark item %s triaged: %w", m.InboxItemID, err)
		}
	}
	return nil
}
