package conversion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// GetStatus reports whether a chunk is converted or has a conversion in
// flight, and where the cursor stands.
func (s *Service) GetStatus(ctx context.Context, chunkID uuid.UUID) (*domain.ConversionStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	chunk, err := s.chunks.GetByID(ctx, userID, chunkID)
	if err != nil {
		return nil, fmt.Errorf("get chunk: %w", err)
	}

	st := &domain.ConversionStatus{
		ChunkID:     chunk.ID,
		Converted:   chunk.IsConverted(),
		OutcomeID:   chunk.ConvertedToID,
		ConvertedAt: chunk.ConvertedAt,
	}
	if m := chunk.Conversion; m != nil {
		token := m.Token
		startedAt := m.StartedAt
		st.InFlight = true
		st.Step = m.Step
		st.Token = &token
		st.StartedAt = &startedAt
		if st.OutcomeID == nil {
			st.OutcomeID = m.OutcomeID
		}
	} else if st.Converted {
		st.Step = domain.ConversionStepDone
	}

	return st, nil
}

// ReconcileReport summarizes one ResumeStale pass.
type ReconcileReport struct {
	Found     int
	Completed int
	Failed    int
}

// ResumeStale finishes conversions whose marker has not moved for
// StaleAfter. It is meant for a periodic job and runs without a user in
// context; each chunk is resumed on behalf of its owner under a new token.
func (s *Service) ResumeStale(ctx context.Context, limit int) (ReconcileReport, error) {
	var report ReconcileReport

	olderThan := s.now().Add(-s.cfg.StaleAfter)
	stale, err := s.chunks.ListStaleConversions(ctx, olderThan, limit)
	if err != nil {
		return report, fmt.Errorf("list stale conversions: %w", err)
	}
	report.Found = len(stale)

	for _, c := range stale {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		start := time.Now()
		r := &run{userID: c.UserID, chunkID: c.ID}
		claim := func(txCtx context.Context) error {
			chunk, err := s.chunks.Lock(txCtx, c.ID)
			if err != nil {
				return fmt.Errorf("lock chunk: %w", err)
			}
			if chunk.Conversion == nil || !s.isStale(chunk.Conversion) {
				// finished or picked up since listing
				r.replayed = &domain.ConversionResult{ChunkID: c.ID, AlreadyConverted: true}
				return nil
			}
			r.replayed = nil
			return s.takeOver(txCtx, r, chunk.Conversion, uuid.New())
		}

		if err := s.execute(ctx, r, claim); err != nil {
			report.Failed++
			s.log.ErrorContext(ctx, "resume stale conversion failed",
				slog.String("chunk_id", c.ID.String()),
				slog.String("user_id", c.UserID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if r.replayed != nil {
			continue
		}

		report.Completed++
		s.log.InfoContext(ctx, "stale conversion completed",
			slog.String("chunk_id", c.ID.String()),
			slog.String("user_id", c.UserID.String()),
			slog.String("outcome_id", r.marker.OutcomeID.String()),
			slog.Duration("took", time.Since(start)),
		)
	}

	return report, nil
}
