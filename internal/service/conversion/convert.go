package conversion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// Convert converts a chunk into an outcome.
//
// Outcomes:
//   - success: the result with the new outcome id and created action ids.
//   - the chunk was already converted by this token, or the caller sent no
//     token: the original result with AlreadyConverted set.
//   - the chunk was converted under another explicit token:
//     *domain.ConversionConflictError.
//   - another conversion is in flight: domain.ErrConversionInProgress.
//   - failure after the outcome was created: *domain.ConversionIncompleteError;
//     retrying with the same token resumes.
func (s *Service) Convert(ctx context.Context, input ConvertInput) (*domain.ConversionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	pref := s.loadPreference(ctx, userID)
	autoCreate := pref.AutoCreateActionsFromChunks
	if input.AutoCreateActions != nil {
		autoCreate = *input.AutoCreateActions
	}
	hint := pref.DefaultPostConversionAction
	if input.PostConversionAction != nil {
		hint = *input.PostConversionAction
	}

	token := uuid.New()
	if input.Token != nil {
		token = *input.Token
	}
	req := input.request(autoCreate)

	r := &run{userID: userID, chunkID: input.ChunkID}
	claim := func(txCtx context.Context) error {
		return s.claim(txCtx, r, token, input.Token != nil, &req)
	}

	if err := s.execute(ctx, r, claim); err != nil {
		return nil, err
	}

	result, err := s.finish(ctx, r, hint)
	if err != nil {
		return nil, err
	}

	if input.RememberDefaults && !result.AlreadyConverted {
		s.savePreference(ctx, domain.UserPreference{
			UserID:                      userID,
			AutoCreateActionsFromChunks: autoCreate,
			DefaultPostConversionAction: hint,
		})
	}

	return result, nil
}

// Resume continues an in-flight conversion started with token, using the
// request persisted when it was claimed. A chunk already converted with the
// same token replays the result.
func (s *Service) Resume(ctx context.Context, chunkID, token uuid.UUID) (*domain.ConversionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if chunkID == uuid.Nil || token == uuid.Nil {
		return nil, domain.NewValidationError("token", "chunk id and token are required")
	}

	r := &run{userID: userID, chunkID: chunkID}
	claim := func(txCtx context.Context) error {
		return s.claim(txCtx, r, token, true, nil)
	}

	if err := s.execute(ctx, r, claim); err != nil {
		return nil, err
	}

	return s.finish(ctx, r, s.loadPreference(ctx, userID).DefaultPostConversionAction)
}

// claim takes the chunk lock and decides what this call does: start a new
// conversion, resume or take over an in-flight one, or replay a finished
// one. req is nil for resume-only calls.
func (s *Service) claim(ctx context.Context, r *run, token uuid.UUID, explicitToken bool, req *domain.ConversionRequest) error {
	chunk, err := s.chunks.Lock(ctx, r.chunkID)
	if err != nil {
		return fmt.Errorf("lock chunk: %w", err)
	}
	if chunk.UserID != r.userID {
		return fmt.Errorf("chunk %s: %w", r.chunkID, domain.ErrNotFound)
	}

	r.replayed = nil

	if m := chunk.Conversion; m != nil {
		switch {
		case m.Token == token:
			r.marker = *m
			return nil
		case s.isStale(m):
			return s.takeOver(ctx, r, m, token)
		default:
			return fmt.Errorf("chunk %s: %w", r.chunkID, domain.ErrConversionInProgress)
		}
	}

	if chunk.IsConverted() {
		sameToken := chunk.ConvertedToken != nil && *chunk.ConvertedToken == token
		if explicitToken && !sameToken {
			return &domain.ConversionConflictError{ChunkID: chunk.ID, OutcomeID: *chunk.ConvertedToID}
		}
		r.replayed = &domain.ConversionResult{
			OutcomeID:        *chunk.ConvertedToID,
			ChunkID:          chunk.ID,
			AlreadyConverted: true,
		}
		return nil
	}

	if req == nil {
		return fmt.Errorf("no conversion with token %s on chunk %s: %w", token, r.chunkID, domain.ErrNotFound)
	}

	members, err := s.chunks.ListItems(ctx, r.chunkID)
	if err != nil {
		return fmt.Errorf("list chunk items: %w", err)
	}
	if len(members) == 0 {
		return domain.NewBusinessRuleError("cannot convert an empty chunk")
	}

	marker := domain.ConversionMarker{
		Token:     token,
		Step:      domain.ConversionStepPending,
		Request:   *req,
		StartedAt: s.now(),
	}
	if err := s.chunks.SaveConversionMarker(ctx, r.chunkID, nil, marker); err != nil {
		return fmt.Errorf("claim chunk: %w", err)
	}
	r.marker = marker

	s.log.DebugContext(ctx, "conversion claimed",
		slog.String("chunk_id", r.chunkID.String()),
		slog.String("token", token.String()),
		slog.Int("items", len(members)),
	)
	return nil
}

// takeOver swaps the token of a stale marker, keeping its request, cursor
// and outcome id.
func (s *Service) takeOver(ctx context.Context, r *run, stale *domain.ConversionMarker, token uuid.UUID) error {
	marker := *stale
	marker.Token = token
	marker.StartedAt = s.now()

	if err := s.chunks.SaveConversionMarker(ctx, r.chunkID, &stale.Token, marker); err != nil {
		return fmt.Errorf("take over conversion: %w", err)
	}
	r.marker = marker

	s.log.WarnContext(ctx, "stale conversion taken over",
		slog.String("chunk_id", r.chunkID.String()),
		slog.String("old_token", stale.Token.String()),
		slog.String("token", token.String()),
		slog.String("step", stale.Step.String()),
	)
	return nil
}

func (s *Service) isStale(m *domain.ConversionMarker) bool {
	return s.now().Sub(m.StartedAt) >= s.cfg.StaleAfter
}

// execute claims and then runs the remaining steps.
func (s *Service) execute(ctx context.Context, r *run, claim func(context.Context) error) error {
	if s.cfg.SingleTransaction {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := claim(txCtx); err != nil {
				return err
			}
			if r.replayed != nil {
				return nil
			}
			return s.steps(txCtx, r)
		})
	}

	if err := s.tx.RunInTx(ctx, claim); err != nil {
		return err
	}
	if r.replayed != nil {
		return nil
	}

	err := s.steps(ctx, r)
	if err == nil {
		return nil
	}

	if r.marker.OutcomeID == nil {
		s.release(ctx, r)
		return err
	}

	s.log.WarnContext(ctx, "conversion incomplete",
		slog.String("user_id", r.userID.String()),
		slog.String("chunk_id", r.chunkID.String()),
		slog.String("outcome_id", r.marker.OutcomeID.String()),
		slog.String("step", r.marker.Step.String()),
		slog.String("error", err.Error()),
	)
	return &domain.ConversionIncompleteError{
		ChunkID:   r.chunkID,
		OutcomeID: *r.marker.OutcomeID,
		Token:     r.marker.Token,
		Step:      r.marker.Step,
		Err:       err,
	}
}

// release drops a marker that never got past PENDING so that a retry
// without a token is not blocked until the marker goes stale.
func (s *Service) release(ctx context.Context, r *run) {
	ctx = context.WithoutCancel(ctx)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		chunk, err := s.chunks.Lock(txCtx, r.chunkID)
		if err != nil {
			return err
		}
		m := chunk.Conversion
		if m == nil || m.Token != r.marker.Token || m.Step != domain.ConversionStepPending {
			return nil
		}
		return s.chunks.ClearConversionMarker(txCtx, r.chunkID, m.Token)
	})
	if err != nil {
		s.log.WarnContext(ctx, "release conversion marker failed",
			slog.String("chunk_id", r.chunkID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// finish builds the result once the saga is done or was replayed.
func (s *Service) finish(ctx context.Context, r *run, hint domain.PostConversionAction) (*domain.ConversionResult, error) {
	result := r.replayed
	if result == nil {
		if r.marker.OutcomeID == nil {
			return nil, errors.New("conversion finished without an outcome")
		}
		result = &domain.ConversionResult{OutcomeID: *r.marker.OutcomeID, ChunkID: r.chunkID}
	}
	result.NavigateHint = hint

	actions, err := s.outcomes.ListActions(ctx, result.OutcomeID)
	if err != nil {
		s.log.WarnContext(ctx, "list actions after conversion",
			slog.String("outcome_id", result.OutcomeID.String()),
			slog.String("error", err.Error()),
		)
	}
	for _, a := range actions {
		result.ActionIDs = append(result.ActionIDs, a.ID)
	}

	if result.AlreadyConverted {
		s.log.InfoContext(ctx, "conversion replayed",
			slog.String("user_id", r.userID.String()),
			slog.String("chunk_id", r.chunkID.String()),
			slog.String("outcome_id", result.OutcomeID.String()),
		)
	} else {
		s.log.InfoContext(ctx, "chunk converted",
			slog.String("user_id", r.userID.String()),
			slog.String("chunk_id", r.chunkID.String()),
			slog.String("outcome_id", result.OutcomeID.String()),
			slog.Int("actions", len(result.ActionIDs)),
		)
	}

	return result, nil
}
