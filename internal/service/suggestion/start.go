package suggestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// Start snapshots the selected items and asks the oracle in the background.
// The returned job is RUNNING; poll Get for the result.
func (s *Service) Start(ctx context.Context, input StartInput) (*domain.SuggestionJob, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxItems); err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, userID, input.ItemIDs)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.NewBusinessRuleError("no loose inbox items to suggest for")
	}

	s.sweep()

	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	now := s.now()
	jobCtx, cancel := context.WithCancel(s.baseCtx)
	j := &job{
		SuggestionJob: domain.SuggestionJob{
			ID:        uuid.New(),
			UserID:    userID,
			ItemIDs:   ids,
			State:     domain.SuggestionJobRunning,
			CreatedAt: now,
			UpdatedAt: now,
		},
		cancel: cancel,
	}

	s.mu.Lock()
	s.jobs[j.ID] = j
	snapshot := j.SuggestionJob
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(jobCtx, j.ID, items)

	s.log.InfoContext(ctx, "suggestion started",
		slog.String("user_id", userID.String()),
		slog.String("job_id", j.ID.String()),
		slog.Int("items", len(items)))

	return &snapshot, nil
}

func (s *Service) loadItems(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.InboxItem, error) {
	if len(ids) == 0 {
		loose := false
		items, _, err := s.items.ListUntriaged(ctx, userID, domain.ItemFilter{
			Chunked: &loose,
			Limit:   s.cfg.MaxItems,
		})
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}
		return items, nil
	}

	items := make([]domain.InboxItem, 0, len(ids))
	for _, id := range ids {
		it, err := s.items.GetByID(ctx, userID, id)
		if err != nil {
			return nil, fmt.Errorf("get item %s: %w", id, err)
		}
		if it.Triaged {
			return nil, domain.NewConflictError("inbox_item", id, "item is already triaged")
		}
		if it.IsChunked() {
			return nil, domain.NewConflictError("inbox_item", id, "item already belongs to a chunk")
		}
		items = append(items, *it)
	}
	return items, nil
}

func (s *Service) run(ctx context.Context, jobID uuid.UUID, items []domain.InboxItem) {
	defer s.wg.Done()

	result, err := s.suggest(ctx, items)

	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[jobID]
	if !ok || j.State != domain.SuggestionJobRunning {
		return
	}
	cancelled := ctx.Err() != nil
	j.cancel()

	switch {
	case cancelled:
		j.State = domain.SuggestionJobCancelled
	case err != nil:
		s.log.WarnContext(ctx, "oracle unavailable, falling back",
			slog.String("job_id", jobID.String()),
			slog.String("error", err.Error()))
		j.State = domain.SuggestionJobFallback
		j.Result = fallback(len(items))
		j.Error = err.Error()
	default:
		j.State = domain.SuggestionJobDone
		j.Result = result
	}
	j.UpdatedAt = s.now()
}
