package suggestion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// GetJob returns a snapshot of the caller's job.
func (s *Service) GetJob(ctx context.Context, jobID uuid.UUID) (*domain.SuggestionJob, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	j, err := s.owned(userID, jobID)
	if err != nil {
		return nil, err
	}
	snapshot := j.SuggestionJob
	return &snapshot, nil
}

// CancelJob stops a running job. Cancelling a finished job is a no-op.
func (s *Service) CancelJob(ctx context.Context, jobID uuid.UUID) (*domain.SuggestionJob, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	j, err := s.owned(userID, jobID)
	if err != nil {
		return nil, err
	}

	if j.State == domain.SuggestionJobRunning {
		j.cancel()
		j.State = domain.SuggestionJobCancelled
		j.UpdatedAt = s.now()

		s.log.InfoContext(ctx, "suggestion cancelled",
			slog.String("user_id", userID.String()),
			slog.String("job_id", jobID.String()))
	}

	snapshot := j.SuggestionJob
	return &snapshot, nil
}

// owned must be called with s.mu held.
func (s *Service) owned(userID, jobID uuid.UUID) (*job, error) {
	j, ok := s.jobs[jobID]
	if !ok || j.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if s.expired(j) {
		return nil, domain.ErrNotFound
	}
	return j, nil
}

func (s *Service) expired(j *job) bool {
	return s.cfg.JobTTL > 0 && s.now().Sub(j.CreatedAt) >= s.cfg.JobTTL
}

// sweep drops expired jobs, cancelling any still running.
func (s *Service) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, j := range s.jobs {
		if !s.expired(j) {
			continue
		}
		j.cancel()
		delete(s.jobs, id)
	}
}
