package suggestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/internal/service/chunk"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

// Apply creates a chunk from one suggested grouping of a finished job.
// This is the confirmation step: the chunk service enforces every
// membership rule exactly as for a hand-built chunk.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (*domain.ChunkWithItems, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	j, err := s.GetJob(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if j.State != domain.SuggestionJobDone {
		return nil, domain.NewBusinessRuleError(fmt.Sprintf("suggestion job is %s", j.State))
	}
	if input.ChunkIndex >= len(j.Result.SuggestedChunks) {
		return nil, domain.NewValidationError("chunk_index", "out of range")
	}

	sc := j.Result.SuggestedChunks[input.ChunkIndex]

	excluded := make(map[uuid.UUID]struct{}, len(input.ExcludeItemIDs))
	for _, id := range input.ExcludeItemIDs {
		excluded[id] = struct{}{}
	}
	itemIDs := make([]uuid.UUID, 0, len(sc.ItemIndices))
	for _, i := range sc.ItemIndices {
		id := j.ItemIDs[i]
		if _, skip := excluded[id]; skip {
			continue
		}
		itemIDs = append(itemIDs, id)
	}

	create := chunk.CreateChunkInput{
		Name:    sc.Name,
		Color:   input.Color,
		ItemIDs: itemIDs,
	}
	if sc.Description != "" {
		desc := sc.Description
		create.Description = &desc
	}
	if input.Name != nil {
		create.Name = *input.Name
	}
	if input.Description != nil {
		create.Description = input.Description
	}

	created, err := s.chunks.CreateChunk(ctx, create)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "suggestion applied",
		slog.String("job_id", j.ID.String()),
		slog.Int("chunk_index", input.ChunkIndex),
		slog.String("chunk_id", created.ID.String()))

	return created, nil
}
