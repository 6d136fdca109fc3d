// Package suggestion runs suggestion oracle requests as asynchronous,
// cancellable jobs. Results are advisory: nothing is mutated until the user
// applies a suggested chunk, which goes through the regular chunk service.
package suggestion

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/outcomes-backend/internal/config"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/internal/service/chunk"
)

// FallbackAdvice is returned when the oracle cannot answer.
const FallbackAdvice = "Suggestions are unavailable right now. Please categorize manually."

type itemReader interface {
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.InboxItem, error)
	ListUntriaged(ctx context.Context, userID uuid.UUID, filter domain.ItemFilter) ([]domain.InboxItem, int, error)
}

type chunkCreator interface {
	CreateChunk(ctx context.Context, input chunk.CreateChunkInput) (*domain.ChunkWithItems, error)
}

type suggestionOracle interface {
	SuggestChunks(ctx context.Context, items []domain.InboxItem) (*domain.SuggestionResult, error)
}

// suggestionCache returns nil, nil on a miss.
type suggestionCache interface {
	Get(ctx context.Context, key string) (*domain.SuggestionResult, error)
	Set(ctx context.Context, key string, result *domain.SuggestionResult) error
}

type job struct {
	domain.SuggestionJob
	cancel context.CancelFunc
}

// Service manages suggestion jobs.
type Service struct {
	items  itemReader
	chunks chunkCreator
	oracle suggestionOracle
	cache  suggestionCache
	cfg    config.OracleConfig
	log    *slog.Logger
	now    func() time.Time

	group singleflight.Group

	mu   sync.Mutex
	jobs map[uuid.UUID]*job

	baseCtx context.Context
	stop    context.CancelFunc
	wg      sync.WaitGroup
}

// NewService creates a new Suggestion service. cache may be nil.
func NewService(
	log *slog.Logger,
	items itemReader,
	chunks chunkCreator,
	oracle suggestionOracle,
	cache suggestionCache,
	cfg config.OracleConfig,
) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	baseCtx, stop := context.WithCancel(context.Background())
	return &Service{
		items:   items,
		chunks:  chunks,
		oracle:  oracle,
		cache:   cache,
		cfg:     cfg,
		log:     log.With("service", "suggestion"),
		now:     time.Now,
		jobs:    make(map[uuid.UUID]*job),
		baseCtx: baseCtx,
		stop:    stop,
	}
}

// Close cancels every running job and waits for workers to exit.
func (s *Service) Close() {
	s.stop()
	s.wg.Wait()
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*domain.SuggestionResult, error) { return nil, nil }

func (noopCache) Set(context.Context, string, *domain.SuggestionResult) error { return nil }
