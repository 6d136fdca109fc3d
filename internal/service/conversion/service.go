// Package conversion turns a chunk into an outcome.
//
// A conversion is a saga over five steps with a cursor persisted on the
// chunk:
//
//	PENDING -> OUTCOME_CREATED -> ACTIONS_CREATED -> CHUNK_UPDATED -> ITEMS_TRIAGED -> DONE
//
// Each step runs in its own transaction that first locks the chunk row and
// checks the conversion token, then does its writes and advances the cursor.
// A retry with the same token (or a takeover of a stale marker) continues
// after the last committed step. The outcome is created exactly once and is
// never rolled back. Items are triaged last, after the chunk update commits.
//
// With ConversionConfig.SingleTransaction all steps share one transaction
// and a failure leaves nothing behind.
package conversion

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/config"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

type chunkRepo interface {
	GetByID(ctx context.Context, userID, chunkID uuid.UUID) (*domain.Chunk, error)
	Lock(ctx context.Context, chunkID uuid.UUID) (*domain.Chunk, error)
	ListItems(ctx context.Context, chunkID uuid.UUID) ([]domain.ChunkItem, error)
	ListStaleConversions(ctx context.Context, olderThan time.Time, limit int) ([]domain.Chunk, error)
	SaveConversionMarker(ctx context.Context, chunkID uuid.UUID, expected *uuid.UUID, m domain.ConversionMarker) error
	MarkConverted(ctx context.Context, chunkID, token, outcomeID uuid.UUID, at time.Time, archive bool) error
	ClearConversionMarker(ctx context.Context, chunkID, token uuid.UUID) error
}

type outcomeRepo interface {
	Create(ctx context.Context, o *domain.Outcome) (*domain.Outcome, error)
	GetBySourceChunk(ctx context.Context, chunkID uuid.UUID) (*domain.Outcome, error)
	CreateActions(ctx context.Context, actions []domain.Action) error
	ListActions(ctx context.Context, outcomeID uuid.UUID) ([]domain.Action, error)
}

type itemTriager interface {
	MarkTriaged(ctx context.Context, itemID, outcomeID uuid.UUID) error
}

type preferenceRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserPreference, error)
	Upsert(ctx context.Context, pref domain.UserPreference) (*domain.UserPreference, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs chunk conversions.
type Service struct {
	chunks   chunkRepo
	outcomes outcomeRepo
	items    itemTriager
	prefs    preferenceRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
	cfg      config.ConversionConfig
	now      func() time.Time
}

// NewService creates a new Conversion service. cfg is expected to be
// validated already.
func NewService(
	log *slog.Logger,
	chunks chunkRepo,
	outcomes outcomeRepo,
	items itemTriager,
	prefs preferenceRepo,
	audit auditLogger,
	tx txManager,
	cfg config.ConversionConfig,
) *Service {
	return &Service{
		chunks:   chunks,
		outcomes: outcomes,
		items:    items,
		prefs:    prefs,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "conversion"),
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// run is the in-memory view of one conversion. marker mirrors what is
// committed on the chunk row and is only replaced after a step commits.
type run struct {
	userID  uuid.UUID
	chunkID uuid.UUID
	marker  domain.ConversionMarker

	// set when the chunk was already converted and nothing ran
	replayed *domain.ConversionResult
}
