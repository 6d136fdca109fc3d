// Package chunk implements ChunkStore operations: chunk lifecycle and the
// ordered membership of inbox items.
//
// Every membership change locks the chunk row first and the item row second.
// Converted or converting chunks accept archive toggles only.
package chunk

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/config"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

type chunkRepo interface {
	GetByID(ctx context.Context, userID, chunkID uuid.UUID) (*domain.Chunk, error)
	Lock(ctx context.Context, chunkID uuid.UUID) (*domain.Chunk, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.ChunkFilter) ([]domain.Chunk, error)
	Create(ctx context.Context, chunk *domain.Chunk) (*domain.Chunk, error)
	Update(ctx context.Context, chunkID uuid.UUID, params domain.ChunkUpdateParams, now time.Time) error
	SetStatus(ctx context.Context, chunkID uuid.UUID, status domain.ChunkStatus, now time.Time) error
	Delete(ctx context.Context, chunkID uuid.UUID) error
	ListItems(ctx context.Context, chunkID uuid.UUID) ([]domain.ChunkItem, error)
	GetItem(ctx context.Context, chunkItemID uuid.UUID) (*domain.ChunkItem, error)
	AddItem(ctx context.Context, chunkID, itemID uuid.UUID, now time.Time) (*domain.ChunkItem, error)
	RemoveItem(ctx context.Context, chunkItemID uuid.UUID) error
	DetachItem(ctx context.Context, itemID uuid.UUID) error
	DetachAll(ctx context.Context, chunkID uuid.UUID) (int, error)
	Reorder(ctx context.Context, chunkID uuid.UUID, orderedItemIDs []uuid.UUID) error
}

type itemRepo interface {
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.InboxItem, error)
	GetForUpdate(ctx context.Context, userID, itemID uuid.UUID) (*domain.InboxItem, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides chunk operations.
type Service struct {
	chunks chunkRepo
	items  itemRepo
	audit  auditLogger
	tx     txManager
	log    *slog.Logger
	cfg    config.CaptureConfig
	now    func() time.Time
}

// NewService creates a new Chunk service.
func NewService(
	log *slog.Logger,
	chunks chunkRepo,
	items itemRepo,
	audit auditLogger,
	tx txManager,
	cfg config.CaptureConfig,
) *Service {
	return &Service{
		chunks: chunks,
		items:  items,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "chunk"),
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// lockOwned takes the chunk row lock and hides chunks of other users.
func (s *Service) lockOwned(ctx context.Context, userID, chunkID uuid.UUID) (*domain.Chunk, error) {
	c, err := s.chunks.Lock(ctx, chunkID)
	if err != nil {
		return nil, fmt.Errorf("lock chunk: %w", err)
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("chunk %s: %w", chunkID, domain.ErrNotFound)
	}
	return c, nil
}

// lockMutable is lockOwned plus the conversion lock check.
func (s *Service) lockMutable(ctx context.Context, userID, chunkID uuid.UUID) (*domain.Chunk, error) {
	c, err := s.lockOwned(ctx, userID, chunkID)
	if err != nil {
		return nil, err
	}
	if c.IsLocked() {
		return nil, domain.ErrConversionLocked
	}
	return c, nil
}

// attach moves a loose, untriaged item owned by userID into a locked chunk.
// currentCount is the chunk's member count before the call.
func (s *Service) attach(ctx context.Context, userID, chunkID, itemID uuid.UUID, currentCount int) (*domain.ChunkItem, error) {
	if s.cfg.MaxChunkItems > 0 && currentCount >= s.cfg.MaxChunkItems {
		return nil, domain.NewBusinessRuleError(fmt.Sprintf("chunk is full (max %d items)", s.cfg.MaxChunkItems))
	}

	item, err := s.items.GetForUpdate(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get inbox item: %w", err)
	}
	if item.Triaged {
		return nil, domain.NewConflictError("inbox_item", itemID, "item is already triaged")
	}
	if item.ChunkID != nil {
		if *item.ChunkID == chunkID {
			return nil, domain.NewConflictError("inbox_item", itemID, "item is already in this chunk")
		}
		return nil, domain.NewConflictError("inbox_item", itemID, "item belongs to another chunk, remove it first")
	}

	ci, err := s.chunks.AddItem(ctx, chunkID, itemID, s.now())
	if err != nil {
		return nil, fmt.Errorf("add chunk item: %w", err)
	}
	return ci, nil
}
