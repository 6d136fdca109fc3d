// Package inbox implements ItemStore operations: capturing notes,
// recategorizing and deleting them while untriaged, and marking them
// triaged once their chunk is converted.
package inbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/config"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type itemRepo interface {
	Create(ctx context.Context, item *domain.InboxItem) (*domain.InboxItem, error)
	GetByID(ctx context.Context, userID, itemID uuid.UUID) (*domain.InboxItem, error)
	GetForUpdate(ctx context.Context, userID, itemID uuid.UUID) (*domain.InboxItem, error)
	ListUntriaged(ctx context.Context, userID uuid.UUID, filter domain.ItemFilter) ([]domain.InboxItem, int, error)
	CountUntriaged(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateType(ctx context.Context, userID, itemID uuid.UUID, itemType domain.ItemType) (*domain.InboxItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	MarkTriaged(ctx context.Context, itemID, outcomeID uuid.UUID) error
}

type chunkDetacher interface {
	Lock(ctx context.Context, chunkID uuid.UUID) (*domain.Chunk, error)
	DetachItem(ctx context.Context, itemID uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides inbox item operations.
type Service struct {
	items  itemRepo
	chunks chunkDetacher
	audit  auditLogger
	tx     txManager
	log    *slog.Logger
	cfg    config.CaptureConfig
	now    func() time.Time
}

// NewService creates a new Inbox service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	chunks chunkDetacher,
	audit auditLogger,
	tx txManager,
	cfg config.CaptureConfig,
) *Service {
	return &Service{
		items:  items,
		chunks: chunks,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "inbox"),
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}
