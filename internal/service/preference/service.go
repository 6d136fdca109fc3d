// Package preference manages per-user conversion defaults.
package preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/pkg/ctxutil"
)

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

// Service provides preference operations.
type Service struct {
	prefs preferenceRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Preference service.
func NewService(log *slog.Logger, prefs preferenceRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		prefs: prefs,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "preference"),
	}
}

// SetPreferenceInput holds a partial preference update (nil = don't change).
type SetPreferenceInput struct {
	AutoCreateActionsFromChunks *bool
	DefaultPostConversionAction *domain.PostConversionAction
}

// Validate checks all fields and collects all errors.
func (i SetPreferenceInput) Validate() error {
	var errs []domain.FieldError

	if i.DefaultPostConversionAction != nil && !i.DefaultPostConversionAction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "default_post_conversion_action", Message: "must be STAY or NAVIGATE"})
	}
	if i.AutoCreateActionsFromChunks == nil && i.DefaultPostConversionAction == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetPreference returns the user's saved preference, or the defaults if
// none was ever saved.
func (s *Service) GetPreference(ctx context.Context) (*domain.UserPreference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.current(ctx, userID)
}

// SetPreference merges input into the current preference and stores it.
func (s *Service) SetPreference(ctx context.Context, input SetPreferenceInput) (*domain.UserPreference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.UserPreference
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.current(txCtx, userID)
		if err != nil {
			return err
		}

		next := *current
		if input.AutoCreateActionsFromChunks != nil {
			next.AutoCreateActionsFromChunks = *input.AutoCreateActionsFromChunks
		}
		if input.DefaultPostConversionAction != nil {
			next.DefaultPostConversionAction = *input.DefaultPostConversionAction
		}
		next.UpdatedAt = time.Now().UTC()

		saved, err = s.prefs.Upsert(txCtx, next)
		if err != nil {
			return fmt.Errorf("upsert preference: %w", err)
		}

		changes := buildChanges(*current, next)
		if len(changes) == 0 {
			return nil
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypePreference,
			EntityID:   &userID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "preference updated",
		slog.String("user_id", userID.String()))

	return saved, nil
}

func (s *Service) current(ctx context.Context, userID uuid.UUID) (*domain.UserPreference, error) {
	pref, err := s.prefs.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultUserPreference(userID)
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preference: %w", err)
	}
	return pref, nil
}

func buildChanges(old, new domain.UserPreference) map[string]any {
	changes := make(map[string]any)

	if old.AutoCreateActionsFromChunks != new.AutoCreateActionsFromChunks {
		changes["auto_create_actions_from_chunks"] = map[string]any{
			"old": old.AutoCreateActionsFromChunks,
			"new": new.AutoCreateActionsFromChunks,
		}
	}
	if old.DefaultPostConversionAction != new.DefaultPostConversionAction {
		changes["default_post_conversion_action"] = map[string]any{
			"old": old.DefaultPostConversionAction,
			"new": new.DefaultPostConversionAction,
		}
	}

	return changes
}
