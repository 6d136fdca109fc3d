package conversion

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// loadPreference never fails; any error falls back to the defaults.
func (s *Service) loadPreference(ctx context.Context, userID uuid.UUID) domain.UserPreference {
	pref, err := s.prefs.Get(ctx, userID)
	if err == nil {
		return *pref
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "load preference, using defaults",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
	return domain.DefaultUserPreference(userID)
}

// savePreference runs after the conversion committed and is best effort.
func (s *Service) savePreference(ctx context.Context, pref domain.UserPreference) {
	pref.UpdatedAt = s.now()
	if _, err := s.prefs.Upsert(ctx, pref); err != nil {
		s.log.WarnContext(ctx, "save preference after conversion",
			slog.String("user_id", pref.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
}
