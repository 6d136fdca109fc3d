package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserPreference holds remembered per-user conversion defaults.
type UserPreference struct {
	UserID                      uuid.UUID
	AutoCreateActionsFromChunks bool
	DefaultPostConversionAction PostConversionAction
	UpdatedAt                   time.Time
}

// DefaultUserPreference returns the preference used when a user has never
// saved one.
func DefaultUserPreference(userID uuid.UUID) UserPreference {
	return UserPreference{
		UserID:                      userID,
		AutoCreateActionsFromChunks: true,
		DefaultPostConversionAction: PostConversionStay,
	}
}
