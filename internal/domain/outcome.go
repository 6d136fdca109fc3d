package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is a formal goal-level result produced by converting a chunk.
// SourceChunkID is written once at creation and never changes.
type Outcome struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Purpose       string
	Description   *string
	AreaID        uuid.UUID
	GoalID        *uuid.UUID
	Status        OutcomeStatus
	SourceChunkID *uuid.UUID
	CreatedAt     time.Time
}

// Action is a concrete step belonging to an outcome.
type Action struct {
	ID                uuid.UUID
	OutcomeID         uuid.UUID
	Title             string
	SourceChunkItemID *uuid.UUID
	SortOrder         int
	Priority          ActionPriority
	DurationMinutes   int
	CreatedAt         time.Time
}

// ConversionRequest is the user-supplied payload of a chunk conversion.
// It is persisted on the chunk while the conversion is in flight so that a
// resumed run executes exactly the same request.
type ConversionRequest struct {
	Title             string     `json:"title"`
	Purpose           string     `json:"purpose"`
	Description       *string    `json:"description,omitempty"`
	AreaID            uuid.UUID  `json:"area_id"`
	GoalID            *uuid.UUID `json:"goal_id,omitempty"`
	ArchiveAfter      bool       `json:"archive_after"`
	AutoCreateActions bool       `json:"auto_create_actions"`
}

// ConversionResult is what a completed (or replayed) conversion returns.
type ConversionResult struct {
	OutcomeID        uuid.UUID
	ChunkID          uuid.UUID
	ActionIDs        []uuid.UUID
	NavigateHint     PostConversionAction
	AlreadyConverted bool
}

// ConversionStatus is a read model of a chunk's conversion state.
type ConversionStatus struct {
	ChunkID     uuid.UUID
	Converted   bool
	InFlight    bool
	Step        ConversionStep
	Token       *uuid.UUID
	OutcomeID   *uuid.UUID
	ConvertedAt *time.Time
	StartedAt   *time.Time
}
