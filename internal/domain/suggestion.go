package domain

import (
	"time"

	"github.com/google/uuid"
)

// SuggestedChunk is one grouping proposed by the suggestion oracle.
// ItemIndices refer to positions in the item slice sent to the oracle.
// ShouldConvert is advisory only and never triggers a conversion.
type SuggestedChunk struct {
	Name                  string  `json:"name"`
	Description           string  `json:"description"`
	ItemIndices           []int   `json:"itemIndices"`
	ShouldConvert         bool    `json:"shouldConvert"`
	Reasoning             string  `json:"reasoning"`
	SuggestedOutcomeTitle *string `json:"suggestedOutcomeTitle,omitempty"`
}

// SuggestionResult is the oracle's full answer for one item set.
type SuggestionResult struct {
	SuggestedChunks      []SuggestedChunk `json:"suggestedChunks"`
	UngroupedItemIndices []int            `json:"ungroupedItemIndices"`
	Advice               string           `json:"advice"`
}

// SuggestionJobState is the lifecycle state of an asynchronous suggestion job.
type SuggestionJobState string

const (
	SuggestionJobRunning   SuggestionJobState = "RUNNING"
	SuggestionJobDone      SuggestionJobState = "DONE"
	SuggestionJobFallback  SuggestionJobState = "FALLBACK"
	SuggestionJobCancelled SuggestionJobState = "CANCELLED"
)

func (s SuggestionJobState) String() string { return string(s) }

// SuggestionJob is a snapshot of an asynchronous suggestion request. ItemIDs
// preserves the order the items were sent to the oracle, so ItemIndices in
// Result resolve against it.
type SuggestionJob struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ItemIDs   []uuid.UUID
	State     SuggestionJobState
	Result    *SuggestionResult
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
