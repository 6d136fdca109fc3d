package domain

import (
	"time"

	"github.com/google/uuid"
)

// InboxItem is a captured note waiting to be triaged.
//
// ChunkID mirrors chunk_items membership and is only ever written together
// with it. Once Triaged is true it never reverts and TriagedToID is set.
type InboxItem struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	OrgID       *uuid.UUID
	Content     string
	ItemType    ItemType
	ChunkID     *uuid.UUID
	Triaged     bool
	TriagedToID *uuid.UUID
	CreatedAt   time.Time
}

// IsChunked reports whether the item currently belongs to a chunk.
func (i *InboxItem) IsChunked() bool {
	return i.ChunkID != nil
}

// Chunk is a user-curated, ordered grouping of inbox items that represents
// a candidate outcome.
type Chunk struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	OrgID       *uuid.UUID
	Name        string
	Description *string
	Color       *string
	Status      ChunkStatus

	// Set together exactly once, when conversion commits.
	ConvertedToType *ConvertedToType
	ConvertedToID   *uuid.UUID
	ConvertedAt     *time.Time
	ConvertedToken  *uuid.UUID

	// In-flight conversion marker; nil when no conversion is running.
	Conversion *ConversionMarker

	CreatedAt time.Time
	UpdatedAt time.Time
	ItemCount int // computed field, not stored in DB
}

// IsConverted reports whether the chunk has been converted.
func (c *Chunk) IsConverted() bool {
	return c.ConvertedToID != nil
}

// IsConverting reports whether a conversion is in flight.
func (c *Chunk) IsConverting() bool {
	return c.Conversion != nil
}

// IsLocked reports whether membership and identity fields are frozen.
func (c *Chunk) IsLocked() bool {
	return c.IsConverted() || c.IsConverting()
}

// ConversionMarker is the persisted state of an in-flight conversion: the
// claiming token, the saga cursor, the request being executed and, once
// created, the outcome id.
type ConversionMarker struct {
	Token     uuid.UUID
	Step      ConversionStep
	Request   ConversionRequest
	OutcomeID *uuid.UUID
	StartedAt time.Time
}

// ChunkItem is a chunk membership row. SortOrder is distinct within a chunk.
type ChunkItem struct {
	ID          uuid.UUID
	ChunkID     uuid.UUID
	InboxItemID uuid.UUID
	SortOrder   int
	CreatedAt   time.Time

	Item *InboxItem // populated by reads that join inbox_items
}

// ChunkUpdateParams is a partial update of a chunk's identity fields.
// nil means don't change; ptr("") on Description or Color clears it.
type ChunkUpdateParams struct {
	Name        *string
	Description *string
	Color       *string
}

// ChunkWithItems is a chunk plus its members ordered by sort_order.
type ChunkWithItems struct {
	Chunk
	Items []ChunkItem
}

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
