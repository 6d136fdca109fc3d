package domain

import "github.com/google/uuid"

// ItemFilter contains filtering/pagination parameters for untriaged item listing.
type ItemFilter struct {
	ItemType *ItemType
	// Chunked: nil = any, true = only items in a chunk, false = only loose items.
	Chunked *bool
	ChunkID *uuid.UUID
	Search  *string
	Limit   int
	Offset  int
}

// ChunkFilter contains filtering parameters for chunk listing.
type ChunkFilter struct {
	Status *ChunkStatus
	// Converted: nil = any.
	Converted *bool
}
