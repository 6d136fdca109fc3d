package chunk

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// chunkRow is the scany scan target for chunks.
type chunkRow struct {
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	OrgID       *uuid.UUID `db:"org_id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	Color       *string    `db:"color"`
	Status      string     `db:"status"`

	ConvertedToType *string    `db:"converted_to_type"`
	ConvertedToID   *uuid.UUID `db:"converted_to_id"`
	ConvertedAt     *time.Time `db:"converted_at"`
	ConvertedToken  *uuid.UUID `db:"converted_token"`

	ConversionToken     *uuid.UUID `db:"conversion_token"`
	ConversionStep      *string    `db:"conversion_step"`
	ConversionRequest   []byte     `db:"conversion_request"`
	PendingOutcomeID    *uuid.UUID `db:"pending_outcome_id"`
	ConversionStartedAt *time.Time `db:"conversion_started_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	ItemCount int       `db:"item_count"`
}

func (row chunkRow) toDomain() (*domain.Chunk, error) {
	c := &domain.Chunk{
		ID:             row.ID,
		UserID:         row.UserID,
		OrgID:          row.OrgID,
		Name:           row.Name,
		Description:    row.Description,
		Color:          row.Color,
		Status:         domain.ChunkStatus(row.Status),
		ConvertedToID:  row.ConvertedToID,
		ConvertedAt:    row.ConvertedAt,
		ConvertedToken: row.ConvertedToken,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		ItemCount:      row.ItemCount,
	}

	if row.ConvertedToType != nil {
		t := domain.ConvertedToType(*row.ConvertedToType)
		c.ConvertedToType = &t
	}

	if row.ConversionToken != nil {
		m := &domain.ConversionMarker{
			Token:     *row.ConversionToken,
			OutcomeID: row.PendingOutcomeID,
		}
		if row.ConversionStep != nil {
			m.Step = domain.ConversionStep(*row.ConversionStep)
		}
		if row.ConversionStartedAt != nil {
			m.StartedAt = *row.ConversionStartedAt
		}
		if len(row.ConversionRequest) > 0 {
			if err := json.Unmarshal(row.ConversionRequest, &m.Request); err != nil {
				return nil, fmt.Errorf("chunk %s unmarshal conversion request: %w", row.ID, err)
			}
		}
		c.Conversion = m
	}

	return c, nil
}

// memberRow is the scany scan target for chunk_items joined with inbox_items.
type memberRow struct {
	ID            uuid.UUID  `db:"id"`
	ChunkID       uuid.UUID  `db:"chunk_id"`
	InboxItemID   uuid.UUID  `db:"inbox_item_id"`
	SortOrder     int        `db:"sort_order"`
	CreatedAt     time.Time  `db:"created_at"`
	UserID        uuid.UUID  `db:"user_id"`
	OrgID         *uuid.UUID `db:"org_id"`
	Content       string     `db:"content"`
	ItemType      string     `db:"item_type"`
	Triaged       bool       `db:"triaged"`
	TriagedToID   *uuid.UUID `db:"triaged_to_id"`
	ItemCreatedAt time.Time  `db:"item_created_at"`
}

func (row memberRow) toDomain() domain.ChunkItem {
	chunkID := row.ChunkID
	return domain.ChunkItem{
		ID:          row.ID,
		ChunkID:     row.ChunkID,
		InboxItemID: row.InboxItemID,
		SortOrder:   row.SortOrder,
		CreatedAt:   row.CreatedAt,
		Item: &domain.InboxItem{
			ID:          row.InboxItemID,
			UserID:      row.UserID,
			OrgID:       row.OrgID,
			Content:     row.Content,
			ItemType:    domain.ItemType(row.ItemType),
			ChunkID:     &chunkID,
			Triaged:     row.Triaged,
			TriagedToID: row.TriagedToID,
			CreatedAt:   row.ItemCreatedAt,
		},
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
