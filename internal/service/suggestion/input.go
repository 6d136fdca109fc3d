package suggestion

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// StartInput selects the items to send to the oracle. Empty ItemIDs means
// all loose untriaged items, up to the configured maximum.
type StartInput struct {
	ItemIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i StartInput) Validate(maxItems int) error {
	var errs []domain.FieldError

	if maxItems > 0 && len(i.ItemIDs) > maxItems {
		errs = append(errs, domain.FieldError{Field: "item_ids", Message: fmt.Sprintf("at most %d items", maxItems)})
	}

	seen := make(map[uuid.UUID]struct{}, len(i.ItemIDs))
	for idx, id := range i.ItemIDs {
		field := fmt.Sprintf("item_ids[%d]", idx)
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: field, Message: "duplicate"})
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApplyInput accepts one suggested chunk, optionally overriding its fields
// and dropping some of its items.
type ApplyInput struct {
	JobID          uuid.UUID
	ChunkIndex     int
	Name           *string
	Color          *string
	Description    *string
	ExcludeItemIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ApplyInput) Validate() error {
	var errs []domain.FieldError

	if i.JobID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "job_id", Message: "required"})
	}
	if i.ChunkIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "chunk_index", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
