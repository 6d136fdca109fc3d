package inbox

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// CaptureInput holds the parameters for capturing a note.
type CaptureInput struct {
	Content string
}

// Validate checks all fields and collects all errors.
func (i CaptureInput) Validate(maxLen int) error {
	content := strings.TrimSpace(i.Content)
	if content == "" {
		return domain.NewValidationError("content", "required")
	}
	if maxLen > 0 && utf8.RuneCountInString(content) > maxLen {
		return domain.NewValidationError("content", fmt.Sprintf("max %d characters", maxLen))
	}
	return nil
}

// RecategorizeInput holds the parameters for changing an item's type.
type RecategorizeInput struct {
	ItemID   uuid.UUID
	ItemType domain.ItemType
}

// Validate checks all fields and collects all errors.
func (i RecategorizeInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if !i.ItemType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "item_type", Message: "must be NOTE, ACTION_IDEA or OUTCOME_IDEA"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListItemsInput holds the parameters for listing untriaged items.
type ListItemsInput struct {
	ItemType *domain.ItemType
	Chunked  *bool
	ChunkID  *uuid.UUID
	Search   *string
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListItemsInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemType != nil && !i.ItemType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "item_type", Message: "invalid"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MarkTriagedInput holds the parameters for marking an item triaged.
type MarkTriagedInput struct {
	ItemID    uuid.UUID
	OutcomeID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MarkTriagedInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.OutcomeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "outcome_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
