package chunk

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

const (
	maxNameLength        = 120
	maxDescriptionLength = 1000
)

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func validateName(name string, errs []domain.FieldError) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLength)})
	}
	return errs
}

func validateColor(color *string, errs []domain.FieldError) []domain.FieldError {
	if color == nil {
		return errs
	}
	if c := strings.TrimSpace(*color); c != "" && !colorRe.MatchString(c) {
		return append(errs, domain.FieldError{Field: "color", Message: "must be a #rrggbb hex color"})
	}
	return errs
}

func validateDescription(desc *string, errs []domain.FieldError) []domain.FieldError {
	if desc != nil && utf8.RuneCountInString(strings.TrimSpace(*desc)) > maxDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLength)})
	}
	return errs
}

func validateIDList(field string, ids []uuid.UUID, errs []domain.FieldError) []domain.FieldError {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for i, id := range ids {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "required"})
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "duplicate"})
		}
		seen[id] = struct{}{}
	}
	return errs
}

// CreateChunkInput holds the parameters for creating a chunk. ItemIDs, if
// given, are attached in order.
type CreateChunkInput struct {
	Name        string
	Color       *string
	Description *string
	ItemIDs     []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateChunkInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(i.Name, errs)
	errs = validateColor(i.Color, errs)
	errs = validateDescription(i.Description, errs)
	errs = validateIDList("item_ids", i.ItemIDs, errs)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateChunkInput holds the parameters for a partial chunk update.
// nil means don't change; an empty Color or Description clears it.
type UpdateChunkInput struct {
	ChunkID     uuid.UUID
	Name        *string
	Color       *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateChunkInput) Validate() error {
	var errs []domain.FieldError
	if i.ChunkID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "chunk_id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(*i.Name, errs)
	}
	errs = validateColor(i.Color, errs)
	errs = validateDescription(i.Description, errs)
	if i.Name == nil && i.Color == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListChunksInput holds filter parameters for listing chunks.
type ListChunksInput struct {
	Status    *domain.ChunkStatus
	Converted *bool
}

// Validate checks all fields and collects all errors.
func (i ListChunksInput) Validate() error {
	if i.Status != nil && !i.Status.IsValid() {
		return domain.NewValidationError("status", "must be ACTIVE or ARCHIVED")
	}
	return nil
}

// AddItemInput holds the parameters for adding an item to a chunk.
type AddItemInput struct {
	ChunkID uuid.UUID
	ItemID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ChunkID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "chunk_id", Message: "required"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderInput holds the complete desired order of a chunk's items.
type ReorderInput struct {
	ChunkID uuid.UUID
	ItemIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReorderInput) Validate() error {
	var errs []domain.FieldError
	if i.ChunkID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "chunk_id", Message: "required"})
	}
	errs = validateIDList("item_ids", i.ItemIDs, errs)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveItemInput holds the parameters for moving an item to another chunk.
type MoveItemInput struct {
	ItemID    uuid.UUID
	ToChunkID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MoveItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.ToChunkID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "to_chunk_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
