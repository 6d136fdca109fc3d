package conversion

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxPurposeLength     = 2000
	maxDescriptionLength = 5000
)

// ConvertInput holds a conversion request.
//
// Token is the client's idempotency key; retries with the same token resume
// or replay the same conversion. When nil a fresh token is generated and the
// call is not resumable by the client.
//
// AutoCreateActions and PostConversionAction fall back to the user's saved
// preference when nil. RememberDefaults stores the resolved values as the
// new preference once the conversion completes.
type ConvertInput struct {
	ChunkID              uuid.UUID
	Token                *uuid.UUID
	Title                string
	Purpose              string
	Description          *string
	AreaID               uuid.UUID
	GoalID               *uuid.UUID
	ArchiveAfter         bool
	AutoCreateActions    *bool
	PostConversionAction *domain.PostConversionAction
	RememberDefaults     bool
}

// Validate checks all fields and collects all errors.
func (i ConvertInput) Validate() error {
	var errs []domain.FieldError

	if i.ChunkID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "chunk_id", Message: "required"})
	}
	if i.Token != nil && *i.Token == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "token", Message: "must not be the nil uuid"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLength)})
	}

	purpose := strings.TrimSpace(i.Purpose)
	if purpose == "" {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: "required"})
	} else if utf8.RuneCountInString(purpose) > maxPurposeLength {
		errs = append(errs, domain.FieldError{Field: "purpose", Message: fmt.Sprintf("max %d characters", maxPurposeLength)})
	}

	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLength)})
	}

	if i.AreaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "area_id", Message: "required"})
	}
	if i.GoalID != nil && *i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "goal_id", Message: "must not be the nil uuid"})
	}
	if i.PostConversionAction != nil && !i.PostConversionAction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "post_conversion_action", Message: "must be STAY or NAVIGATE"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// request builds the persisted conversion request with defaults resolved.
func (i ConvertInput) request(autoCreateActions bool) domain.ConversionRequest {
	var desc *string
	if i.Description != nil {
		if d := strings.TrimSpace(*i.Description); d != "" {
			desc = &d
		}
	}
	return domain.ConversionRequest{
		Title:             strings.TrimSpace(i.Title),
		Purpose:           strings.TrimSpace(i.Purpose),
		Description:       desc,
		AreaID:            i.AreaID,
		GoalID:            i.GoalID,
		ArchiveAfter:      i.ArchiveAfter,
		AutoCreateActions: autoCreateActions,
	}
}
