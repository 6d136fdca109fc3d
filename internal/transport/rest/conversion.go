package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/internal/service/conversion"
)

type conversionService interface {
	Convert(ctx context.Context, input conversion.ConvertInput) (*domain.ConversionResult, error)
	Resume(ctx context.Context, chunkID, token uuid.UUID) (*domain.ConversionResult, error)
	GetStatus(ctx context.Context, chunkID uuid.UUID) (*domain.ConversionStatus, error)
}

// ConversionHandler serves chunk-to-outcome conversion endpoints.
type ConversionHandler struct {
	svc conversionService
	log *slog.Logger
}

// NewConversionHandler creates a ConversionHandler.
func NewConversionHandler(svc conversionService, logger *slog.Logger) *ConversionHandler {
	return &ConversionHandler{svc: svc, log: logger.With("handler", "conversion")}
}

type convertRequest struct {
	Title                string  `json:"title"`
	Purpose              string  `json:"purpose"`
	Description          *string `json:"description"`
	AreaID               string  `json:"areaId"`
	GoalID               *string `json:"goalId"`
	ArchiveAfter         bool    `json:"archiveAfter"`
	AutoCreateActions    *bool   `json:"autoCreateActions"`
	PostConversionAction *string `json:"postConversionAction"`
	RememberDefaults     bool    `json:"rememberDefaults"`
}

// Convert handles POST /api/v1/chunks/{id}/convert.
// The Idempotency-Key header (a UUID) is the conversion token: replaying
// the same key returns the original result or resumes an interrupted run.
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	chunkID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	token, err := idempotencyKey(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req convertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := conversion.ConvertInput{
		ChunkID:           chunkID,
		Token:             token,
		Title:             req.Title,
		Purpose:           req.Purpose,
		Description:       req.Description,
		ArchiveAfter:      req.ArchiveAfter,
		AutoCreateActions: req.AutoCreateActions,
		RememberDefaults:  req.RememberDefaults,
	}
	if req.AreaID != "" {
		areaID, err := parseOptionalUUID("areaId", &req.AreaID)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		input.AreaID = *areaID
	}
	if input.GoalID, err = parseOptionalUUID("goalId", req.GoalID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if req.PostConversionAction != nil {
		a := domain.PostConversionAction(strings.ToUpper(*req.PostConversionAction))
		input.PostConversionAction = &a
	}

	res, err := h.svc.Convert(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	status := http.StatusCreated
	if res.AlreadyConverted {
		status = http.StatusOK
	}
	writeJSON(w, status, toConversionResponse(res))
}

// Resume handles POST /api/v1/chunks/{id}/conversion/resume. The
// Idempotency-Key of the interrupted request is required.
func (h *ConversionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	chunkID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	token, err := idempotencyKey(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if token == nil {
		respondError(w, r, h.log, domain.NewValidationError("Idempotency-Key", "required"))
		return
	}

	res, err := h.svc.Resume(r.Context(), chunkID, *token)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConversionResponse(res))
}

// Status handles GET /api/v1/chunks/{id}/conversion.
func (h *ConversionHandler) Status(w http.ResponseWriter, r *http.Request) {
	chunkID, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	st, err := h.svc.GetStatus(r.Context(), chunkID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toConversionStatusResponse(st))
}
