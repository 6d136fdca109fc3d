package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/internal/service/suggestion"
)

type suggestionService interface {
	Start(ctx context.Context, input suggestion.StartInput) (*domain.SuggestionJob, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*domain.SuggestionJob, error)
	CancelJob(ctx context.Context, jobID uuid.UUID) (*domain.SuggestionJob, error)
	Apply(ctx context.Context, input suggestion.ApplyInput) (*domain.ChunkWithItems, error)
}

// SuggestionHandler serves asynchronous grouping suggestions.
type SuggestionHandler struct {
	svc suggestionService
	log *slog.Logger
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(svc suggestionService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{svc: svc, log: logger.With("handler", "suggestion")}
}

type startSuggestionRequest struct {
	ItemIDs []string `json:"itemIds"`
}

type applySuggestionRequest struct {
	ChunkIndex     int      `json:"chunkIndex"`
	Name           *string  `json:"name"`
	Color          *string  `json:"color"`
	Description    *string  `json:"description"`
	ExcludeItemIDs []string `json:"excludeItemIds"`
}

// Start handles POST /api/v1/suggestions. The body is optional; without
// itemIds every loose inbox item is considered.
func (h *SuggestionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSuggestionRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, h.log, err)
			return
		}
	}
	ids, err := parseUUIDs("itemIds", req.ItemIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	job, err := h.svc.Start(r.Context(), suggestion.StartInput{ItemIDs: ids})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/v1/suggestions/"+job.ID.String())
	writeJSON(w, http.StatusAccepted, toSuggestionJobResponse(job))
}

// Get handles GET /api/v1/suggestions/{id}.
func (h *SuggestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	job, err := h.svc.GetJob(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuggestionJobResponse(job))
}

// Cancel handles DELETE /api/v1/suggestions/{id}.
func (h *SuggestionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	job, err := h.svc.CancelJob(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSuggestionJobResponse(job))
}

// Apply handles POST /api/v1/suggestions/{id}/apply.
func (h *SuggestionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req applySuggestionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	excluded, err := parseUUIDs("excludeItemIds", req.ExcludeItemIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Apply(r.Context(), suggestion.ApplyInput{
		JobID:          id,
		ChunkIndex:     req.ChunkIndex,
		Name:           req.Name,
		Color:          req.Color,
		Description:    req.Description,
		ExcludeItemIDs: excluded,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toChunkWithItemsResponse(c))
}
