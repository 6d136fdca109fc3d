package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/internal/service/inbox"
)

type inboxService interface {
	Capture(ctx context.Context, input inbox.CaptureInput) (*domain.InboxItem, error)
	ListUntriaged(ctx context.Context, input inbox.ListItemsInput) ([]domain.InboxItem, int, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.InboxItem, error)
	Recategorize(ctx context.Context, input inbox.RecategorizeInput) (*domain.InboxItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	MarkTriaged(ctx context.Context, input inbox.MarkTriagedInput) error
}

// InboxHandler serves inbox item endpoints.
type InboxHandler struct {
	svc inboxService
	log *slog.Logger
}

// NewInboxHandler creates an InboxHandler.
func NewInboxHandler(svc inboxService, logger *slog.Logger) *InboxHandler {
	return &InboxHandler{svc: svc, log: logger.With("handler", "inbox")}
}

type captureRequest struct {
	Content string `json:"content"`
}

type recategorizeRequest struct {
	ItemType string `json:"itemType"`
}

type markTriagedRequest struct {
	OutcomeID string `json:"outcomeId"`
}

// Capture handles POST /api/v1/inbox.
func (h *InboxHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var req captureRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Capture(r.Context(), inbox.CaptureInput{Content: req.Content})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// List handles GET /api/v1/inbox?type=NOTE&chunked=false&chunkId=...&q=...&limit=50&offset=0.
func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := inbox.ListItemsInput{}

	if v := q.Get("type"); v != "" {
		t := domain.ItemType(strings.ToUpper(v))
		input.ItemType = &t
	}
	if v := q.Get("q"); v != "" {
		input.Search = &v
	}

	var err error
	if input.Chunked, err = queryBool(r, "chunked"); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if v := q.Get("chunkId"); v != "" {
		if input.ChunkID, err = parseOptionalUUID("chunkId", &v); err != nil {
			respondError(w, r, h.log, err)
			return
		}
	}
	if input.Limit, err = queryInt(r, "limit", 0); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset", 0); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items, total, err := h.svc.ListUntriaged(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := itemListResponse{Items: make([]itemResponse, len(items)), Total: total}
	for i := range items {
		resp.Items[i] = toItemResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/inbox/{id}.
func (h *InboxHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Recategorize handles PATCH /api/v1/inbox/{id}.
func (h *InboxHandler) Recategorize(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req recategorizeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Recategorize(r.Context(), inbox.RecategorizeInput{
		ItemID:   id,
		ItemType: domain.ItemType(strings.ToUpper(req.ItemType)),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete handles DELETE /api/v1/inbox/{id}.
func (h *InboxHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkTriaged handles POST /api/v1/inbox/{id}/triage.
func (h *InboxHandler) MarkTriaged(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req markTriagedRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	outcomeID, err := parseOptionalUUID("outcomeId", &req.OutcomeID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.MarkTriaged(r.Context(), inbox.MarkTriagedInput{ItemID: id, OutcomeID: *outcomeID}); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
