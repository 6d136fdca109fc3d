package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/internal/service/chunk"
)

type chunkService interface {
	CreateChunk(ctx context.Context, input chunk.CreateChunkInput) (*domain.ChunkWithItems, error)
	GetChunk(ctx context.Context, chunkID uuid.UUID) (*domain.ChunkWithItems, error)
	ListChunks(ctx context.Context, input chunk.ListChunksInput) ([]domain.Chunk, error)
	UpdateChunk(ctx context.Context, input chunk.UpdateChunkInput) (*domain.Chunk, error)
	ArchiveChunk(ctx context.Context, chunkID uuid.UUID) (*domain.Chunk, error)
	UnarchiveChunk(ctx context.Context, chunkID uuid.UUID) (*domain.Chunk, error)
	DeleteChunk(ctx context.Context, chunkID uuid.UUID) error
	AddItem(ctx context.Context, input chunk.AddItemInput) (*domain.ChunkItem, error)
	RemoveItem(ctx context.Context, chunkItemID uuid.UUID) error
	Reorder(ctx context.Context, input chunk.ReorderInput) ([]domain.ChunkItem, error)
	MoveItem(ctx context.Context, input chunk.MoveItemInput) (*domain.ChunkItem, error)
}

// ChunkHandler serves chunk endpoints.
type ChunkHandler struct {
	svc chunkService
	log *slog.Logger
}

// NewChunkHandler creates a ChunkHandler.
func NewChunkHandler(svc chunkService, logger *slog.Logger) *ChunkHandler {
	return &ChunkHandler{svc: svc, log: logger.With("handler", "chunk")}
}

type createChunkRequest struct {
	Name        string   `json:"name"`
	Color       *string  `json:"color"`
	Description *string  `json:"description"`
	ItemIDs     []string `json:"itemIds"`
}

type updateChunkRequest struct {
	Name        *string `json:"name"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
}

type addItemRequest struct {
	ItemID string `json:"itemId"`
}

type reorderRequest struct {
	ItemIDs []string `json:"itemIds"`
}

type moveItemRequest struct {
	ChunkID string `json:"chunkId"`
}

// Create handles POST /api/v1/chunks.
func (h *ChunkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createChunkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	itemIDs, err := parseUUIDs("itemIds", req.ItemIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateChunk(r.Context(), chunk.CreateChunkInput{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
		ItemIDs:     itemIDs,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toChunkWithItemsResponse(c))
}

// List handles GET /api/v1/chunks?status=ACTIVE&converted=false.
func (h *ChunkHandler) List(w http.ResponseWriter, r *http.Request) {
	input := chunk.ListChunksInput{}
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.ChunkStatus(strings.ToUpper(v))
		input.Status = &s
	}
	var err error
	if input.Converted, err = queryBool(r, "converted"); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	chunks, err := h.svc.ListChunks(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]chunkResponse, len(chunks))
	for i := range chunks {
		resp[i] = toChunkResponse(&chunks[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"chunks": resp})
}

// Get handles GET /api/v1/chunks/{id}.
func (h *ChunkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.GetChunk(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChunkWithItemsResponse(c))
}

// Update handles PATCH /api/v1/chunks/{id}.
func (h *ChunkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateChunkRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateChunk(r.Context(), chunk.UpdateChunkInput{
		ChunkID:     id,
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChunkResponse(c))
}

// Archive handles POST /api/v1/chunks/{id}/archive.
func (h *ChunkHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.ArchiveChunk)
}

// Unarchive handles POST /api/v1/chunks/{id}/unarchive.
func (h *ChunkHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.svc.UnarchiveChunk)
}

func (h *ChunkHandler) setStatus(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.Chunk, error)) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := fn(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChunkResponse(c))
}

// Delete handles DELETE /api/v1/chunks/{id}.
func (h *ChunkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteChunk(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/v1/chunks/{id}/items.
func (h *ChunkHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	itemID, err := parseOptionalUUID("itemId", &req.ItemID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ci, err := h.svc.AddItem(r.Context(), chunk.AddItemInput{ChunkID: id, ItemID: *itemID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toChunkItemPayload(ci))
}

// RemoveItem handles DELETE /api/v1/chunk-items/{id}.
func (h *ChunkHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT /api/v1/chunks/{id}/order.
func (h *ChunkHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	itemIDs, err := parseUUIDs("itemIds", req.ItemIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items, err := h.svc.Reorder(r.Context(), chunk.ReorderInput{ChunkID: id, ItemIDs: itemIDs})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toChunkItemPayloads(items)})
}

// MoveItem handles POST /api/v1/inbox/{id}/move.
func (h *ChunkHandler) MoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req moveItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	toChunkID, err := parseOptionalUUID("chunkId", &req.ChunkID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ci, err := h.svc.MoveItem(r.Context(), chunk.MoveItemInput{ItemID: id, ToChunkID: *toChunkID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChunkItemPayload(ci))
}
