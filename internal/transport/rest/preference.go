package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
	"github.com/heartmarshall/outcomes-backend/internal/service/preference"
)

type preferenceService interface {
	GetPreference(ctx context.Context) (*domain.UserPreference, error)
	SetPreference(ctx context.Context, input preference.SetPreferenceInput) (*domain.UserPreference, error)
}

// PreferenceHandler serves the caller's conversion defaults.
type PreferenceHandler struct {
	svc preferenceService
	log *slog.Logger
}

// NewPreferenceHandler creates a PreferenceHandler.
func NewPreferenceHandler(svc preferenceService, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{svc: svc, log: logger.With("handler", "preference")}
}

type setPreferenceRequest struct {
	AutoCreateActionsFromChunks *bool   `json:"autoCreateActionsFromChunks"`
	DefaultPostConversionAction *string `json:"defaultPostConversionAction"`
}

// Get handles GET /api/v1/preferences.
func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	pref, err := h.svc.GetPreference(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreferenceResponse(pref))
}

// Set handles PATCH /api/v1/preferences.
func (h *PreferenceHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setPreferenceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := preference.SetPreferenceInput{AutoCreateActionsFromChunks: req.AutoCreateActionsFromChunks}
	if req.DefaultPostConversionAction != nil {
		a := domain.PostConversionAction(strings.ToUpper(*req.DefaultPostConversionAction))
		input.DefaultPostConversionAction = &a
	}

	pref, err := h.svc.SetPreference(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPreferenceResponse(pref))
}
