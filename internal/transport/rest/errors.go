package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// retryAfterSeconds is sent with 503 and in-progress 409 responses.
const retryAfterSeconds = "1"

type incompleteResponse struct {
	Status    string `json:"status"`
	Retry     bool   `json:"retry"`
	OutcomeID string `json:"outcomeId"`
	ChunkID   string `json:"chunkId"`
	Token     string `json:"token"`
	Step      string `json:"step"`
}

// respondError maps a service error onto an HTTP response. Unknown errors
// are logged and hidden behind a 500.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	// Checked first: an incomplete conversion also wraps its cause, which
	// may itself be transient.
	var incomplete *domain.ConversionIncompleteError
	if errors.As(err, &incomplete) {
		writeJSON(w, http.StatusAccepted, incompleteResponse{
			Status:    "incomplete",
			Retry:     true,
			OutcomeID: incomplete.OutcomeID.String(),
			ChunkID:   incomplete.ChunkID.String(),
			Token:     incomplete.Token.String(),
			Step:      incomplete.Step.String(),
		})
		return
	}

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		fields := make([]fieldError, len(validation.Errors))
		for i, fe := range validation.Errors {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		writeError(w, r, http.StatusBadRequest, errorBody{Code: "VALIDATION", Message: "invalid input", Fields: fields})
		return
	}

	var converted *domain.ConversionConflictError
	if errors.As(err, &converted) {
		id := converted.OutcomeID.String()
		writeError(w, r, http.StatusConflict, errorBody{Code: "ALREADY_CONVERTED", Message: err.Error(), OutcomeID: &id})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, errorBody{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, r, http.StatusUnauthorized, errorBody{Code: "UNAUTHORIZED", Message: "unauthorized"})
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, r, http.StatusForbidden, errorBody{Code: "FORBIDDEN", Message: "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "not found"})
	case errors.Is(err, domain.ErrConversionInProgress):
		w.Header().Set("Retry-After", retryAfterSeconds)
		writeError(w, r, http.StatusConflict, errorBody{Code: "CONVERSION_IN_PROGRESS", Message: err.Error()})
	case errors.Is(err, domain.ErrConversionConflict):
		writeError(w, r, http.StatusConflict, errorBody{Code: "ALREADY_CONVERTED", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, errorBody{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrConversionLocked):
		writeError(w, r, http.StatusUnprocessableEntity, errorBody{Code: "CHUNK_LOCKED", Message: err.Error()})
	case errors.Is(err, domain.ErrBusinessRule):
		writeError(w, r, http.StatusUnprocessableEntity, errorBody{Code: "BUSINESS_RULE", Message: err.Error()})
	case errors.Is(err, domain.ErrTransient), errors.Is(err, domain.ErrOracleUnavailable):
		w.Header().Set("Retry-After", retryAfterSeconds)
		writeError(w, r, http.StatusServiceUnavailable, errorBody{Code: "UNAVAILABLE", Message: "temporarily unavailable, retry"})
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the response.
		log.DebugContext(r.Context(), "request cancelled", slog.String("error", err.Error()))
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, r, http.StatusInternalServerError, errorBody{Code: "INTERNAL", Message: "internal server error"})
	}
}
