package rest

import "net/http"

// Handlers groups every handler served by the API.
type Handlers struct {
	Health     *HealthHandler
	Inbox      *InboxHandler
	Chunk      *ChunkHandler
	Conversion *ConversionHandler
	Preference *PreferenceHandler
	Suggestion *SuggestionHandler
}

// NewRouter registers all routes. limitSuggest wraps the endpoint that
// calls the oracle; pass nil to leave it unlimited.
func NewRouter(h Handlers, limitSuggest func(http.Handler) http.Handler) *http.ServeMux {
	if limitSuggest == nil {
		limitSuggest = func(next http.Handler) http.Handler { return next }
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/inbox", h.Inbox.Capture)
	mux.HandleFunc("GET /api/v1/inbox", h.Inbox.List)
	mux.HandleFunc("GET /api/v1/inbox/{id}", h.Inbox.Get)
	mux.HandleFunc("PATCH /api/v1/inbox/{id}", h.Inbox.Recategorize)
	mux.HandleFunc("DELETE /api/v1/inbox/{id}", h.Inbox.Delete)
	mux.HandleFunc("POST /api/v1/inbox/{id}/triage", h.Inbox.MarkTriaged)
	mux.HandleFunc("POST /api/v1/inbox/{id}/move", h.Chunk.MoveItem)

	mux.HandleFunc("POST /api/v1/chunks", h.Chunk.Create)
	mux.HandleFunc("GET /api/v1/chunks", h.Chunk.List)
	mux.HandleFunc("GET /api/v1/chunks/{id}", h.Chunk.Get)
	mux.HandleFunc("PATCH /api/v1/chunks/{id}", h.Chunk.Update)
	mux.HandleFunc("DELETE /api/v1/chunks/{id}", h.Chunk.Delete)
	mux.HandleFunc("POST /api/v1/chunks/{id}/archive", h.Chunk.Archive)
	mux.HandleFunc("POST /api/v1/chunks/{id}/unarchive", h.Chunk.Unarchive)
	mux.HandleFunc("POST /api/v1/chunks/{id}/items", h.Chunk.AddItem)
	mux.HandleFunc("PUT /api/v1/chunks/{id}/order", h.Chunk.Reorder)
	mux.HandleFunc("DELETE /api/v1/chunk-items/{id}", h.Chunk.RemoveItem)

	mux.HandleFunc("POST /api/v1/chunks/{id}/convert", h.Conversion.Convert)
	mux.HandleFunc("GET /api/v1/chunks/{id}/conversion", h.Conversion.Status)
	mux.HandleFunc("POST /api/v1/chunks/{id}/conversion/resume", h.Conversion.Resume)

	mux.HandleFunc("GET /api/v1/preferences", h.Preference.Get)
	mux.HandleFunc("PATCH /api/v1/preferences", h.Preference.Set)

	mux.Handle("POST /api/v1/suggestions", limitSuggest(http.HandlerFunc(h.Suggestion.Start)))
	mux.HandleFunc("GET /api/v1/suggestions/{id}", h.Suggestion.Get)
	mux.HandleFunc("DELETE /api/v1/suggestions/{id}", h.Suggestion.Cancel)
	mux.HandleFunc("POST /api/v1/suggestions/{id}/apply", h.Suggestion.Apply)

	return mux
}
