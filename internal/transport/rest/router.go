package rest

import "net/http"

// Handlers groups every REST handler served by the API.
type Handlers struct {
	Health     *HealthHandler
	Progress   *ProgressHandler
	Story      *StoryHandler
	Text       *TextHandler
	Vocabulary *VocabularyHandler
	Export     *ExportHandler
}

// NewRouter registers all routes. Probes are public; everything under /api
// is wrapped with protect. Article uploads are additionally wrapped with
// limitImport.
func NewRouter(h Handlers, protect, limitImport func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	api := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, protect(fn))
	}

	api("POST /api/reading-events", h.Progress.LogReading)
	api("GET /api/stats/overview", h.Progress.Overview)
	api("GET /api/stats/calendar", h.Progress.Calendar)
	api("PUT /api/goals/daily", h.Progress.SetDailyGoal)
	api("PUT /api/goals/overall", h.Progress.SetOverallGoal)
	api("PUT /api/settings/timezone", h.Progress.SetTimezone)

	api("POST /api/stories", h.Story.Create)
	mux.Handle("POST /api/stories/import", protect(limitImport(http.HandlerFunc(h.Story.Import))))
	api("GET /api/stories", h.Story.List)
	api("GET /api/stories/{id}", h.Story.Get)
	api("GET /api/stories/{id}/tokens", h.Story.Tokens)
	api("POST /api/stories/{id}/lookup", h.Story.Lookup)
	api("POST /api/stories/{id}/read", h.Story.MarkRead)

	api("POST /api/text/tokenize", h.Text.Tokenize)
	api("POST /api/text/context", h.Text.Context)

	api("PUT /api/vocabulary", h.Vocabulary.Save)
	api("GET /api/vocabulary", h.Vocabulary.List)
	api("GET /api/vocabulary/counts", h.Vocabulary.Counts)
	api("GET /api/vocabulary/{id}", h.Vocabulary.Get)
	api("DELETE /api/vocabulary/{id}", h.Vocabulary.Delete)
	api("POST /api/vocabulary/reset-export", h.Vocabulary.ResetExported)
	api("POST /api/vocabulary/export", h.Export.Export)

	return mux
}
