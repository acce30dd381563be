package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/service/vocabulary"
)

type vocabularyService interface {
	Save(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error)
	List(ctx context.Context, input vocabulary.ListInput) ([]domain.VocabularyEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
	Counts(ctx context.Context) (domain.VocabularyCounts, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ResetExported(ctx context.Context, ids []uuid.UUID) (int, error)
}

// VocabularyHandler serves the user's saved phrases.
type VocabularyHandler struct {
	svc vocabularyService
	log *slog.Logger
}

// NewVocabularyHandler creates a VocabularyHandler.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type saveVocabularyRequest struct {
	Phrase             string  `json:"phrase"`
	Definition         string  `json:"definition"`
	Example            string  `json:"example"`
	ExampleTranslation string  `json:"exampleTranslation"`
	Infinitive         *string `json:"infinitive"`
	Notes              *string `json:"notes"`
	StoryID            *string `json:"storyId"`
	Context            *string `json:"context"`
}

type idsRequest struct {
	IDs []string `json:"ids"`
}

type vocabularyResponse struct {
	ID                 string     `json:"id"`
	Phrase             string     `json:"phrase"`
	Definition         string     `json:"definition"`
	Example            string     `json:"example"`
	ExampleTranslation string     `json:"exampleTranslation"`
	Infinitive         *string    `json:"infinitive"`
	Notes              *string    `json:"notes"`
	Context            *string    `json:"context"`
	StoryID            *string    `json:"storyId"`
	ExportedAt         *time.Time `json:"exportedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type countsResponse struct {
	Total       int `json:"total"`
	NotExported int `json:"notExported"`
}

type affectedResponse struct {
	Affected int `json:"affected"`
}

// Save handles PUT /api/vocabulary. Saving a phrase twice updates the
// existing entry.
func (h *VocabularyHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveVocabularyRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	input := vocabulary.SaveInput{
		Phrase:             req.Phrase,
		Definition:         req.Definition,
		Example:            req.Example,
		ExampleTranslation: req.ExampleTranslation,
		Infinitive:         req.Infinitive,
		Notes:              req.Notes,
		Context:            req.Context,
	}
	if req.StoryID != nil && *req.StoryID != "" {
		id, err := uuid.Parse(*req.StoryID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("storyId", "must be a valid id"))
			return
		}
		input.StoryID = &id
	}

	entry, err := h.svc.Save(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVocabularyResponse(entry))
}

// List handles GET /api/vocabulary?mode=new&storyId=...&limit=50&offset=0.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := vocabulary.ListInput{
		Mode:   domain.ExportMode(q.Get("mode")),
		Limit:  limit,
		Offset: offset,
	}
	if v := q.Get("storyId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("storyId", "must be a valid id"))
			return
		}
		input.StoryID = &id
	}

	entries, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]vocabularyResponse, len(entries))
	for i := range entries {
		resp[i] = toVocabularyResponse(&entries[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/vocabulary/{id}.
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVocabularyResponse(entry))
}

// Counts handles GET /api/vocabulary/counts.
func (h *VocabularyHandler) Counts(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Counts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, countsResponse{Total: c.Total, NotExported: c.NotExported})
}

// Delete handles DELETE /api/vocabulary/{id}.
func (h *VocabularyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ResetExported handles POST /api/vocabulary/reset-export so the given
// entries are included in the next "new" export again.
func (h *VocabularyHandler) ResetExported(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	ids, err := parseUUIDs("ids", req.IDs)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.svc.ResetExported(r.Context(), ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, affectedResponse{Affected: n})
}

func toVocabularyResponse(e *domain.VocabularyEntry) vocabularyResponse {
	resp := vocabularyResponse{
		ID:                 e.ID.String(),
		Phrase:             e.Phrase,
		Definition:         e.Definition,
		Example:            e.Example,
		ExampleTranslation: e.ExampleTranslation,
		Infinitive:         e.Infinitive,
		Notes:              e.Notes,
		Context:            e.Context,
		ExportedAt:         e.ExportedAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	if e.StoryID != nil {
		s := e.StoryID.String()
		resp.StoryID = &s
	}
	return resp
}
