package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/service/story"
)

type storyService interface {
	Create(ctx context.Context, input story.CreateInput) (*domain.Story, error)
	ImportArticle(ctx context.Context, input story.ImportInput) (*domain.Story, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	List(ctx context.Context, input story.ListInput) ([]domain.Story, error)
	Tokens(ctx context.Context, id uuid.UUID) ([]domain.Token, error)
	Lookup(ctx context.Context, id uuid.UUID, input story.LookupInput) (story.LookupResult, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) (story.MarkAsReadResult, error)
}

// StoryHandler serves the story library and the reader.
type StoryHandler struct {
	svc         storyService
	log         *slog.Logger
	importLimit int64
}

// NewStoryHandler creates a StoryHandler. importLimit bounds the body of an
// article upload.
func NewStoryHandler(svc storyService, logger *slog.Logger, importLimit int64) *StoryHandler {
	if importLimit <= 0 {
		importLimit = maxRequestBody
	}
	return &StoryHandler{svc: svc, log: logger.With("handler", "story"), importLimit: importLimit}
}

type createStoryRequest struct {
	Title       *string `json:"title"`
	Content     string  `json:"content"`
	Difficulty  *string `json:"difficulty"`
	ContentType string  `json:"contentType"`
	SourceURL   *string `json:"sourceUrl"`
}

type importStoryRequest struct {
	HTML       string  `json:"html"`
	SourceURL  string  `json:"sourceUrl"`
	Difficulty *string `json:"difficulty"`
}

type lookupRequest struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type storyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content,omitempty"`
	Difficulty  *string   `json:"difficulty"`
	ContentType string    `json:"contentType"`
	WordCount   int       `json:"wordCount"`
	SourceURL   *string   `json:"sourceUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type lookupResponse struct {
	Phrase    string `json:"phrase"`
	Context   string `json:"context"`
	Highlight []int  `json:"highlight"`
}

type markReadResponse struct {
	Status      string             `json:"status"`
	CompletedAt *time.Time         `json:"completedAt"`
	AlreadyRead bool               `json:"alreadyRead"`
	Today       *dailyStatResponse `json:"today,omitempty"`
}

// Create handles POST /api/stories.
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStoryRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	s, err := h.svc.Create(r.Context(), story.CreateInput{
		Title:       req.Title,
		Content:     req.Content,
		Difficulty:  optionalDifficulty(req.Difficulty),
		ContentType: domain.ContentType(req.ContentType),
		SourceURL:   req.SourceURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStoryResponse(s, true))
}

// Import handles POST /api/stories/import with an uploaded HTML page.
func (h *StoryHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importStoryRequest
	if !decodeJSON(w, r, h.importLimit, &req) {
		return
	}

	s, err := h.svc.ImportArticle(r.Context(), story.ImportInput{
		HTML:       req.HTML,
		SourceURL:  req.SourceURL,
		Difficulty: optionalDifficulty(req.Difficulty),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStoryResponse(s, true))
}

// List handles GET /api/stories?difficulty=A2&contentType=news&limit=20&offset=0.
// Content is omitted from listings.
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
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

	input := story.ListInput{Limit: limit, Offset: offset}
	if v := q.Get("difficulty"); v != "" {
		d := domain.Difficulty(v)
		input.Difficulty = &d
	}
	if v := q.Get("contentType"); v != "" {
		ct := domain.ContentType(v)
		input.ContentType = &ct
	}

	stories, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]storyResponse, len(stories))
	for i := range stories {
		resp[i] = toStoryResponse(&stories[i], false)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/stories/{id}.
func (h *StoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStoryResponse(s, true))
}

// Tokens handles GET /api/stories/{id}/tokens.
func (h *StoryHandler) Tokens(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tokens, err := h.svc.Tokens(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

// Lookup handles POST /api/stories/{id}/lookup.
func (h *StoryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req lookupRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	res, err := h.svc.Lookup(r.Context(), id, story.LookupInput{Start: req.Start, End: req.End})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	highlight := res.Highlight
	if highlight == nil {
		highlight = []int{}
	}
	writeJSON(w, http.StatusOK, lookupResponse{Phrase: res.Phrase, Context: res.Context, Highlight: highlight})
}

// MarkRead handles POST /api/stories/{id}/read.
func (h *StoryHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.MarkAsRead(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := markReadResponse{
		Status:      res.UserStory.Status.String(),
		CompletedAt: res.UserStory.CompletedAt,
		AlreadyRead: res.AlreadyRead,
	}
	if res.DailyStat != nil {
		today := toDailyStatResponse(*res.DailyStat)
		resp.Today = &today
	}
	writeJSON(w, http.StatusOK, resp)
}

func toStoryResponse(s *domain.Story, withContent bool) storyResponse {
	resp := storyResponse{
		ID:          s.ID.String(),
		Title:       s.Title,
		ContentType: s.ContentType.String(),
		WordCount:   s.WordCount,
		SourceURL:   s.SourceURL,
		CreatedAt:   s.CreatedAt,
	}
	if withContent {
		resp.Content = s.Content
	}
	if s.Difficulty != nil {
		d := s.Difficulty.String()
		resp.Difficulty = &d
	}
	return resp
}
