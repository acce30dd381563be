package rest

import (
	"log/slog"
	"net/http"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/reading"
)

// maxContextWindow bounds the window a client may ask for.
const maxContextWindow = 1000

// TextHandler exposes the tokenizer and context extraction for texts that
// are not stored as stories.
type TextHandler struct {
	log           *slog.Logger
	contextWindow int
}

// NewTextHandler creates a TextHandler. contextWindow is used when a request
// does not set one.
func NewTextHandler(logger *slog.Logger, contextWindow int) *TextHandler {
	if contextWindow <= 0 {
		contextWindow = reading.DefaultContextWindow
	}
	return &TextHandler{log: logger.With("handler", "text"), contextWindow: contextWindow}
}

type tokenizeRequest struct {
	Text string `json:"text"`
}

type tokenizeResponse struct {
	Tokens    []domain.Token `json:"tokens"`
	WordCount int            `json:"wordCount"`
}

type contextRequest struct {
	Text   string `json:"text"`
	Phrase string `json:"phrase"`
	// Start and End select the phrase by token index when Phrase is empty.
	Start  *int `json:"start"`
	End    *int `json:"end"`
	Window *int `json:"window"`
}

type contextResponse struct {
	Phrase  string `json:"phrase"`
	Context string `json:"context"`
}

// Tokenize handles POST /api/text/tokenize.
func (h *TextHandler) Tokenize(w http.ResponseWriter, r *http.Request) {
	var req tokenizeRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	tokens := reading.Tokenize(domain.NormalizeContent(req.Text))

	words := 0
	for _, t := range tokens {
		if t.IsWord {
			words++
		}
	}
	if tokens == nil {
		tokens = []domain.Token{}
	}

	writeJSON(w, http.StatusOK, tokenizeResponse{Tokens: tokens, WordCount: words})
}

// Context handles POST /api/text/context.
func (h *TextHandler) Context(w http.ResponseWriter, r *http.Request) {
	var req contextRequest
	if !decodeJSON(w, r, maxRequestBody, &req) {
		return
	}

	window := h.contextWindow
	if req.Window != nil {
		if *req.Window < 0 || *req.Window > maxContextWindow {
			handleError(h.log, w, r, domain.NewValidationError("window", "must be between 0 and 1000"))
			return
		}
		window = *req.Window
	}

	text := domain.NormalizeContent(req.Text)
	phrase := domain.NormalizePhrase(req.Phrase)

	if phrase == "" && req.Start != nil && req.End != nil {
		phrase = reading.ResolveSelection(reading.Tokenize(text), *req.Start, *req.End)
	}
	if phrase == "" {
		handleError(h.log, w, r, domain.NewValidationError("phrase", "required"))
		return
	}

	writeJSON(w, http.StatusOK, contextResponse{
		Phrase:  phrase,
		Context: reading.ExtractContext(text, phrase, window),
	})
}
