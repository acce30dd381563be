package story

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

// autoTitleLen is the length of a title derived from the content.
const autoTitleLen = 50

// Create stores a story for reading. The text is normalized to NFC.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Story, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	content := domain.NormalizeContent(input.Content)

	title := ""
	if input.Title != nil {
		title = domain.NormalizeContent(*input.Title)
	}
	if title == "" {
		title = deriveTitle(content)
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = domain.ContentTypeStory
	}

	story, err := s.stories.Create(ctx, domain.Story{
		ID:          uuid.New(),
		Title:       title,
		Content:     content,
		Difficulty:  input.Difficulty,
		ContentType: contentType,
		WordCount:   domain.CountWords(content),
		SourceURL:   input.SourceURL,
		CreatedBy:   &userID,
	})
	if err != nil {
		return nil, fmt.Errorf("story.Create: %w", err)
	}

	s.log.InfoContext(ctx, "story created",
		slog.String("user_id", userID.String()),
		slog.String("story_id", story.ID.String()),
		slog.String("content_type", story.ContentType.String()),
		slog.Int("word_count", story.WordCount),
	)

	return story, nil
}

// placeholderURL resolves relative links when a page has no known address.
var placeholderURL = &url.URL{Scheme: "http", Host: "localhost"}

// ImportArticle extracts the readable text of an HTML page and stores it as
// a news story.
func (s *Service) ImportArticle(ctx context.Context, input ImportInput) (*domain.Story, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pageURL := placeholderURL
	var sourceURL *string
	if input.SourceURL != "" {
		u, err := url.Parse(input.SourceURL)
		if err != nil {
			return nil, domain.NewValidationError("source_url", "must be an absolute URL")
		}
		pageURL = u
		sourceURL = &input.SourceURL
	}

	article, err := readability.FromReader(bytes.NewReader([]byte(input.HTML)), pageURL)
	if err != nil {
		return nil, domain.NewValidationError("html", "no readable article found")
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, domain.NewValidationError("html", "no readable article found")
	}

	title := strings.TrimSpace(article.Title)
	if utf8.RuneCountInString(title) > maxTitleLen {
		title = string([]rune(title)[:maxTitleLen])
	}
	var titlePtr *string
	if title != "" {
		titlePtr = &title
	}

	story, err := s.Create(ctx, CreateInput{
		Title:       titlePtr,
		Content:     article.TextContent,
		Difficulty:  input.Difficulty,
		ContentType: domain.ContentTypeNews,
		SourceURL:   sourceURL,
	})
	if err != nil {
		return nil, fmt.Errorf("story.ImportArticle: %w", err)
	}

	return story, nil
}

// deriveTitle returns the first non-empty line of content, cut to
// autoTitleLen characters.
func deriveTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) > autoTitleLen {
			return strings.TrimSpace(string([]rune(line)[:autoTitleLen]))
		}
		return line
	}
	return "Untitled"
}
