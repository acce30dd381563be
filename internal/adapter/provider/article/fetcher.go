// Package article downloads web pages for the article importer.
package article

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/robdix/spanish-reading/internal/config"
)

// ErrTooLarge is returned when a page exceeds the configured size limit.
var ErrTooLarge = errors.New("article: page too large")

// retryDelay is the pause before the single retry.
var retryDelay = 500 * time.Millisecond

// Fetcher downloads HTML pages with a size limit.
type Fetcher struct {
	httpClient *http.Client
	maxBytes   int64
	userAgent  string
	log        *slog.Logger
}

// NewFetcher creates a Fetcher from the import settings.
func NewFetcher(logger *slog.Logger, cfg config.ImportConfig) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		maxBytes:   cfg.MaxBodyBytes,
		userAgent:  cfg.UserAgent,
		log:        logger.With("adapter", "article"),
	}
}

// Fetch returns the body of the page at rawURL and the parsed URL.
// Only http and https URLs are accepted.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, *url.URL, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		return nil, nil, fmt.Errorf("article: invalid url %q", rawURL)
	}

	f.log.DebugContext(ctx, "article request", slog.String("url", rawURL))

	resp, err := f.doWithRetry(ctx, pageURL.String())
	if err != nil {
		f.log.ErrorContext(ctx, "article request failed", slog.String("url", rawURL), slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("article: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("article: unexpected status %d", resp.StatusCode)
	}

	if resp.ContentLength > f.maxBytes {
		return nil, nil, fmt.Errorf("%w: content-length %d exceeds %d bytes", ErrTooLarge, resp.ContentLength, f.maxBytes)
	}

	// One extra byte tells a body of exactly maxBytes from a longer one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, nil, fmt.Errorf("article: read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, nil, fmt.Errorf("%w: body exceeds %d bytes", ErrTooLarge, f.maxBytes)
	}

	f.log.DebugContext(ctx, "article response",
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	return body, pageURL, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (f *Fetcher) doWithRetry(ctx context.Context, rawURL string) (*http.Response, error) {
	resp, err := f.do(ctx, rawURL)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	f.log.WarnContext(ctx, "article retry", slog.String("url", rawURL), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return f.do(ctx, rawURL)
}

func (f *Fetcher) do(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	return f.httpClient.Do(req)
}
