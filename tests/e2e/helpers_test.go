//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/robdix/spanish-reading/internal/adapter/postgres/testhelper"
	"github.com/robdix/spanish-reading/internal/app"
	"github.com/robdix/spanish-reading/internal/auth"
	"github.com/robdix/spanish-reading/internal/config"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "test-issuer"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.Validator
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application handler backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: testJWTSecret, JWTIssuer: testJWTIssuer},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		Reading: config.ReadingConfig{ContextWindow: 20, DefaultTimezone: "UTC"},
		Export:  config.ExportConfig{DefaultMappingsRaw: "phrase|definition", FieldSeparator: "<br>", MaxEntries: 1000},
		Import:  config.ImportConfig{MaxBodyBytes: 1 << 20, RateLimitPerMinute: 2},
	}
	require.NoError(t, cfg.Validate())

	handler, cleanup := app.NewHandler(cfg, pool, logger)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    auth.NewValidator(testJWTSecret, testJWTIssuer),
	}
}

// newUser returns a fresh user ID and an access token for it. Users live in
// the identity provider, so nothing is inserted.
func (ts *testServer) newUser(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	userID := testhelper.NewUserID()
	tok, err := ts.jwt.Sign(userID, 15*time.Minute)
	require.NoError(t, err)
	return userID, tok
}

// restRequest sends a JSON request and returns the response. body may be
// nil; the caller closes the response body.
func (ts *testServer) restRequest(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// restJSON sends a request, checks the status and decodes the JSON body.
func (ts *testServer) restJSON(t *testing.T, method, path, token string, body any, wantStatus int) map[string]any {
	t.Helper()

	resp := ts.restRequest(t, method, path, token, body)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, string(raw))

	var result map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &result))
	}
	return result
}
