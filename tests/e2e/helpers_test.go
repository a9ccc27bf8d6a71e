//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/toneshift-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/toneshift-backend/internal/adapter/postgres/transformation"
	"github.com/heartmarshall/toneshift-backend/internal/config"
	"github.com/heartmarshall/toneshift-backend/internal/domain"
	"github.com/heartmarshall/toneshift-backend/internal/metrics"
	"github.com/heartmarshall/toneshift-backend/internal/service/community"
	"github.com/heartmarshall/toneshift-backend/internal/service/studio"
	"github.com/heartmarshall/toneshift-backend/internal/service/transform"
	"github.com/heartmarshall/toneshift-backend/internal/transport/middleware"
	"github.com/heartmarshall/toneshift-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Studio *studio.Service
	Gen    *scriptedGenerator
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// scriptedGenerator stands in for the hosted model. It echoes the quoted
// input text back with a prefix unless told to fail.
type scriptedGenerator struct {
	mu   sync.Mutex
	fail bool
}

func (g *scriptedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fail {
		return "", domain.ErrEmptyGeneration
	}
	_, quoted, _ := strings.Cut(prompt, `: "`)
	return "rewritten: " + strings.TrimSuffix(quoted, `"`), nil
}

func (g *scriptedGenerator) Model() string { return "scripted" }

func (g *scriptedGenerator) SetFail(fail bool) {
	g.mu.Lock()
	g.fail = fail
	g.mu.Unlock()
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper) and a scripted model.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.Truncate(t, pool)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	repo := transformation.New(pool)
	gen := &scriptedGenerator{}
	m := metrics.New()

	studioSvc := studio.NewService(logger,
		transform.NewService(logger, gen),
		community.NewService(logger, repo),
		m,
		5*time.Second,
	)
	t.Cleanup(studioSvc.Wait)

	transformH := rest.NewTransformHandler(studioSvc, logger, 1<<16)
	communityH := rest.NewCommunityHandler(studioSvc)
	healthH := rest.NewHealthHandler(repo, config.DriverPostgres, "e2e")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/transform", transformH.Post)
	mux.HandleFunc("GET /api/transform", transformH.DeepLink)
	mux.HandleFunc("GET /api/generations", communityH.List)
	mux.HandleFunc("GET /api/tones", rest.Tones())
	mux.HandleFunc("GET /live", healthH.Live)
	mux.HandleFunc("GET /ready", healthH.Ready)
	mux.HandleFunc("GET /health", healthH.Health)
	mux.Handle("GET /metrics", m.Handler())

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(m),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         3600,
		}),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Studio: studioSvc,
		Gen:    gen,
	}
}

// postTransform sends a transform request and decodes the JSON body.
func (ts *testServer) postTransform(t *testing.T, text, tone string) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(map[string]string{"text": text, "tone": tone})
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+"/api/transform", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp.Body)
}

// getJSON issues a GET and decodes the JSON body.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp.Body)
}

// feed waits for pending appends and returns the community feed.
func (ts *testServer) feed(t *testing.T, query string) []any {
	t.Helper()
	ts.Studio.Wait()

	status, body := ts.getJSON(t, "/api/generations"+query)
	require.Equal(t, http.StatusOK, status)

	gens, ok := body["generations"].([]any)
	require.True(t, ok, "expected generations array")
	return gens
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}
