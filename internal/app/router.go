package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/toneshift-backend/internal/config"
	"github.com/heartmarshall/toneshift-backend/internal/metrics"
	"github.com/heartmarshall/toneshift-backend/internal/service/studio"
	"github.com/heartmarshall/toneshift-backend/internal/transport/middleware"
	"github.com/heartmarshall/toneshift-backend/internal/transport/rest"
)

// routerDeps are the collaborators the HTTP surface needs.
type routerDeps struct {
	cfg     *config.Config
	log     *slog.Logger
	studio  *studio.Service
	health  *rest.HealthHandler
	metrics *metrics.Metrics
}

// newRouter registers all routes and wraps them in the middleware chain.
// Logger and Metrics read the matched pattern from the request, so nothing
// between them and the mux may replace the *http.Request.
func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	transformH := rest.NewTransformHandler(d.studio, d.log, d.cfg.Server.MaxBodyBytes)
	communityH := rest.NewCommunityHandler(d.studio)

	mux.HandleFunc("POST /api/transform", transformH.Post)
	mux.HandleFunc("GET /api/transform", transformH.DeepLink)
	mux.HandleFunc("GET /api/generations", communityH.List)
	mux.HandleFunc("GET /api/tones", rest.Tones())

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	var metricsMW middleware.Middleware
	if d.metrics != nil {
		mux.Handle("GET /metrics", d.metrics.Handler())
		metricsMW = middleware.Metrics(d.metrics)
	}

	return middleware.Chain(
		middleware.Recovery(d.log),
		middleware.RequestID(),
		middleware.Logger(d.log),
		metricsMW,
		middleware.CORS(d.cfg.CORS),
	)(mux)
}
