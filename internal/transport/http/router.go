// Package httptransport assembles the chi router: platform middleware,
// health and metrics endpoints, and the authenticated /v1 API surface.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"credlens/internal/platform/metrics"
	scorehandler "credlens/internal/score/handler"
	authmw "credlens/pkg/platform/middleware/auth"
	"credlens/pkg/platform/middleware/metadata"
	"credlens/pkg/platform/middleware/requestid"
	"credlens/pkg/platform/middleware/requesttime"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Validator   authmw.TokenValidator
	ScoreRoutes *scorehandler.Handler
}

// New builds the full HTTP handler.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(deps.Metrics.Middleware)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(authmw.RequireAuth(deps.Validator, deps.Logger))
		deps.ScoreRoutes.Register(v1)
	})

	return r
}
