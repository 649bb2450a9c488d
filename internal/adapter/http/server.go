package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/nws-alerts-viewer/internal/domain"
	"github.com/couchcryptid/nws-alerts-viewer/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Runner executes one fetch-normalize pass for the raw region input.
type Runner interface {
	Run(ctx context.Context, input string) (domain.Result, error)
}

// Server exposes the alert viewer plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	runner     Runner
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /, /alerts.csv, /healthz, /readyz, and /metrics routes.
func NewServer(addr string, runner Runner, ready sharedobs.ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	r := chi.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		runner: runner,
		logger: logger,
	}

	r.Use(requestLogger(logger))
	r.Use(prometheusMiddleware(metrics))

	r.Get("/", s.handlePage)
	r.Get("/alerts.csv", s.handleDownload)
	r.Get("/healthz", sharedobs.LivenessHandler())
	r.Get("/readyz", sharedobs.ReadinessHandler(ready))
	r.Handle("/metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
