// Package server wires the admin HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/unlimited-inventories/internal/handler"
	"github.com/osse101/unlimited-inventories/internal/inventory"
	"github.com/osse101/unlimited-inventories/internal/metrics"
)

// Options configures NewServer
type Options struct {
	Port           int
	APIKey         string
	Version        string
	TrustedProxies []string
	Store          inventory.Service
	DB             handler.Pinger
}

// Server is the admin HTTP server
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Middleware runs outermost first.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware)
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.DB))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	tracker := NewFailedAuthTracker()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, tracker))

		r.Get("/settings", handler.HandleGetSettings(opts.Store))

		r.Route("/users/{"+handler.ParamUserID+"}/snapshots", func(r chi.Router) {
			r.Get("/", handler.HandleListSnapshots(opts.Store))
			r.Get("/{"+handler.ParamName+"}", handler.HandleGetSnapshot(opts.Store))
			r.Delete("/{"+handler.ParamName+"}", handler.HandleDeleteSnapshot(opts.Store))
		})
	})

	return r
}

// Start serves until Stop is called. It returns http.ErrServerClosed after a
// graceful stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
