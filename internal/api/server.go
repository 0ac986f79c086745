// Copyright (c) 2026 Manara. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/manaracms/manara/internal/content/news"
	"github.com/manaracms/manara/internal/content/partnership"
	"github.com/manaracms/manara/internal/content/photo"
	"github.com/manaracms/manara/internal/content/topic"
	"github.com/manaracms/manara/internal/content/video"
	"github.com/manaracms/manara/internal/platform/config"
	"github.com/manaracms/manara/internal/platform/constants"
	"github.com/manaracms/manara/internal/platform/middleware"
	"github.com/manaracms/manara/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 whenever the process
	// is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 only when every
	// backend dependency answers a ping.
	Readiness http.HandlerFunc

	// Auth handles the administrator identity routes.
	Auth *auth.Handler

	// News handles articles, including the featured homepage slice.
	News *news.Handler

	// Topic handles the informational homepage sections.
	Topic *topic.Handler

	// Video handles YouTube embeds.
	Video *video.Handler

	// Partnership handles partner organization listings.
	Partnership *partnership.Handler

	// Photo handles the image gallery.
	Photo *photo.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg, cfg.ExtraOrigins))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under the /api prefix the SPA expects.
	r.Route("/api", func(api chi.Router) {
		api.Mount("/users", h.Auth.UserRoutes())
		api.Mount("/auth", h.Auth.AuthRoutes())

		api.Route("/news", h.News.RegisterRoutes)
		api.Route("/topics", h.Topic.RegisterRoutes)
		api.Route("/videos", h.Video.RegisterRoutes)
		api.Route("/partnerships", h.Partnership.RegisterRoutes)
		api.Route("/photos", h.Photo.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
