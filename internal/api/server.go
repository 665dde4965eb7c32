// Copyright (c) 2026 Our Philly. All rights reserved.

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

	"github.com/ourphilly/ourphilly/internal/core/area"
	"github.com/ourphilly/ourphilly/internal/core/bigboard"
	"github.com/ourphilly/ourphilly/internal/core/event"
	"github.com/ourphilly/ourphilly/internal/core/group"
	"github.com/ourphilly/ourphilly/internal/core/series"
	"github.com/ourphilly/ourphilly/internal/core/tag"
	"github.com/ourphilly/ourphilly/internal/core/tradition"
	"github.com/ourphilly/ourphilly/internal/digest"
	"github.com/ourphilly/ourphilly/internal/feed"
	"github.com/ourphilly/ourphilly/internal/platform/config"
	"github.com/ourphilly/ourphilly/internal/platform/constants"
	"github.com/ourphilly/ourphilly/internal/platform/middleware"
	"github.com/ourphilly/ourphilly/internal/users/auth"
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
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles authentication routes (login, register).
	Auth *auth.Handler

	// Feed serves the unified happenings feed.
	Feed *feed.Handler

	// Event handles curated single-day and multi-day listings.
	Event *event.Handler

	// Tradition handles the annual traditions catalogue.
	Tradition *tradition.Handler

	// BigBoard handles community flyer submissions.
	BigBoard *bigboard.Handler

	// Group manages community groups, their events, and following.
	Group *group.Handler

	// Series manages recurring series and occurrence detail pages.
	Series *series.Handler

	// Tag serves the taxonomy with seasonal activation.
	Tag *tag.Handler

	// Area serves the neighborhood directory.
	Area *area.Handler

	// Digest exposes the admin trigger for the weekly email digest.
	Digest *digest.Handler
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
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/feed", h.Feed.Routes())
		api.Mount("/events", h.Event.Routes())
		api.Mount("/traditions", h.Tradition.Routes())
		api.Mount("/big-board", h.BigBoard.Routes())
		api.Mount("/groups", h.Group.Routes())
		api.Mount("/series", h.Series.Routes())
		api.Mount("/tags", h.Tag.Routes())
		api.Mount("/areas", h.Area.Routes())
		api.Mount("/digest", h.Digest.Routes())
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
