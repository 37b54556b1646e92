// Package server wires the HTTP API: search and follow-up endpoints, health
// and metrics, and optional static file serving for the frontend bundle.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"search-relay/internal/cache"
	apierrors "search-relay/internal/common/errors"
	"search-relay/internal/common/logger"
	"search-relay/internal/common/observability"
	"search-relay/internal/gemini"
	"search-relay/internal/markdown"
	"search-relay/internal/session"
)

// Server holds the router and the dependencies shared by all handlers.
type Server struct {
	Router chi.Router

	log       logger.Logger
	gemini    gemini.Client
	formatter *markdown.Formatter
	sessions  *session.Registry
	cache     cache.Cache
	errs      *apierrors.ErrorHandler
	obs       *observability.Observability
	staticDir string
}

// Config holds the dependencies for creating a new Server.
type Config struct {
	Logger        logger.Logger
	Gemini        gemini.Client
	Sessions      *session.Registry
	Cache         cache.Cache
	Observability *observability.Observability
	StaticDir     string
}

// New creates a chi router with all routes configured.
func New(cfg Config) *Server {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)

	c := cfg.Cache
	if c == nil {
		c = cache.Disabled{}
	}

	s := &Server{
		Router:    r,
		log:       cfg.Logger,
		gemini:    cfg.Gemini,
		formatter: markdown.New(),
		sessions:  cfg.Sessions,
		cache:     c,
		errs:      apierrors.NewErrorHandler(cfg.Logger),
		obs:       cfg.Observability,
		staticDir: cfg.StaticDir,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.Router

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(s.requestLogger)
		r.Get("/search", s.handleSearch)
		r.Post("/follow-up", s.handleFollowUp)
	})

	if s.staticDir != "" {
		s.setupStatic()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("Failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
