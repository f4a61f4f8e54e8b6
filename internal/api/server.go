// Package api provides the HTTP API server and handlers for PlayTrack.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/playtrackapp/playtrack-server/internal/catalog"
	"github.com/playtrackapp/playtrack-server/internal/http/response"
	"github.com/playtrackapp/playtrack-server/internal/service"
	"github.com/playtrackapp/playtrack-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	tracker   *service.TrackerService
	catalog   *catalog.Client
	validator *validation.Validator
	router    *chi.Mux
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(tracker *service.TrackerService, catalogClient *catalog.Client, logger *slog.Logger) *Server {
	s := &Server{
		tracker:   tracker,
		catalog:   catalogClient,
		validator: validation.New(),
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", s.handleListGames)
			r.Post("/", s.handleAddGame)
			r.Patch("/{id}", s.handleUpdateGame)
			r.Delete("/{id}", s.handleDeleteGame)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/search", s.handleCatalogSearch)
			r.Get("/games/{id}", s.handleCatalogGame)
		})
	})
}

// handleHealthCheck reports server liveness.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "ok"}, s.logger)
}
