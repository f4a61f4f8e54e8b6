package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/playtrackapp/playtrack-server/internal/http/response"
)

// handleCatalogSearch proxies a search query to the game catalog provider.
func (s *Server) handleCatalogSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	result, err := s.catalog.Search(r.Context(), query, page)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, result, s.logger)
}

// handleCatalogGame fetches full details for one catalog entry.
func (s *Server) handleCatalogGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	details, err := s.catalog.GameDetails(r.Context(), gameID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, details, s.logger)
}
