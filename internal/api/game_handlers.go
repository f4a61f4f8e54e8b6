package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playtrackapp/playtrack-server/internal/domain"
	"github.com/playtrackapp/playtrack-server/internal/http/response"
	"github.com/playtrackapp/playtrack-server/internal/service"
)

// AddGameRequest is the payload for tracking a new game.
type AddGameRequest struct {
	Title         string   `json:"title" validate:"required"`
	CatalogID     string   `json:"catalogId"`
	Status        string   `json:"status" validate:"omitempty,oneof=backlog playing completed played"`
	Notes         string   `json:"notes"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
	CoverImageURL string   `json:"coverImageUrl"`
	ReleaseDate   string   `json:"releaseDate"`
}

// UpdateGameRequest contains fields that can be updated on a tracked game.
// Only non-nil fields are applied (true PATCH semantics).
// Note: omitempty is intentionally not used here - we need to distinguish between
// "field not provided" (nil pointer) and "field set to empty" (pointer to "").
type UpdateGameRequest struct {
	Title         *string  `json:"title"`
	Status        *string  `json:"status" validate:"omitempty,oneof=backlog playing completed played"`
	Notes         *string  `json:"notes"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=10"`
	CoverImageURL *string  `json:"coverImageUrl"`
	ReleaseDate   *string  `json:"releaseDate"`
}

// handleListGames returns every tracked game.
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.tracker.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list games", "error", err)
		response.InternalError(w, "failed to list games", s.logger)
		return
	}

	response.Success(w, games, s.logger)
}

// handleAddGame tracks a new game.
func (s *Server) handleAddGame(w http.ResponseWriter, r *http.Request) {
	var req AddGameRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	game, err := s.tracker.Add(r.Context(), service.AddParams{
		Title:         req.Title,
		CatalogID:     req.CatalogID,
		Status:        domain.Status(req.Status),
		Notes:         req.Notes,
		Rating:        req.Rating,
		CoverImageURL: req.CoverImageURL,
		ReleaseDate:   req.ReleaseDate,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, game, s.logger)
}

// handleUpdateGame applies a partial update to one tracked game.
func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	var req UpdateGameRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	params := service.UpdateParams{
		Title:         req.Title,
		Notes:         req.Notes,
		Rating:        req.Rating,
		CoverImageURL: req.CoverImageURL,
		ReleaseDate:   req.ReleaseDate,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		params.Status = &status
	}

	game, err := s.tracker.Update(r.Context(), gameID, params)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, game, s.logger)
}

// handleDeleteGame permanently removes a tracked game.
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	if err := s.tracker.Delete(r.Context(), gameID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
