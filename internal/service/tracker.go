// Package service implements the tracking business rules on top of the store.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/playtrackapp/playtrack-server/internal/domain"
	domainerrors "github.com/playtrackapp/playtrack-server/internal/errors"
	"github.com/playtrackapp/playtrack-server/internal/id"
	"github.com/playtrackapp/playtrack-server/internal/store"
)

// TrackerService owns every read and write of the tracked-game collection.
// All mutations funnel through Store.Update so concurrent callers cannot
// lose each other's writes.
type TrackerService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewTrackerService creates a new TrackerService.
func NewTrackerService(st *store.Store, logger *slog.Logger) *TrackerService {
	return &TrackerService{
		store:  st,
		logger: logger,
	}
}

// AddParams are the caller-supplied fields for a new tracked game.
// Status defaults to backlog when empty.
type AddParams struct {
	Title         string
	CatalogID     string
	Status        domain.Status
	Notes         string
	Rating        *float64
	CoverImageURL string
	ReleaseDate   string
}

// UpdateParams is the partial-update whitelist. Nil pointers leave the
// corresponding field untouched.
type UpdateParams struct {
	Title         *string
	Status        *domain.Status
	Notes         *string
	Rating        *float64
	CoverImageURL *string
	ReleaseDate   *string
}

// List returns every tracked game. Order is unspecified; callers sort.
func (s *TrackerService) List(ctx context.Context) ([]domain.Game, error) {
	return s.store.List(ctx)
}

// Add creates a new tracked game. It fails with a conflict error when the
// collection already holds a matching record: by catalog id when both sides
// carry one, otherwise by case-insensitive title.
func (s *TrackerService) Add(ctx context.Context, params AddParams) (domain.Game, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return domain.Game{}, domainerrors.Validation("title is required")
	}

	status := params.Status
	if status == "" {
		status = domain.DefaultStatus
	}
	if !status.Valid() {
		return domain.Game{}, domainerrors.Validation("invalid status: " + string(status))
	}

	var created domain.Game
	err := s.store.Update(ctx, func(games []domain.Game) ([]domain.Game, error) {
		for _, g := range games {
			if isDuplicate(g, params.CatalogID, title) {
				return nil, domainerrors.Conflict("game is already tracked: " + g.Title)
			}
		}

		now := time.Now().UTC()
		created = domain.Game{
			ID:            id.MustGenerate("game"),
			CatalogID:     params.CatalogID,
			Title:         title,
			Status:        status,
			Notes:         params.Notes,
			Rating:        params.Rating,
			CoverImageURL: params.CoverImageURL,
			ReleaseDate:   params.ReleaseDate,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if status == domain.StatusCompleted {
			created.CompletedAt = &now
		}

		return append(games, created), nil
	})
	if err != nil {
		return domain.Game{}, err
	}

	s.logger.Info("game added", "id", created.ID, "title", created.Title, "status", created.Status)
	return created, nil
}

// Update applies a partial update to one tracked game and returns the full
// updated record.
//
// The completion timestamp follows the incoming status value alone: a
// completed status sets it when unset and re-submitting completed leaves it
// in place, while any other incoming status clears it regardless of what
// the record held before.
func (s *TrackerService) Update(ctx context.Context, gameID string, params UpdateParams) (domain.Game, error) {
	if params.Status != nil && !params.Status.Valid() {
		return domain.Game{}, domainerrors.Validation("invalid status: " + string(*params.Status))
	}

	var updated domain.Game
	err := s.store.Update(ctx, func(games []domain.Game) ([]domain.Game, error) {
		idx := indexByID(games, gameID)
		if idx < 0 {
			return nil, domainerrors.NotFound("game not found: " + gameID)
		}

		g := games[idx]
		now := time.Now().UTC()

		if params.Title != nil {
			g.Title = *params.Title
		}
		if params.Status != nil {
			g.Status = *params.Status
			if *params.Status == domain.StatusCompleted {
				if g.CompletedAt == nil {
					g.CompletedAt = &now
				}
			} else {
				g.CompletedAt = nil
			}
		}
		if params.Notes != nil {
			g.Notes = *params.Notes
		}
		if params.Rating != nil {
			g.Rating = params.Rating
		}
		if params.CoverImageURL != nil {
			g.CoverImageURL = *params.CoverImageURL
		}
		if params.ReleaseDate != nil {
			g.ReleaseDate = *params.ReleaseDate
		}
		g.UpdatedAt = now

		games[idx] = g
		updated = g
		return games, nil
	})
	if err != nil {
		return domain.Game{}, err
	}

	s.logger.Info("game updated", "id", updated.ID, "status", updated.Status)
	return updated, nil
}

// Delete permanently removes a tracked game.
func (s *TrackerService) Delete(ctx context.Context, gameID string) error {
	err := s.store.Update(ctx, func(games []domain.Game) ([]domain.Game, error) {
		idx := indexByID(games, gameID)
		if idx < 0 {
			return nil, domainerrors.NotFound("game not found: " + gameID)
		}
		return append(games[:idx], games[idx+1:]...), nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("game deleted", "id", gameID)
	return nil
}

// isDuplicate reports whether an existing record matches a prospective add.
// Catalog ids win when both sides have one; otherwise titles are compared
// case-insensitively.
func isDuplicate(existing domain.Game, catalogID, title string) bool {
	if catalogID != "" && existing.CatalogID != "" {
		return existing.CatalogID == catalogID
	}
	return strings.EqualFold(existing.Title, title)
}

func indexByID(games []domain.Game, gameID string) int {
	for i, g := range games {
		if g.ID == gameID {
			return i
		}
	}
	return -1
}
