// Package domain contains the core business entities for the PlayTrack game tracker.
package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a tracked game.
type Status string

// Lifecycle states a tracked game moves through.
const (
	StatusBacklog   Status = "backlog"
	StatusPlaying   Status = "playing"
	StatusCompleted Status = "completed"
	StatusPlayed    Status = "played"
)

// DefaultStatus is assigned when a game is added without an explicit status.
const DefaultStatus = StatusBacklog

// AllStatuses returns every status in board-column order.
func AllStatuses() []Status {
	return []Status{StatusBacklog, StatusPlaying, StatusCompleted, StatusPlayed}
}

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusPlaying, StatusCompleted, StatusPlayed:
		return true
	}
	return false
}

// ParseStatus converts a string to a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

// Game is a user's personal entry for a game, independent of the catalog.
//
// CompletedAt is non-nil iff the most recent status-changing write set the
// status to completed. Any write carrying a non-completed status clears it,
// while re-submitting completed leaves the original timestamp in place.
type Game struct {
	ID            string     `json:"id"`
	CatalogID     string     `json:"catalogId,omitempty"`
	Title         string     `json:"title"`
	Status        Status     `json:"status"`
	Notes         string     `json:"notes"`
	Rating        *float64   `json:"rating,omitempty"`
	CoverImageURL string     `json:"coverImageUrl,omitempty"`
	ReleaseDate   string     `json:"releaseDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// SortTime is the timestamp used for newest-first ordering on the board.
// Falls back to UpdatedAt for records that predate CreatedAt tracking.
func (g Game) SortTime() time.Time {
	if !g.CreatedAt.IsZero() {
		return g.CreatedAt
	}
	return g.UpdatedAt
}
