// Package store persists the tracked game collection.
//
// Persistence is whole-collection only: a Backend reads and writes the
// entire list in one operation. That keeps every backend trivially
// swappable (a JSON file for normal use, Badger when the collection
// grows, memory for tests) at the cost of O(n) mutations, which is fine
// for a single user's game list.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/playtrackapp/playtrack-server/internal/domain"
)

// Backend reads and writes the entire game collection.
type Backend interface {
	ReadAll(ctx context.Context) ([]domain.Game, error)
	WriteAll(ctx context.Context, games []domain.Game) error
	Close() error
}

// Store serializes access to a Backend.
//
// Backends have no concurrency control of their own, so a single mutex
// guards every read-modify-write cycle. Without it, two concurrent
// mutations would race on the whole-collection write and the last one
// would silently win.
type Store struct {
	mu      sync.Mutex
	backend Backend
	logger  *slog.Logger
}

// New creates a Store over the given backend.
func New(backend Backend, logger *slog.Logger) *Store {
	return &Store{backend: backend, logger: logger}
}

// List returns the full collection.
func (s *Store) List(ctx context.Context) ([]domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.ReadAll(ctx)
}

// Update runs fn inside one read-modify-write cycle and persists the
// collection fn returns. If fn errors, nothing is written.
func (s *Store) Update(ctx context.Context, fn func(games []domain.Game) ([]domain.Game, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	games, err := s.backend.ReadAll(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(games)
	if err != nil {
		return err
	}

	return s.backend.WriteAll(ctx, updated)
}

// Close releases backend resources.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Close()
}
