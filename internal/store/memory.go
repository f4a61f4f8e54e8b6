package store

import (
	"context"

	"github.com/playtrackapp/playtrack-server/internal/domain"
)

// MemoryBackend keeps the collection in memory. Used by tests.
type MemoryBackend struct {
	games []domain.Game
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{games: []domain.Game{}}
}

// ReadAll implements Backend.
func (b *MemoryBackend) ReadAll(ctx context.Context) ([]domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Game, len(b.games))
	copy(out, b.games)
	return out, nil
}

// WriteAll implements Backend.
func (b *MemoryBackend) WriteAll(ctx context.Context, games []domain.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.games = make([]domain.Game, len(games))
	copy(b.games, games)
	return nil
}

// Close implements Backend.
func (b *MemoryBackend) Close() error {
	return nil
}
