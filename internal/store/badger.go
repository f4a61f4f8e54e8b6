package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/playtrackapp/playtrack-server/internal/domain"
)

// collectionKey is the single key the whole collection lives under.
// The backend keeps whole-collection semantics on purpose: callers see
// the same ReadAll/WriteAll contract as the file backend, Badger just
// makes the write path crash-safe and cheaper to fsync.
var collectionKey = []byte("games")

// BadgerBackend keeps the collection in a Badger database.
type BadgerBackend struct {
	db     *badger.DB
	logger *slog.Logger
}

// NewBadgerBackend opens (or creates) a Badger database at path.
func NewBadgerBackend(path string, logger *slog.Logger) (*BadgerBackend, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil      // Disable Badger's internal logging
	opts.SyncWrites = true // Sync writes to disk to prevent corruption on crashes

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("badger store opened", "path", path)
	}

	return &BadgerBackend{db: db, logger: logger}, nil
}

// ReadAll implements Backend.
func (b *BadgerBackend) ReadAll(ctx context.Context) ([]domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var games []domain.Game
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(collectionKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			games = []domain.Game{}
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &games)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	if games == nil {
		games = []domain.Game{}
	}
	return games, nil
}

// WriteAll implements Backend.
func (b *BadgerBackend) WriteAll(ctx context.Context, games []domain.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(collectionKey, raw)
	})
	if err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}

// Close implements Backend.
func (b *BadgerBackend) Close() error {
	return b.db.Close()
}
