package store

import (
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/playtrackapp/playtrack-server/internal/domain"
)

// FileBackend keeps the collection in a single JSON file.
// A missing file reads as an empty collection and is created on first read.
type FileBackend struct {
	path   string
	logger *slog.Logger
}

// NewFileBackend creates a file backend at path, creating parent
// directories as needed.
func NewFileBackend(path string, logger *slog.Logger) (*FileBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileBackend{path: path, logger: logger}, nil
}

// ReadAll implements Backend.
func (b *FileBackend) ReadAll(ctx context.Context) ([]domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := os.WriteFile(b.path, []byte("[]"), 0o600); writeErr != nil {
				return nil, fmt.Errorf("bootstrap data file: %w", writeErr)
			}
			if b.logger != nil {
				b.logger.Info("created empty data file", "path", b.path)
			}
			return []domain.Game{}, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var games []domain.Game
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", b.path, err)
	}
	if games == nil {
		games = []domain.Game{}
	}
	return games, nil
}

// WriteAll implements Backend. The file is rewritten in full, indented
// so the collection stays hand-inspectable.
func (b *FileBackend) WriteAll(ctx context.Context, games []domain.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(games, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	// Write to a temp file and rename so a crash mid-write never leaves
	// a truncated collection behind.
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// Close implements Backend. The file backend holds no open resources.
func (b *FileBackend) Close() error {
	return nil
}
