package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtrackapp/playtrack-server/internal/domain"
)

func TestFileBackend_MissingFileBootstraps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	b, err := NewFileBackend(path, nil)
	require.NoError(t, err)

	games, err := b.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)

	// The file now exists and holds an empty collection.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFileBackend_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "games.json")
	_, err := NewFileBackend(path, nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestFileBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	b, err := NewFileBackend(path, nil)
	require.NoError(t, err)
	ctx := context.Background()

	in := []domain.Game{testGame("game-1", "Hades"), testGame("game-2", "Celeste")}
	require.NoError(t, b.WriteAll(ctx, in))

	out, err := b.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Hades", out[0].Title)
	assert.Equal(t, "Celeste", out[1].Title)
}

func TestFileBackend_WritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	b, err := NewFileBackend(path, nil)
	require.NoError(t, err)

	require.NoError(t, b.WriteAll(context.Background(), []domain.Game{testGame("game-1", "Hades")}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "\n  "), "collection file should stay hand-inspectable")
}

func TestFileBackend_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	b, err := NewFileBackend(path, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err = b.ReadAll(context.Background())
	assert.Error(t, err)
}

func TestFileBackend_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.json")
	b, err := NewFileBackend(path, nil)
	require.NoError(t, err)

	require.NoError(t, b.WriteAll(context.Background(), []domain.Game{testGame("game-1", "Hades")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "games.json", entries[0].Name())
}
