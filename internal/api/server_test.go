package api

import (
	"encoding/json/v2"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtrackapp/playtrack-server/internal/catalog"
	"github.com/playtrackapp/playtrack-server/internal/domain"
	"github.com/playtrackapp/playtrack-server/internal/service"
	"github.com/playtrackapp/playtrack-server/internal/store"
)

type testEnv struct {
	server  *Server
	tracker *service.TrackerService
}

// newTestEnv wires a server over an in-memory store and a stubbed catalog
// provider.
func newTestEnv(t *testing.T, catalogHandler http.HandlerFunc) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := service.NewTrackerService(store.New(store.NewMemoryBackend(), logger), logger)

	cfg := catalog.Config{APIKey: "test-key"}
	if catalogHandler != nil {
		upstream := httptest.NewServer(catalogHandler)
		t.Cleanup(upstream.Close)
		cfg.BaseURL = upstream.URL
	}

	return &testEnv{
		server:  NewServer(tracker, catalog.NewClient(cfg, logger), logger),
		tracker: tracker,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

func decodeGame(t *testing.T, rec *httptest.ResponseRecorder) domain.Game {
	t.Helper()
	var game domain.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &game))
	return game
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Error)
	return body.Error
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListGames_Empty(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/api/games", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddGame(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/games", `{"title":"Hades","catalogId":"100"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	game := decodeGame(t, rec)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, "Hades", game.Title)
	assert.Equal(t, domain.StatusBacklog, game.Status)
	assert.Nil(t, game.CompletedAt)

	rec = env.do(t, http.MethodGet, "/api/games", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var games []domain.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &games))
	assert.Len(t, games, 1)
}

func TestAddGame_MissingTitle(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/games", `{"catalogId":"100"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decodeError(t, rec)
}

func TestAddGame_InvalidBody(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/games", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddGame_Duplicate(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/api/games", `{"title":"Hades","catalogId":"100"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/games", `{"title":"Hades Again","catalogId":"100"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	decodeError(t, rec)
}

func TestUpdateGame_CompletedAt(t *testing.T) {
	env := newTestEnv(t, nil)

	created := decodeGame(t, env.do(t, http.MethodPost, "/api/games", `{"title":"Hades"}`))

	rec := env.do(t, http.MethodPatch, "/api/games/"+created.ID, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	completed := decodeGame(t, rec)
	assert.Equal(t, domain.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	rec = env.do(t, http.MethodPatch, "/api/games/"+created.ID, `{"status":"playing"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	playing := decodeGame(t, rec)
	assert.Equal(t, domain.StatusPlaying, playing.Status)
	assert.Nil(t, playing.CompletedAt)
}

func TestUpdateGame_NotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPatch, "/api/games/game-missing", `{"notes":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	decodeError(t, rec)
}

func TestUpdateGame_InvalidStatus(t *testing.T) {
	env := newTestEnv(t, nil)

	created := decodeGame(t, env.do(t, http.MethodPost, "/api/games", `{"title":"Hades"}`))

	rec := env.do(t, http.MethodPatch, "/api/games/"+created.ID, `{"status":"shelved"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteGame(t *testing.T) {
	env := newTestEnv(t, nil)

	created := decodeGame(t, env.do(t, http.MethodPost, "/api/games", `{"title":"Hades"}`))

	rec := env.do(t, http.MethodDelete, "/api/games/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = env.do(t, http.MethodDelete, "/api/games/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogSearch(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games", r.URL.Path)
		assert.Equal(t, "zelda", r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"count":1,"results":[{"id":22511,"name":"The Legend of Zelda"}]}`))
	})

	rec := env.do(t, http.MethodGet, "/api/catalog/search?query=zelda", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page catalog.SearchPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Results, 1)
	assert.Equal(t, "The Legend of Zelda", page.Results[0].Name)
}

func TestCatalogSearch_EmptyQuery(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/api/catalog/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decodeError(t, rec)
}

func TestCatalogSearch_MissingKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := service.NewTrackerService(store.New(store.NewMemoryBackend(), logger), logger)
	server := NewServer(tracker, catalog.NewClient(catalog.Config{}, logger), logger)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/search?query=zelda", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeError(t, rec), "RAWG_API_KEY")
}

func TestCatalogSearch_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	rec := env.do(t, http.MethodGet, "/api/catalog/search?query=zelda", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	decodeError(t, rec)
}

func TestCatalogGame(t *testing.T) {
	env := newTestEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games/100", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":100,"name":"Mario","description_raw":"A plumber."}`))
	})

	rec := env.do(t, http.MethodGet, "/api/catalog/games/100", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var details catalog.GameDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	assert.Equal(t, "Mario", details.Name)
}
