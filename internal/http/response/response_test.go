package response

import (
	"encoding/json/v2"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/playtrackapp/playtrack-server/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusOK, map[string]string{"title": "Hades"}, discardLogger())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Hades", body["title"])
}

func TestJSON_NilLogger(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, map[string]string{"ok": "yes"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestError_Shape(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusConflict, "game already exists in your tracker", discardLogger())

	assert.Equal(t, http.StatusConflict, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "game already exists in your tracker", body.Error)
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	NoContent(w)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestHandleError_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", domainerrors.Validation("title is required"), http.StatusBadRequest, "title is required"},
		{"conflict", domainerrors.Conflict("duplicate"), http.StatusConflict, "duplicate"},
		{"not found", domainerrors.NotFound("game not found"), http.StatusNotFound, "game not found"},
		{"configuration", domainerrors.Configuration("RAWG API key is not configured"), http.StatusInternalServerError, "RAWG API key is not configured"},
		{"upstream", domainerrors.Upstream("catalog search failed", errors.New("timeout")), http.StatusBadGateway, "catalog search failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err, discardLogger())

			assert.Equal(t, tt.wantStatus, w.Code)

			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestHandleError_UnknownError(t *testing.T) {
	w := httptest.NewRecorder()

	HandleError(w, errors.New("disk exploded"), discardLogger())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	// The original cause is logged, not leaked.
	assert.Equal(t, "unexpected server error", body.Error)
}
