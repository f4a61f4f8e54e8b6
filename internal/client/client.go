// Package client is a thin REST client for the PlayTrack server, used by
// the terminal UI.
package client

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/playtrackapp/playtrack-server/internal/catalog"
	"github.com/playtrackapp/playtrack-server/internal/domain"
)

const defaultTimeout = 15 * time.Second

// APIError is a server-reported failure, carrying the HTTP status and the
// message from the error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// IsConflict reports whether err is a 409 from the server.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to a running PlayTrack server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a client for the server at baseURL, e.g. "http://localhost:4000".
func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// AddGameParams is the payload for tracking a new game.
type AddGameParams struct {
	Title         string   `json:"title"`
	CatalogID     string   `json:"catalogId,omitempty"`
	Status        string   `json:"status,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	CoverImageURL string   `json:"coverImageUrl,omitempty"`
	ReleaseDate   string   `json:"releaseDate,omitempty"`
}

// UpdateGameParams is the partial-update payload. Nil fields are omitted
// from the request entirely.
type UpdateGameParams struct {
	Title         *string  `json:"title,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	CoverImageURL *string  `json:"coverImageUrl,omitempty"`
	ReleaseDate   *string  `json:"releaseDate,omitempty"`
}

// ListGames fetches every tracked game.
func (c *Client) ListGames(ctx context.Context) ([]domain.Game, error) {
	var games []domain.Game
	if err := c.do(ctx, http.MethodGet, "/api/games", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// AddGame tracks a new game and returns the created record.
func (c *Client) AddGame(ctx context.Context, params AddGameParams) (domain.Game, error) {
	var game domain.Game
	if err := c.do(ctx, http.MethodPost, "/api/games", params, &game); err != nil {
		return domain.Game{}, err
	}
	return game, nil
}

// UpdateGame applies a partial update and returns the full updated record.
func (c *Client) UpdateGame(ctx context.Context, gameID string, params UpdateGameParams) (domain.Game, error) {
	var game domain.Game
	if err := c.do(ctx, http.MethodPatch, "/api/games/"+url.PathEscape(gameID), params, &game); err != nil {
		return domain.Game{}, err
	}
	return game, nil
}

// DeleteGame permanently removes a tracked game.
func (c *Client) DeleteGame(ctx context.Context, gameID string) error {
	return c.do(ctx, http.MethodDelete, "/api/games/"+url.PathEscape(gameID), nil, nil)
}

// SearchCatalog queries the server's catalog proxy.
func (c *Client) SearchCatalog(ctx context.Context, query string, page int) (*catalog.SearchPage, error) {
	params := url.Values{}
	params.Set("query", query)
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}

	var result catalog.SearchPage
	if err := c.do(ctx, http.MethodGet, "/api/catalog/search?"+params.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CatalogGame fetches full details for one catalog entry.
func (c *Client) CatalogGame(ctx context.Context, catalogID string) (*catalog.GameDetails, error) {
	var details catalog.GameDetails
	if err := c.do(ctx, http.MethodGet, "/api/catalog/games/"+url.PathEscape(catalogID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// do executes one request. A non-2xx response is decoded into an APIError;
// a 204 or nil out skips body decoding.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.MarshalWrite(buf, body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.UnmarshalRead(resp.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: body.Error}
	}
	return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
}
