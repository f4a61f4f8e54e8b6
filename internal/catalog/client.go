// Package catalog provides access to the RAWG game catalog API for search and title details.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	domainerrors "github.com/playtrackapp/playtrack-server/internal/errors"
)

const (
	// RAWG's free tier allows a modest request volume; keep well under it.
	requestInterval = 200 * time.Millisecond
	requestBurst    = 5

	defaultTimeout = 10 * time.Second
)

// Client is a rate-limited RAWG API client.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	apiKey      string
	pageSize    int
	logger      *slog.Logger
}

// Config holds catalog client settings.
type Config struct {
	// APIKey authenticates requests. May be empty; every call then fails
	// closed with a configuration error before touching the network.
	APIKey string
	// BaseURL of the RAWG API, e.g. "https://api.rawg.io/api".
	BaseURL string
	// PageSize per search request; defaults to 20.
	PageSize int
}

// NewClient creates a new RAWG client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.PageSize < 1 {
		cfg.PageSize = 20
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(requestInterval), requestBurst),
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		pageSize:    cfg.PageSize,
		logger:      logger,
	}
}

// Close releases resources. Currently a no-op but included for interface consistency.
func (c *Client) Close() {
	// No persistent resources to close
}

// requireKey fails closed when no credential is configured.
func (c *Client) requireKey() error {
	if c.apiKey == "" {
		return domainerrors.Configuration("RAWG API key is not configured. Set RAWG_API_KEY in your environment.")
	}
	return nil
}

// get executes a rate-limited GET against the RAWG API and returns the
// response body. Transport and HTTP failures come back as upstream errors.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	params.Set("key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("catalog request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.Upstream("catalog request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.Upstream("read catalog response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.Upstream(
			fmt.Sprintf("catalog returned status %d", resp.StatusCode),
			fmt.Errorf("%s", string(body)),
		)
	}

	return body, nil
}
