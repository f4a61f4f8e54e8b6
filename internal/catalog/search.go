package catalog

import (
	"context"
	"encoding/json/v2"
	"net/url"
	"strconv"

	domainerrors "github.com/playtrackapp/playtrack-server/internal/errors"
)

// Search queries the catalog for titles matching query.
// Pages below 1 are clamped to the first page.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchPage, error) {
	if query == "" {
		return nil, domainerrors.Validation("query parameter is required")
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("search", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(c.pageSize))

	body, err := c.get(ctx, "/games", params)
	if err != nil {
		return nil, err
	}

	var result SearchPage
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, domainerrors.Upstream("parse catalog response", err)
	}
	if result.Results == nil {
		result.Results = []SearchResult{}
	}

	c.logger.Debug("catalog search",
		"query", query,
		"page", page,
		"count", result.Count,
	)

	return &result, nil
}

// GameDetails fetches the full catalog record for one title.
func (c *Client) GameDetails(ctx context.Context, gameID string) (*GameDetails, error) {
	if gameID == "" {
		return nil, domainerrors.Validation("game id is required")
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, "/games/"+url.PathEscape(gameID), url.Values{})
	if err != nil {
		return nil, err
	}

	var details GameDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, domainerrors.Upstream("parse catalog response", err)
	}

	return &details, nil
}
