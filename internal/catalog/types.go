package catalog

// SearchResult is one catalog hit. Transient: these are shown to the
// user and discarded, never persisted.
type SearchResult struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	BackgroundImage string  `json:"background_image,omitempty"`
	Released        string  `json:"released,omitempty"`
	Rating          float64 `json:"rating,omitempty"`
}

// SearchPage is one page of ranked search results.
type SearchPage struct {
	Count    int            `json:"count"`
	Next     string         `json:"next,omitempty"`
	Previous string         `json:"previous,omitempty"`
	Results  []SearchResult `json:"results"`
}

// GameDetails is the full catalog record for a single title.
type GameDetails struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description_raw,omitempty"`
	Released        string  `json:"released,omitempty"`
	BackgroundImage string  `json:"background_image,omitempty"`
	Rating          float64 `json:"rating,omitempty"`
	Website         string  `json:"website,omitempty"`
	Playtime        int     `json:"playtime,omitempty"`
}
