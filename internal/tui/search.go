package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/playtrackapp/playtrack-server/internal/catalog"
)

// handleSearchInputChange runs after every edit of the search input. An
// empty (trimmed) query short-circuits: results and error clear, the
// sequence is bumped past any in-flight request, and nothing is scheduled.
// Otherwise a debounce tick is armed; only the newest token fires.
func (m *Model) handleSearchInputChange() tea.Cmd {
	m.debounceToken++

	if strings.TrimSpace(m.searchInput.Value()) == "" {
		m.clearSearch()
		return nil
	}

	return m.debounceCmd(m.debounceToken)
}

// handleSearchDebounceMsg fires the query when the quiet period elapsed
// without another keystroke.
func (m *Model) handleSearchDebounceMsg(msg searchDebounceMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.debounceToken {
		return m, nil
	}

	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.clearSearch()
		return m, nil
	}

	m.searchSeq++
	m.searching = true
	m.searchErr = ""
	return m, m.searchCmd(m.searchSeq, query)
}

// handleSearchResultMsg applies a query response. Responses carrying a
// superseded sequence are discarded unconditionally, success or failure.
func (m *Model) handleSearchResultMsg(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq {
		return m, nil
	}

	m.searching = false
	if msg.err != nil {
		m.results = nil
		m.resultIndex = 0
		m.searchErr = msg.err.Error()
		return m, nil
	}

	m.searchErr = ""
	m.results = filterTracked(msg.page.Results, m.tracked)
	m.resultIndex = 0
	return m, nil
}

// clearSearch drops any visible results and invalidates in-flight requests.
func (m *Model) clearSearch() {
	m.results = nil
	m.resultIndex = 0
	m.searching = false
	m.searchErr = ""
	m.searchSeq++
}

// filterTracked removes catalog entries the user already tracks.
func filterTracked(results []catalog.SearchResult, tracked map[string]bool) []catalog.SearchResult {
	if len(results) == 0 {
		return results
	}
	filtered := make([]catalog.SearchResult, 0, len(results))
	for _, r := range results {
		if tracked[strconv.FormatInt(r.ID, 10)] {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
