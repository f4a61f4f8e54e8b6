package tui

import (
	"sort"

	"github.com/playtrackapp/playtrack-server/internal/domain"
)

// partitionColumns splits games into one slice per status, each ordered
// newest-first.
func partitionColumns(games []domain.Game) [][]domain.Game {
	statuses := domain.AllStatuses()
	index := make(map[domain.Status]int, len(statuses))
	for i, s := range statuses {
		index[s] = i
	}

	columns := make([][]domain.Game, len(statuses))
	for _, g := range games {
		i, ok := index[g.Status]
		if !ok {
			continue
		}
		columns[i] = append(columns[i], g)
	}

	for _, col := range columns {
		sort.SliceStable(col, func(a, b int) bool {
			return col[a].SortTime().After(col[b].SortTime())
		})
	}

	return columns
}

// ensureActiveColumn keeps the selection on a usable column: when the
// current one is empty, fall back to the first non-empty column, else the
// first column.
func (m *Model) ensureActiveColumn() {
	if m.activeCol >= 0 && m.activeCol < len(m.columns) && len(m.columns[m.activeCol]) > 0 {
		return
	}
	m.activeCol = firstUsableColumn(m.columns)
}

// firstUsableColumn returns the first non-empty column index, or 0 when
// every column is empty.
func firstUsableColumn(columns [][]domain.Game) int {
	for i, col := range columns {
		if len(col) > 0 {
			return i
		}
	}
	return 0
}

// nextColumn advances the active column, wrapping past the last.
func (m *Model) nextColumn() {
	m.activeCol = (m.activeCol + 1) % len(m.columns)
	m.clampCursor()
}

// prevColumn retreats the active column, wrapping past the first.
func (m *Model) prevColumn() {
	m.activeCol = (m.activeCol - 1 + len(m.columns)) % len(m.columns)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if n := len(m.columns[m.activeCol]); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

// selectedGame returns the game under the cursor, or false when the active
// column is empty.
func (m *Model) selectedGame() (domain.Game, bool) {
	col := m.columns[m.activeCol]
	if m.cursor < 0 || m.cursor >= len(col) {
		return domain.Game{}, false
	}
	return col[m.cursor], true
}

// columnCounts returns total tracked plus per-column counts for the header.
func (m *Model) columnCounts() (total int, counts []int) {
	counts = make([]int, len(m.columns))
	for i, col := range m.columns {
		counts[i] = len(col)
		total += len(col)
	}
	return total, counts
}

// gameByCatalogID finds a tracked game by its catalog id.
func (m *Model) gameByCatalogID(catalogID string) (domain.Game, bool) {
	if catalogID == "" {
		return domain.Game{}, false
	}
	for _, g := range m.games {
		if g.CatalogID == catalogID {
			return g, true
		}
	}
	return domain.Game{}, false
}
