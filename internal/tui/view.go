package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/playtrackapp/playtrack-server/internal/domain"
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statsStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	columnTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	activeColumnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	completedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

var columnLabels = map[domain.Status]string{
	domain.StatusBacklog:   "Backlog",
	domain.StatusPlaying:   "Playing",
	domain.StatusCompleted: "Completed",
	domain.StatusPlayed:    "Played",
}

// chromeHeight is the line count of everything rendered around the board:
// header, search bar, their spacing, and the status line.
func chromeHeight(m *Model) int {
	return 5
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString(m.searchBarView())

	if m.focus == focusSearch && (m.searching || m.searchErr != "" || len(m.results) > 0) {
		b.WriteString(m.resultsView())
	} else {
		b.WriteString(m.boardView())
	}

	b.WriteString(m.statusView())
	return b.String()
}

func (m *Model) headerView() string {
	total, counts := m.columnCounts()
	parts := make([]string, 0, len(counts))
	for i, s := range domain.AllStatuses() {
		parts = append(parts, fmt.Sprintf("%s %d", columnLabels[s], counts[i]))
	}
	stats := statsStyle.Render(fmt.Sprintf("%d tracked · %s", total, strings.Join(parts, " · ")))
	return titleStyle.Render("PlayTrack") + "  " + stats + "\n\n"
}

func (m *Model) searchBarView() string {
	return m.searchInput.View() + "\n\n"
}

func (m *Model) resultsView() string {
	var b strings.Builder

	switch {
	case m.searchErr != "":
		b.WriteString(errorStyle.Render("Search failed: "+m.searchErr) + "\n")
	case m.searching:
		b.WriteString(dimStyle.Render("Searching...") + "\n")
	case len(m.results) == 0:
		b.WriteString(dimStyle.Render("No results.") + "\n")
	}

	for i, r := range m.results {
		line := r.Name
		if r.Released != "" {
			line += dimStyle.Render(" (" + r.Released + ")")
		}
		if i == m.resultIndex {
			line = selectedRowStyle.Render("▸ " + r.Name)
			if r.Released != "" {
				line += dimStyle.Render(" (" + r.Released + ")")
			}
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if len(m.results) > 0 {
		b.WriteString(dimStyle.Render("enter: track · esc: clear · tab: board") + "\n")
	}
	return b.String()
}

func (m *Model) boardView() string {
	if m.narrow {
		m.viewport.SetContent(m.stackedColumnsView())
		return m.viewport.View() + "\n"
	}
	return m.sideBySideColumnsView()
}

// sideBySideColumnsView lays the four columns out horizontally.
func (m *Model) sideBySideColumnsView() string {
	colWidth := m.width/len(m.columns) - 2
	if colWidth < 12 {
		colWidth = 12
	}

	rendered := make([]string, len(m.columns))
	for i := range m.columns {
		rendered[i] = lipgloss.NewStyle().Width(colWidth).MarginRight(2).Render(m.columnView(i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

// stackedColumnsView stacks the sections vertically for narrow terminals.
// Line counts here must stay in step with sectionHeight.
func (m *Model) stackedColumnsView() string {
	sections := make([]string, len(m.columns))
	for i := range m.columns {
		sections[i] = m.columnView(i) + "\n"
	}
	return strings.Join(sections, "")
}

func (m *Model) columnView(i int) string {
	status := domain.AllStatuses()[i]
	header := fmt.Sprintf("%s (%d)", columnLabels[status], len(m.columns[i]))
	if i == m.activeCol {
		header = activeColumnStyle.Render("▸ " + header)
	} else {
		header = columnTitleStyle.Render("  " + header)
	}

	var b strings.Builder
	b.WriteString(header + "\n")

	col := m.columns[i]
	if len(col) == 0 {
		b.WriteString(dimStyle.Render("  —") + "\n")
		return b.String()
	}

	for row, g := range col {
		line := g.Title
		if g.Status == domain.StatusCompleted && g.CompletedAt != nil {
			line += completedStyle.Render(" ✓ " + g.CompletedAt.Format("2006-01-02"))
		}
		if i == m.activeCol && row == m.cursor && m.focus == focusBoard {
			b.WriteString(selectedRowStyle.Render("  "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m *Model) statusView() string {
	if m.status == "" {
		return dimStyle.Render("←/→: column · ↑/↓: row · 1-4: move · x: delete · /: search · q: quit")
	}
	return dimStyle.Render(m.status)
}
