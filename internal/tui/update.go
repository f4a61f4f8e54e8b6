package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/playtrackapp/playtrack-server/internal/client"
	"github.com/playtrackapp/playtrack-server/internal/domain"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case gamesLoadedMsg:
		m.setGames(msg.games)
		return m, nil
	case gameMutatedMsg:
		return m.handleGameMutatedMsg(msg)
	case gameDeletedMsg:
		m.status = "Deleted."
		return m, m.loadGamesCmd()
	case addConflictMsg:
		return m.handleAddConflictMsg(msg)
	case searchDebounceMsg:
		return m.handleSearchDebounceMsg(msg)
	case searchResultMsg:
		return m.handleSearchResultMsg(msg)
	case scrollStepMsg:
		return m.handleScrollStepMsg(msg)
	case scrollGuardMsg:
		return m.handleScrollGuardMsg(msg)
	case errMsg:
		m.status = msg.err.Error()
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.narrow = msg.Width < narrowThreshold
	m.viewport.Width = msg.Width
	m.viewport.Height = max(0, msg.Height-chromeHeight(m))
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if msg.Type == tea.KeyTab {
		m.toggleFocus()
		return m, nil
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleBoardKey(msg)
}

func (m *Model) toggleFocus() {
	if m.focus == focusSearch {
		m.focus = focusBoard
		m.searchInput.Blur()
	} else {
		m.focus = focusSearch
		m.searchInput.Focus()
	}
	m.pendingDelete = ""
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Manual clear is always allowed, even mid-flight.
		m.searchInput.SetValue("")
		m.clearSearch()
		return m, nil
	case tea.KeyUp:
		if m.resultIndex > 0 {
			m.resultIndex--
		}
		return m, nil
	case tea.KeyDown:
		if m.resultIndex < len(m.results)-1 {
			m.resultIndex++
		}
		return m, nil
	case tea.KeyEnter:
		return m.addSelectedResult()
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		return m, tea.Batch(cmd, m.handleSearchInputChange())
	}
	return m, cmd
}

// addSelectedResult tracks the highlighted search result as a backlog game.
func (m *Model) addSelectedResult() (tea.Model, tea.Cmd) {
	if m.resultIndex < 0 || m.resultIndex >= len(m.results) {
		return m, nil
	}
	r := m.results[m.resultIndex]

	params := client.AddGameParams{
		Title:         r.Name,
		CatalogID:     fmt.Sprintf("%d", r.ID),
		CoverImageURL: r.BackgroundImage,
		ReleaseDate:   r.Released,
	}
	m.status = "Adding " + r.Name + "..."
	return m, m.addGameCmd(params)
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete waits for y; any other key cancels it.
	if m.pendingDelete != "" {
		id := m.pendingDelete
		m.pendingDelete = ""
		if msg.String() == "y" {
			return m, m.deleteGameCmd(id)
		}
		m.status = "Delete cancelled."
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil
	case "r":
		return m, m.loadGamesCmd()
	case "left", "h":
		m.prevColumn()
		return m, m.scrollToActive()
	case "right", "l":
		m.nextColumn()
		return m, m.scrollToActive()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.columns[m.activeCol])-1 {
			m.cursor++
		}
		return m, nil
	case "1", "2", "3", "4":
		return m.setSelectedStatus(int(msg.String()[0] - '1'))
	case "x":
		if g, ok := m.selectedGame(); ok {
			m.pendingDelete = g.ID
			m.status = "Delete " + g.Title + "? (y to confirm)"
		}
		return m, nil
	}

	if m.narrow {
		var cmd tea.Cmd
		before := m.viewport.YOffset
		m.viewport, cmd = m.viewport.Update(msg)
		if m.viewport.YOffset != before {
			m.syncActiveToScroll()
		}
		return m, cmd
	}
	return m, nil
}

// setSelectedStatus moves the game under the cursor to the given column.
func (m *Model) setSelectedStatus(columnIdx int) (tea.Model, tea.Cmd) {
	statuses := domain.AllStatuses()
	if columnIdx < 0 || columnIdx >= len(statuses) {
		return m, nil
	}
	g, ok := m.selectedGame()
	if !ok {
		return m, nil
	}
	if g.Status == statuses[columnIdx] {
		return m, nil
	}
	return m, m.updateStatusCmd(g.ID, statuses[columnIdx])
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.narrow {
		return m, nil
	}
	var cmd tea.Cmd
	before := m.viewport.YOffset
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		m.syncActiveToScroll()
	}
	return m, cmd
}

func (m *Model) handleGameMutatedMsg(msg gameMutatedMsg) (tea.Model, tea.Cmd) {
	m.status = fmt.Sprintf("%s → %s", msg.game.Title, msg.game.Status)
	return m, m.loadGamesCmd()
}

// handleAddConflictMsg recovers from a duplicate add: the game is already
// tracked, so reinterpret the intent as a status update on the local record.
func (m *Model) handleAddConflictMsg(msg addConflictMsg) (tea.Model, tea.Cmd) {
	existing, ok := m.gameByCatalogID(msg.params.CatalogID)
	if !ok {
		m.status = "Already tracked: " + msg.params.Title
		return m, m.loadGamesCmd()
	}

	status := domain.Status(msg.params.Status)
	if status == "" {
		status = domain.DefaultStatus
	}
	if existing.Status == status {
		m.status = "Already tracked: " + existing.Title
		return m, nil
	}
	m.status = "Already tracked; moving " + existing.Title + "..."
	return m, m.updateStatusCmd(existing.ID, status)
}
