// Package tui implements the terminal UI for PlayTrack: a catalog search
// bar over a four-column status board.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/playtrackapp/playtrack-server/internal/catalog"
	"github.com/playtrackapp/playtrack-server/internal/client"
	"github.com/playtrackapp/playtrack-server/internal/domain"
)

// Options configure the UI.
type Options struct {
	ServerURL string
}

// Run starts the UI.
func Run(opts Options) error {
	model := NewModel(client.New(opts.ServerURL))
	fmt.Printf("\033]0;playtrack\007")

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}

// backend is the slice of the server client the UI needs. Satisfied by
// *client.Client; tests substitute a fake.
type backend interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
	AddGame(ctx context.Context, params client.AddGameParams) (domain.Game, error)
	UpdateGame(ctx context.Context, gameID string, params client.UpdateGameParams) (domain.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
	SearchCatalog(ctx context.Context, query string, page int) (*catalog.SearchPage, error)
}

type focusArea int

const (
	focusSearch focusArea = iota
	focusBoard
)

// Model implements the PlayTrack UI.
type Model struct {
	api backend

	// Layout
	width    int
	height   int
	narrow   bool
	viewport viewport.Model
	focus    focusArea

	// Tracked games
	games   []domain.Game
	tracked map[string]bool
	columns [][]domain.Game

	// Board selection
	activeCol int
	cursor    int

	// Search coordinator
	searchInput   textinput.Model
	debounceToken int
	searchSeq     int
	searching     bool
	results       []catalog.SearchResult
	resultIndex   int
	searchErr     string

	// Scroll guard (narrow layout only)
	guardToken   int
	guardActive  bool
	scrolledOnce bool
	scrollTarget int

	// Pending delete confirmation: game ID, or empty
	pendingDelete string

	status string
}

// NewModel creates the UI model over a server backend.
func NewModel(api backend) *Model {
	input := textinput.New()
	input.Placeholder = "Search the catalog..."
	input.Prompt = "/ "
	input.CharLimit = 120
	input.Focus()

	return &Model{
		api:         api,
		searchInput: input,
		tracked:     map[string]bool{},
		columns:     make([][]domain.Game, len(domain.AllStatuses())),
		viewport:    viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadGamesCmd())
}

// setGames replaces the cached list from a confirmed server response,
// recomputes the tracked set, re-filters any visible search results, and
// repartitions the board.
func (m *Model) setGames(games []domain.Game) {
	m.games = games

	m.tracked = make(map[string]bool, len(games))
	for _, g := range games {
		if g.CatalogID != "" {
			m.tracked[g.CatalogID] = true
		}
	}

	m.results = filterTracked(m.results, m.tracked)
	if m.resultIndex >= len(m.results) {
		m.resultIndex = max(0, len(m.results)-1)
	}

	m.columns = partitionColumns(games)
	m.ensureActiveColumn()
	m.clampCursor()
}
