package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/playtrackapp/playtrack-server/internal/client"
	"github.com/playtrackapp/playtrack-server/internal/domain"
)

const requestTimeout = 10 * time.Second

func (m *Model) loadGamesCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		games, err := api.ListGames(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return gamesLoadedMsg{games: games}
	}
}

func (m *Model) addGameCmd(params client.AddGameParams) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		game, err := api.AddGame(ctx, params)
		if err != nil {
			if client.IsConflict(err) {
				return addConflictMsg{params: params}
			}
			return errMsg{err: err}
		}
		return gameMutatedMsg{game: game}
	}
}

func (m *Model) updateStatusCmd(gameID string, status domain.Status) tea.Cmd {
	api := m.api
	raw := string(status)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		game, err := api.UpdateGame(ctx, gameID, client.UpdateGameParams{Status: &raw})
		if err != nil {
			return errMsg{err: err}
		}
		return gameMutatedMsg{game: game}
	}
}

func (m *Model) deleteGameCmd(gameID string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := api.DeleteGame(ctx, gameID); err != nil {
			return errMsg{err: err}
		}
		return gameDeletedMsg{id: gameID}
	}
}

func (m *Model) searchCmd(seq int, query string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		page, err := api.SearchCatalog(ctx, query, 1)
		return searchResultMsg{seq: seq, page: page, err: err}
	}
}

// debounceCmd fires a searchDebounceMsg carrying the token current at call
// time; by arrival a newer keystroke may have superseded it.
func (m *Model) debounceCmd(token int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{token: token}
	})
}

func (m *Model) guardExpiryCmd(token int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return scrollGuardMsg{token: token}
	})
}

func (m *Model) scrollStepCmd(token int) tea.Cmd {
	return tea.Tick(scrollStepInterval, func(time.Time) tea.Msg {
		return scrollStepMsg{token: token}
	})
}
