package tui

import (
	"time"

	"github.com/playtrackapp/playtrack-server/internal/catalog"
	"github.com/playtrackapp/playtrack-server/internal/client"
	"github.com/playtrackapp/playtrack-server/internal/domain"
)

const (
	// searchDebounce is how long the input must be quiet before a query fires.
	searchDebounce = 400 * time.Millisecond
	// jumpGuard covers an instant programmatic scroll.
	jumpGuard = 120 * time.Millisecond
	// animateGuard covers a stepwise programmatic scroll.
	animateGuard = 420 * time.Millisecond
	// scrollStepInterval drives stepwise scroll animation.
	scrollStepInterval = 16 * time.Millisecond
)

// gamesLoadedMsg replaces the cached games list.
type gamesLoadedMsg struct {
	games []domain.Game
}

// gameMutatedMsg confirms a create or update round-trip.
type gameMutatedMsg struct {
	game domain.Game
}

// gameDeletedMsg confirms a delete round-trip.
type gameDeletedMsg struct {
	id string
}

// addConflictMsg reports a duplicate-add rejection, carrying the attempted
// payload so the UI can recover with a status update instead.
type addConflictMsg struct {
	params client.AddGameParams
}

// searchDebounceMsg fires after searchDebounce; stale tokens are ignored.
type searchDebounceMsg struct {
	token int
}

// searchResultMsg carries one query response tagged with its sequence.
type searchResultMsg struct {
	seq  int
	page *catalog.SearchPage
	err  error
}

// scrollGuardMsg expires a programmatic-scroll guard; stale tokens are ignored.
type scrollGuardMsg struct {
	token int
}

// scrollStepMsg advances a stepwise programmatic scroll.
type scrollStepMsg struct {
	token int
}

// errMsg surfaces a failed round-trip.
type errMsg struct {
	err error
}
