// Package pagination drives incremental fetch-more against a player
// provider, accumulating the pages it has seen and guarding against
// duplicate in-flight fetches.
package pagination

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
	"github.com/ThantZinWinnnnn/team-task/internal/logging"
	"github.com/ThantZinWinnnnn/team-task/internal/metrics"
	"github.com/ThantZinWinnnnn/team-task/internal/providers"
)

// State is the controller's position in its fetch cycle.
type State string

const (
	// StateIdle means the controller is ready to fetch the next page.
	StateIdle State = "idle"
	// StateFetchingNext means a fetch is in flight; further signals are ignored.
	StateFetchingNext State = "fetching_next"
	// StateExhausted means the upstream reported no further pages.
	StateExhausted State = "exhausted"
)

// Controller grows a player list one page at a time. At most one fetch is
// outstanding; RequestMore during a fetch is a no-op.
type Controller struct {
	provider providers.PlayerProvider
	perPage  int
	logger   *slog.Logger
	recorder *metrics.Recorder

	mu     sync.Mutex
	state  State
	cursor string
	search string
	gen    int
	items  []players.Player
}

// NewController starts at the beginning of the list in StateIdle.
func NewController(provider providers.PlayerProvider, perPage int, logger *slog.Logger, recorder *metrics.Recorder) *Controller {
	return &Controller{
		provider: provider,
		perPage:  perPage,
		logger:   logger,
		recorder: recorder,
		state:    StateIdle,
	}
}

// State returns the current fetch state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns a copy of the accumulated player list.
func (c *Controller) Items() []players.Player {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]players.Player, len(c.items))
	copy(out, c.items)
	return out
}

// Reset clears the accumulated list and cursor and installs a new search
// query, returning the controller to the start of the (filtered) list.
func (c *Controller) Reset(search string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.search = search
	c.cursor = ""
	c.items = nil
	c.gen++
	c.state = StateIdle
}

// RequestMore fetches the next page when the controller is idle. The bool
// reports whether a fetch actually ran: signals received while a fetch is
// in flight, or after the list is exhausted, return false immediately.
// On failure the controller returns to StateIdle so the caller can retry.
func (c *Controller) RequestMore(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return false, nil
	}
	c.state = StateFetchingNext
	gen := c.gen
	req := providers.PageRequest{Cursor: c.cursor, PerPage: c.perPage, Search: c.search}
	c.mu.Unlock()

	start := time.Now()
	page, err := c.provider.FetchPlayers(ctx, req)
	c.recorder.RecordPageFetch(time.Since(start), err)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// Reset happened while the fetch was in flight; its result belongs
		// to the previous search and is discarded.
		return false, nil
	}

	if err != nil {
		c.state = StateIdle
		logging.Warn(c.logger, "page fetch failed", logging.FieldCursor, req.Cursor, "error", err)
		return false, err
	}

	c.items = append(c.items, page.Items...)
	c.cursor = page.NextCursor
	if page.HasMore() {
		c.state = StateIdle
	} else {
		c.state = StateExhausted
	}
	logging.Info(c.logger, "page fetched",
		logging.FieldCursor, page.NextCursor,
		logging.FieldCount, len(page.Items),
	)
	return true, nil
}
