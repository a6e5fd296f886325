package providers

import (
	"context"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
)

// PageRequest carries the listing parameters for one player page fetch.
// Cursor is the opaque token from the previous page's response; an empty
// cursor means start-of-list. PerPage <= 0 lets the provider pick a default.
type PageRequest struct {
	Cursor  string
	PerPage int
	Search  string
}

// PlayerProvider defines how upstream player pages are fetched and normalized.
// Implementations must be idempotent for a given cursor/search combination.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context, req PageRequest) (players.Page, error)
}
