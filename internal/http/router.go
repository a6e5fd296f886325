// Package http assembles the service's routes.
package http

import (
	nethttp "net/http"

	"github.com/ThantZinWinnnnn/team-task/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/teams", handler.TeamsRoot)
	mux.HandleFunc("/teams/", handler.TeamByID)
	mux.HandleFunc("/session", handler.Session)
	return mux
}
