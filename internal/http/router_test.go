package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
	"github.com/ThantZinWinnnnn/team-task/internal/http/handlers"
	"github.com/ThantZinWinnnnn/team-task/internal/identity"
	"github.com/ThantZinWinnnnn/team-task/internal/metrics"
	"github.com/ThantZinWinnnnn/team-task/internal/providers"
	"github.com/ThantZinWinnnnn/team-task/internal/roster"
	"github.com/ThantZinWinnnnn/team-task/internal/storage"
)

type emptyProvider struct{}

func (emptyProvider) FetchPlayers(ctx context.Context, req providers.PageRequest) (players.Page, error) {
	return players.Page{Items: []players.Player{}}, nil
}

func newTestRouter(t *testing.T) nethttp.Handler {
	t.Helper()
	mem := storage.NewMemoryStore()
	rosterStore, err := roster.NewStore(mem, nil, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("roster.NewStore: %v", err)
	}
	identityStore, err := identity.NewStore(mem, nil)
	if err != nil {
		t.Fatalf("identity.NewStore: %v", err)
	}
	return NewRouter(handlers.NewHandler(emptyProvider{}, rosterStore, identityStore, nil, 10, nil))
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		target string
		want   int
	}{
		{"GET", "/health", nethttp.StatusOK},
		{"GET", "/ready", nethttp.StatusOK},
		{"GET", "/players", nethttp.StatusOK},
		{"GET", "/teams", nethttp.StatusOK},
		{"GET", "/session", nethttp.StatusOK},
		{"GET", "/teams/nope", nethttp.StatusNotFound},
		{"GET", "/unknown", nethttp.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
		if rec.Code != tc.want {
			t.Errorf("%s %s = %d, want %d", tc.method, tc.target, rec.Code, tc.want)
		}
	}
}
