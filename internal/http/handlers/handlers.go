// Package handlers wires HTTP routes to the roster, identity and player
// provider components.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
	"github.com/ThantZinWinnnnn/team-task/internal/identity"
	"github.com/ThantZinWinnnnn/team-task/internal/logging"
	"github.com/ThantZinWinnnnn/team-task/internal/providers"
	"github.com/ThantZinWinnnnn/team-task/internal/roster"
)

// Handler exposes the service over HTTP.
type Handler struct {
	provider providers.PlayerProvider
	roster   *roster.Store
	identity *identity.Store
	logger   *slog.Logger
	perPage  int
	readyFn  func() error
}

// NewHandler constructs a Handler. perPage is the page size used when the
// request does not carry one; readyFn, when set, is consulted by the ready
// probe and should report storage availability.
func NewHandler(provider providers.PlayerProvider, rosterStore *roster.Store, identityStore *identity.Store, logger *slog.Logger, perPage int, readyFn func() error) *Handler {
	return &Handler{
		provider: provider,
		roster:   rosterStore,
		identity: identityStore,
		logger:   logger,
		perPage:  perPage,
		readyFn:  readyFn,
	}
}

// Health reports the service is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic, including storage availability.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.readyFn != nil {
		if err := h.readyFn(); err != nil {
			writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// playersResponse mirrors the upstream listing shape: the page items under
// "data" and the pagination token under "meta.next_cursor", null when the
// catalog is exhausted.
type playersResponse struct {
	Data []players.Player `json:"data"`
	Meta playersMeta      `json:"meta"`
}

type playersMeta struct {
	NextCursor *string `json:"next_cursor"`
}

// Players proxies the upstream player listing. Query parameters: cursor
// (opaque token, optional), per_page (optional), search (optional).
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	query := r.URL.Query()
	perPage := h.perPage
	if raw := query.Get("per_page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, r, http.StatusBadRequest, "per_page must be a positive integer", logger)
			return
		}
		perPage = parsed
	}

	req := providers.PageRequest{
		Cursor:  query.Get("cursor"),
		PerPage: perPage,
		Search:  strings.TrimSpace(query.Get("search")),
	}

	page, err := h.provider.FetchPlayers(r.Context(), req)
	if err != nil {
		logging.Error(logger, "player fetch failed", err, logging.FieldCursor, req.Cursor)
		writeError(w, r, http.StatusInternalServerError, playerFetchMessage(err), logger)
		return
	}

	resp := playersResponse{Data: page.Items, Meta: playersMeta{}}
	if resp.Data == nil {
		resp.Data = []players.Player{}
	}
	if page.NextCursor != "" {
		cursor := page.NextCursor
		resp.Meta.NextCursor = &cursor
	}
	writeJSON(w, http.StatusOK, resp, logger)
}

func playerFetchMessage(err error) string {
	if providers.IsExhausted(err) {
		return "rate limit exceeded after maximum retries"
	}
	if upErr, ok := providers.AsUpstreamError(err); ok {
		return upErr.Error()
	}
	return "failed to fetch players"
}

// rosterErrorStatus maps roster store failures onto HTTP status codes.
func rosterErrorStatus(err error) int {
	switch {
	case roster.IsValidation(err):
		return http.StatusBadRequest
	case roster.IsConflict(err):
		return http.StatusConflict
	case roster.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
