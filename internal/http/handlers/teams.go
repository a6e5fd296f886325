package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
	"github.com/ThantZinWinnnnn/team-task/internal/domain/teams"
)

// TeamsRoot serves the /teams collection.
func (h *Handler) TeamsRoot(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.roster.Teams(), logger)
	case http.MethodPost:
		var fields teams.Fields
		if !decodeBody(w, r, &fields, logger) {
			return
		}
		created, err := h.roster.CreateTeam(fields)
		if err != nil {
			writeError(w, r, rosterErrorStatus(err), err.Error(), logger)
			return
		}
		writeJSON(w, http.StatusCreated, created, logger)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	}
}

// TeamByID serves /teams/{id} and the nested /teams/{id}/players routes.
func (h *Handler) TeamByID(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	rest := strings.TrimPrefix(r.URL.Path, "/teams/")
	segments := strings.Split(strings.Trim(rest, "/"), "/")
	if segments[0] == "" {
		writeError(w, r, http.StatusNotFound, "not found", logger)
		return
	}
	id := segments[0]

	switch {
	case len(segments) == 1:
		h.serveTeam(w, r, id)
	case len(segments) == 2 && segments[1] == "players":
		h.addPlayer(w, r, id)
	case len(segments) == 3 && segments[1] == "players":
		h.removePlayer(w, r, id, segments[2])
	default:
		writeError(w, r, http.StatusNotFound, "not found", logger)
	}
}

func (h *Handler) serveTeam(w http.ResponseWriter, r *http.Request, id string) {
	logger := loggerFromContext(r, h.logger)
	switch r.Method {
	case http.MethodGet:
		team, ok := h.roster.TeamByID(id)
		if !ok {
			writeError(w, r, http.StatusNotFound, "team not found", logger)
			return
		}
		writeJSON(w, http.StatusOK, team, logger)
	case http.MethodPut:
		var fields teams.Fields
		if !decodeBody(w, r, &fields, logger) {
			return
		}
		updated, err := h.roster.UpdateTeam(id, fields)
		if err != nil {
			writeError(w, r, rosterErrorStatus(err), err.Error(), logger)
			return
		}
		writeJSON(w, http.StatusOK, updated, logger)
	case http.MethodDelete:
		if err := h.roster.DeleteTeam(id); err != nil {
			writeError(w, r, rosterErrorStatus(err), err.Error(), logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	}
}

func (h *Handler) addPlayer(w http.ResponseWriter, r *http.Request, id string) {
	logger := loggerFromContext(r, h.logger)
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
		return
	}

	var player players.Player
	if !decodeBody(w, r, &player, logger) {
		return
	}
	if player.ID == 0 {
		writeError(w, r, http.StatusBadRequest, "player id is required", logger)
		return
	}

	if err := h.roster.AddPlayerToTeam(id, player); err != nil {
		writeError(w, r, rosterErrorStatus(err), err.Error(), logger)
		return
	}
	team, _ := h.roster.TeamByID(id)
	writeJSON(w, http.StatusOK, team, logger)
}

func (h *Handler) removePlayer(w http.ResponseWriter, r *http.Request, id, rawPlayerID string) {
	logger := loggerFromContext(r, h.logger)
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
		return
	}

	playerID, err := strconv.Atoi(rawPlayerID)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "player id must be an integer", logger)
		return
	}

	if err := h.roster.RemovePlayerFromTeam(id, playerID); err != nil {
		writeError(w, r, rosterErrorStatus(err), err.Error(), logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, logger *slog.Logger) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return false
	}
	return true
}
