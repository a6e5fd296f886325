package handlers

import (
	"errors"
	"net/http"

	"github.com/ThantZinWinnnnn/team-task/internal/identity"
)

type sessionResponse struct {
	User          string `json:"user"`
	Authenticated bool   `json:"authenticated"`
}

type loginRequest struct {
	Name string `json:"name"`
}

// Session serves the current identity: GET reads it, POST logs in with a
// display name, DELETE logs out.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, sessionResponse{
			User:          h.identity.Current(),
			Authenticated: h.identity.IsAuthenticated(),
		}, logger)
	case http.MethodPost:
		var req loginRequest
		if !decodeBody(w, r, &req, logger) {
			return
		}
		if err := h.identity.Login(req.Name); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, identity.ErrEmptyName) {
				status = http.StatusBadRequest
			}
			writeError(w, r, status, err.Error(), logger)
			return
		}
		writeJSON(w, http.StatusCreated, sessionResponse{
			User:          h.identity.Current(),
			Authenticated: true,
		}, logger)
	case http.MethodDelete:
		if err := h.identity.Logout(); err != nil {
			writeError(w, r, http.StatusInternalServerError, "failed to log out", logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	}
}
