package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/teams"
)

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	h(rec, req)
	return rec
}

func createTeam(t *testing.T, h *Handler, name string) teams.Team {
	t.Helper()
	rec := postJSON(t, h.TeamsRoot, "/teams",
		`{"name":"`+name+`","playerCount":0,"region":"NA","country":"US"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create %q: status %d body %s", name, rec.Code, rec.Body.String())
	}
	var team teams.Team
	if err := json.Unmarshal(rec.Body.Bytes(), &team); err != nil {
		t.Fatalf("decode created team: %v", err)
	}
	return team
}

func TestCreateAndListTeams(t *testing.T) {
	h := newTestHandler(t, &stubProvider{})

	created := createTeam(t, h, "Alpha")
	if created.ID == "" {
		t.Error("created team missing id")
	}

	rec := httptest.NewRecorder()
	h.TeamsRoot(rec, httptest.NewRequest("GET", "/teams", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var listed []teams.Team
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("listed = %+v", listed)
	}
}

func TestCreateTeamRejections(t *testing.T) {
	h := newTestHandler(t, &stubProvider{})
	createTeam(t, h, "Alpha")

	cases := []struct {
		name string
		body string
		want int
	}{
		{"duplicate name different case", `{"name":"alpha","playerCount":0,"region":"NA","country":"US"}`, http.StatusBadRequest},
		{"short name", `{"name":"A","playerCount":0,"region":"NA","country":"US"}`, http.StatusBadRequest},
		{"negative count", `{"name":"Bravo","playerCount":-1,"region":"NA","country":"US"}`, http.StatusBadRequest},
		{"malformed json", `{"name":`, http.StatusBadRequest},
		{"unknown field", `{"name":"Bravo","playerCount":0,"region":"NA","country":"US","bogus":1}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.TeamsRoot, "/teams", tc.body)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestGetUpdateDeleteTeam(t *testing.T) {
	h := newTestHandler(t, &stubProvider{})
	team := createTeam(t, h, "Alpha")

	rec := httptest.NewRecorder()
	h.TeamByID(rec, httptest.NewRequest("GET", "/teams/"+team.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/teams/"+team.ID,
		strings.NewReader(`{"name":"Alpha Prime","playerCount":3,"region":"EU","country":"DE"}`))
	h.TeamByID(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d body %s", rec.Code, rec.Body.String())
	}
	var updated teams.Team
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Name != "Alpha Prime" || updated.PlayerCount != 3 {
		t.Errorf("updated = %+v", updated)
	}

	rec = httptest.NewRecorder()
	h.TeamByID(rec, httptest.NewRequest("DELETE", "/teams/"+team.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.TeamByID(rec, httptest.NewRequest("GET", "/teams/"+team.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", "/teams/missing",
		strings.NewReader(`{"name":"Ghost","playerCount":0,"region":"NA","country":"US"}`))
	h.TeamByID(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("update missing = %d, want 404", rec.Code)
	}
}

func TestAddAndRemovePlayer(t *testing.T) {
	h := newTestHandler(t, &stubProvider{})
	alpha := createTeam(t, h, "Alpha")
	bravo := createTeam(t, h, "Bravo")

	playerBody := `{"id":7,"first_name":"Stephen","last_name":"Curry","position":"G","height":1.88,"weight":84,"national_team":null}`

	rec := postJSON(t, h.TeamByID, "/teams/"+alpha.ID+"/players", playerBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d body %s", rec.Code, rec.Body.String())
	}
	var withPlayer teams.Team
	if err := json.Unmarshal(rec.Body.Bytes(), &withPlayer); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !withPlayer.HasPlayer(7) || withPlayer.PlayerCount != 1 {
		t.Errorf("team after add = %+v", withPlayer)
	}

	// Assignment is exclusive across teams.
	rec = postJSON(t, h.TeamByID, "/teams/"+bravo.ID+"/players", playerBody)
	if rec.Code != http.StatusConflict {
		t.Errorf("cross-team add = %d, want 409", rec.Code)
	}

	// Missing and malformed player payloads.
	rec = postJSON(t, h.TeamByID, "/teams/"+alpha.ID+"/players", `{"first_name":"NoID"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing id = %d, want 400", rec.Code)
	}
	rec = postJSON(t, h.TeamByID, "/teams/missing/players", playerBody)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown team add = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.TeamByID(rec, httptest.NewRequest("DELETE", "/teams/"+alpha.ID+"/players/7", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("remove status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.TeamByID(rec, httptest.NewRequest("DELETE", "/teams/"+alpha.ID+"/players/notanint", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-integer player id = %d, want 400", rec.Code)
	}

	// After removal the player can join the other team.
	rec = postJSON(t, h.TeamByID, "/teams/"+bravo.ID+"/players", playerBody)
	if rec.Code != http.StatusOK {
		t.Errorf("reassign = %d body %s", rec.Code, rec.Body.String())
	}
}

func TestTeamSubtreeUnknownRoutes(t *testing.T) {
	h := newTestHandler(t, &stubProvider{})
	team := createTeam(t, h, "Alpha")

	for _, target := range []string{"/teams/", "/teams/" + team.ID + "/bogus", "/teams/" + team.ID + "/players/7/extra"} {
		rec := httptest.NewRecorder()
		h.TeamByID(rec, httptest.NewRequest("GET", target, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s status = %d, want 404", target, rec.Code)
		}
	}
}
