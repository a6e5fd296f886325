package roster

import (
	"strings"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
	"github.com/ThantZinWinnnnn/team-task/internal/domain/teams"
)

// Operation names, shared with metrics labels.
const (
	OpCreateTeam   = "create_team"
	OpUpdateTeam   = "update_team"
	OpDeleteTeam   = "delete_team"
	OpAddPlayer    = "add_player"
	OpRemovePlayer = "remove_player"
)

// action is one roster mutation. apply turns an action and the current team
// set into the next one without touching either; the Store persists and
// commits the result. Keeping the transitions pure makes every rule below
// testable without storage or HTTP in the way.
type action interface {
	name() string
}

type createTeam struct {
	id     string
	fields teams.Fields
}

func (createTeam) name() string { return OpCreateTeam }

type updateTeam struct {
	id     string
	fields teams.Fields
}

func (updateTeam) name() string { return OpUpdateTeam }

type deleteTeam struct {
	id string
}

func (deleteTeam) name() string { return OpDeleteTeam }

type addPlayer struct {
	teamID string
	player players.Player
}

func (addPlayer) name() string { return OpAddPlayer }

type removePlayer struct {
	teamID   string
	playerID int
}

func (removePlayer) name() string { return OpRemovePlayer }

func apply(state []teams.Team, act action) ([]teams.Team, error) {
	switch a := act.(type) {
	case createTeam:
		return applyCreate(state, a)
	case updateTeam:
		return applyUpdate(state, a)
	case deleteTeam:
		return applyDelete(state, a)
	case addPlayer:
		return applyAddPlayer(state, a)
	case removePlayer:
		return applyRemovePlayer(state, a)
	default:
		return state, nil
	}
}

func applyCreate(state []teams.Team, a createTeam) ([]teams.Team, error) {
	if nameTaken(state, a.fields.Name, "") {
		return nil, &ValidationError{Field: "name", Message: "team name must be unique"}
	}

	next := cloneSet(state)
	next = append(next, teams.Team{
		ID:          a.id,
		Name:        a.fields.Name,
		PlayerCount: a.fields.PlayerCount,
		Region:      a.fields.Region,
		Country:     a.fields.Country,
		Players:     []players.Player{},
	})
	return next, nil
}

func applyUpdate(state []teams.Team, a updateTeam) ([]teams.Team, error) {
	idx := indexOf(state, a.id)
	if idx < 0 {
		return nil, &NotFoundError{TeamID: a.id}
	}
	if nameTaken(state, a.fields.Name, a.id) {
		return nil, &ValidationError{Field: "name", Message: "team name must be unique"}
	}

	next := cloneSet(state)
	// Named fields are replaced; the roster is preserved as-is.
	next[idx].Name = a.fields.Name
	next[idx].PlayerCount = a.fields.PlayerCount
	next[idx].Region = a.fields.Region
	next[idx].Country = a.fields.Country
	return next, nil
}

func applyDelete(state []teams.Team, a deleteTeam) ([]teams.Team, error) {
	next := make([]teams.Team, 0, len(state))
	for _, t := range state {
		if t.ID == a.id {
			continue
		}
		next = append(next, t.Clone())
	}
	// Deleting an unknown team is a no-op: the next state simply equals
	// the current one.
	return next, nil
}

func applyAddPlayer(state []teams.Team, a addPlayer) ([]teams.Team, error) {
	idx := indexOf(state, a.teamID)
	if idx < 0 {
		return nil, &NotFoundError{TeamID: a.teamID}
	}
	for _, t := range state {
		if t.HasPlayer(a.player.ID) {
			return nil, &ConflictError{PlayerID: a.player.ID, TeamID: t.ID}
		}
	}

	next := cloneSet(state)
	next[idx].Players = append(next[idx].Players, a.player)
	next[idx].PlayerCount++
	return next, nil
}

func applyRemovePlayer(state []teams.Team, a removePlayer) ([]teams.Team, error) {
	next := cloneSet(state)
	idx := indexOf(next, a.teamID)
	if idx < 0 {
		return next, nil
	}

	roster := next[idx].Players
	for i, p := range roster {
		if p.ID == a.playerID {
			next[idx].Players = append(roster[:i:i], roster[i+1:]...)
			next[idx].PlayerCount--
			break
		}
	}
	return next, nil
}

// nameTaken checks the case-insensitive uniqueness rule, ignoring the team
// identified by excludeID (the team being updated).
func nameTaken(state []teams.Team, name, excludeID string) bool {
	for _, t := range state {
		if t.ID == excludeID {
			continue
		}
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

func indexOf(state []teams.Team, id string) int {
	for i, t := range state {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneSet(state []teams.Team) []teams.Team {
	next := make([]teams.Team, len(state))
	for i, t := range state {
		next[i] = t.Clone()
	}
	return next
}
