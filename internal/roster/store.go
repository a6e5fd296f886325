package roster

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
	"github.com/ThantZinWinnnnn/team-task/internal/domain/teams"
	"github.com/ThantZinWinnnnn/team-task/internal/logging"
	"github.com/ThantZinWinnnnn/team-task/internal/metrics"
)

// Persister is the durable home of the team set.
type Persister interface {
	LoadTeams() ([]teams.Team, error)
	SaveTeams([]teams.Team) error
}

// Store owns the lifetime of every team. All mutations run to completion
// under one lock: the next state is computed, persisted, and only then
// committed, so a failed save leaves both memory and disk at the prior
// state.
type Store struct {
	mu       sync.Mutex
	teams    []teams.Team
	persist  Persister
	logger   *slog.Logger
	recorder *metrics.Recorder
	validate *validator.Validate
	newID    func() string
}

// NewStore constructs a Store and rehydrates the persisted team set.
// Nothing persisted yet means an empty set.
func NewStore(persist Persister, logger *slog.Logger, recorder *metrics.Recorder) (*Store, error) {
	set, err := persist.LoadTeams()
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}

	return &Store{
		teams:    set,
		persist:  persist,
		logger:   logger,
		recorder: recorder,
		validate: validator.New(),
		newID:    uuid.NewString,
	}, nil
}

// Teams returns a deep copy of the current team set in creation order.
func (s *Store) Teams() []teams.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSet(s.teams)
}

// TeamByID returns a copy of a single team if present.
func (s *Store) TeamByID(id string) (teams.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := indexOf(s.teams, id); idx >= 0 {
		return s.teams[idx].Clone(), true
	}
	return teams.Team{}, false
}

// CreateTeam validates the fields, generates the team's identifier and
// persists the grown set. The new team starts with an empty roster.
func (s *Store) CreateTeam(fields teams.Fields) (teams.Team, error) {
	if err := s.validateFields(fields); err != nil {
		s.recorder.RecordRosterMutation(OpCreateTeam, err)
		return teams.Team{}, err
	}

	act := createTeam{id: s.newID(), fields: fields}
	if err := s.dispatch(act); err != nil {
		return teams.Team{}, err
	}

	created, _ := s.TeamByID(act.id)
	logging.Info(s.logger, "team created", logging.FieldTeamID, act.id, "name", fields.Name)
	return created, nil
}

// UpdateTeam replaces the named fields of an existing team, preserving its
// roster. The uniqueness rule ignores the team itself.
func (s *Store) UpdateTeam(id string, fields teams.Fields) (teams.Team, error) {
	if err := s.validateFields(fields); err != nil {
		s.recorder.RecordRosterMutation(OpUpdateTeam, err)
		return teams.Team{}, err
	}

	if err := s.dispatch(updateTeam{id: id, fields: fields}); err != nil {
		return teams.Team{}, err
	}

	updated, _ := s.TeamByID(id)
	logging.Info(s.logger, "team updated", logging.FieldTeamID, id, "name", fields.Name)
	return updated, nil
}

// DeleteTeam removes the team and all of its player associations. Deleting
// an unknown id is a no-op; the (unchanged) set is still persisted.
func (s *Store) DeleteTeam(id string) error {
	if err := s.dispatch(deleteTeam{id: id}); err != nil {
		return err
	}
	logging.Info(s.logger, "team deleted", logging.FieldTeamID, id)
	return nil
}

// AddPlayerToTeam appends the player to the team's roster and bumps the
// declared player count. A player may be on at most one team at a time.
func (s *Store) AddPlayerToTeam(teamID string, player players.Player) error {
	if err := s.dispatch(addPlayer{teamID: teamID, player: player}); err != nil {
		return err
	}
	logging.Info(s.logger, "player added",
		logging.FieldTeamID, teamID,
		logging.FieldPlayerID, player.ID,
	)
	return nil
}

// RemovePlayerFromTeam drops the player from that team's roster if present
// and decrements the declared count. Removing an absent player (or from an
// unknown team) is a no-op.
func (s *Store) RemovePlayerFromTeam(teamID string, playerID int) error {
	if err := s.dispatch(removePlayer{teamID: teamID, playerID: playerID}); err != nil {
		return err
	}
	logging.Info(s.logger, "player removed",
		logging.FieldTeamID, teamID,
		logging.FieldPlayerID, playerID,
	)
	return nil
}

// dispatch computes the next state for the action, persists it, then
// commits it. Mutations are serialized by the store lock.
func (s *Store) dispatch(act action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := apply(s.teams, act)
	if err != nil {
		s.recorder.RecordRosterMutation(act.name(), err)
		return err
	}

	if err := s.persist.SaveTeams(next); err != nil {
		s.recorder.RecordRosterMutation(act.name(), err)
		logging.Error(s.logger, "persist teams failed", err)
		return fmt.Errorf("persist teams: %w", err)
	}

	s.teams = next
	s.recorder.RecordRosterMutation(act.name(), nil)
	return nil
}

func (s *Store) validateFields(fields teams.Fields) error {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{
			Field:   fieldErrs[0].Field(),
			Message: validationMessage(fieldErrs[0]),
		}
	}
	return &ValidationError{Message: err.Error()}
}

func validationMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Name" && fe.Tag() == "min":
		return "name must be at least 2 characters"
	case fe.Field() == "PlayerCount":
		return "player count must be non-negative"
	case fe.Tag() == "required":
		return "is required"
	default:
		return "is invalid"
	}
}
