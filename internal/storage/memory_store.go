package storage

import (
	"sync"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/teams"
)

// MemoryStore is an in-process implementation of the same save/load surface
// as FSStore. It backs tests and can stand in wherever durability is not
// required.
type MemoryStore struct {
	mu    sync.Mutex
	teams []teams.Team
	user  string

	// FailSaves, when set, makes every mutation fail with that error.
	FailSaves error
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{teams: []teams.Team{}}
}

func (s *MemoryStore) LoadTeams() ([]teams.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]teams.Team, len(s.teams))
	for i, t := range s.teams {
		out[i] = t.Clone()
	}
	return out, nil
}

func (s *MemoryStore) SaveTeams(set []teams.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.teams = make([]teams.Team, len(set))
	for i, t := range set {
		s.teams[i] = t.Clone()
	}
	return nil
}

func (s *MemoryStore) LoadUser() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, nil
}

func (s *MemoryStore) SaveUser(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.user = name
	return nil
}

func (s *MemoryStore) ClearUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.user = ""
	return nil
}
