package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/teams"
)

// File names under the data directory. They mirror the browser's storage
// keys: one document for the team set, one for the signed-in user.
const (
	teamsFile = "teams.json"
	userFile  = "user.json"
)

// FSStore persists the team set and identity as JSON documents on disk.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a truncated document behind.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a file-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadTeams reads the persisted team set. A missing document yields an
// empty set, not an error: first boot has nothing persisted yet.
func (s *FSStore) LoadTeams() ([]teams.Team, error) {
	var set []teams.Team
	if err := s.load(teamsFile, &set); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []teams.Team{}, nil
		}
		return nil, err
	}
	if set == nil {
		set = []teams.Team{}
	}
	return set, nil
}

// SaveTeams replaces the persisted team set wholesale.
func (s *FSStore) SaveTeams(set []teams.Team) error {
	if set == nil {
		set = []teams.Team{}
	}
	return s.save(teamsFile, set)
}

// LoadUser reads the persisted identity. Missing means logged out.
func (s *FSStore) LoadUser() (string, error) {
	var name string
	if err := s.load(userFile, &name); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

// SaveUser persists the current identity.
func (s *FSStore) SaveUser(name string) error {
	return s.save(userFile, name)
}

// ClearUser removes the persisted identity. Clearing an absent identity
// is not an error.
func (s *FSStore) ClearUser() error {
	err := os.Remove(filepath.Join(s.basePath, userFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Ready reports whether the data directory is usable. It creates the
// directory if missing so first boot passes the probe.
func (s *FSStore) Ready() error {
	if s == nil {
		return errors.New("storage not configured")
	}
	return os.MkdirAll(s.basePath, 0o755)
}

func (s *FSStore) load(name string, payload any) error {
	if s == nil {
		return errors.New("storage not configured")
	}
	f, err := os.Open(filepath.Join(s.basePath, name))
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(payload)
}

func (s *FSStore) save(name string, payload any) error {
	if s == nil {
		return errors.New("storage not configured")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	target := filepath.Join(s.basePath, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
