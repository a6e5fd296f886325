// Package identity holds the current logged-in display name. It is a
// convenience layer, not a security boundary: presence of a non-empty name
// means "authenticated" and nothing more.
package identity

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ThantZinWinnnnn/team-task/internal/logging"
)

// ErrEmptyName rejects logins with a blank display name.
var ErrEmptyName = errors.New("display name must not be empty")

// Persister stores the display name between runs.
type Persister interface {
	LoadUser() (string, error)
	SaveUser(name string) error
	ClearUser() error
}

// Store keeps the current identity in memory and writes every change
// through to its Persister before committing it.
type Store struct {
	mu      sync.Mutex
	name    string
	persist Persister
	logger  *slog.Logger
}

// NewStore rehydrates the identity from storage. A missing persisted value
// is not an error; the store simply starts logged out.
func NewStore(persist Persister, logger *slog.Logger) (*Store, error) {
	name, err := persist.LoadUser()
	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}
	return &Store{name: name, persist: persist, logger: logger}, nil
}

// Login sets the current identity. The name is trimmed; a blank result is
// rejected and the previous identity stays in place.
func (s *Store) Login(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist.SaveUser(trimmed); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}
	s.name = trimmed
	logging.Info(s.logger, "user logged in", logging.FieldUser, trimmed)
	return nil
}

// Logout clears the identity and removes the persisted value.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist.ClearUser(); err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}
	s.name = ""
	logging.Info(s.logger, "user logged out")
	return nil
}

// Current returns the logged-in display name, empty when logged out.
func (s *Store) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// IsAuthenticated reports whether a non-empty identity is set.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != ""
}
