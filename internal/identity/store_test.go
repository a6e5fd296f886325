package identity

import (
	"errors"
	"testing"

	"github.com/ThantZinWinnnnn/team-task/internal/storage"
)

func TestLoginPersistsAndAuthenticates(t *testing.T) {
	mem := storage.NewMemoryStore()
	store, err := NewStore(mem, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if store.IsAuthenticated() {
		t.Fatal("fresh store should be logged out")
	}

	if err := store.Login("Jordan"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := store.Current(); got != "Jordan" {
		t.Errorf("Current = %q, want %q", got, "Jordan")
	}
	if !store.IsAuthenticated() {
		t.Error("expected authenticated after login")
	}

	persisted, err := mem.LoadUser()
	if err != nil {
		t.Fatalf("LoadUser: %v", err)
	}
	if persisted != "Jordan" {
		t.Errorf("persisted = %q, want %q", persisted, "Jordan")
	}
}

func TestLoginTrimsAndRejectsBlank(t *testing.T) {
	mem := storage.NewMemoryStore()
	store, err := NewStore(mem, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := store.Login("  Jordan  "); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := store.Current(); got != "Jordan" {
		t.Errorf("Current = %q, want trimmed name", got)
	}

	for _, name := range []string{"", "   ", "\t\n"} {
		if err := store.Login(name); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Login(%q) = %v, want ErrEmptyName", name, err)
		}
	}
	if got := store.Current(); got != "Jordan" {
		t.Errorf("rejected login replaced identity: %q", got)
	}
}

func TestLogoutClearsPersistedValue(t *testing.T) {
	mem := storage.NewMemoryStore()
	store, err := NewStore(mem, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := store.Login("Jordan"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if store.IsAuthenticated() {
		t.Error("expected logged out")
	}

	persisted, err := mem.LoadUser()
	if err != nil {
		t.Fatalf("LoadUser: %v", err)
	}
	if persisted != "" {
		t.Errorf("persisted identity not cleared: %q", persisted)
	}

	// Logging out twice is harmless.
	if err := store.Logout(); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestRehydratesOnStartup(t *testing.T) {
	mem := storage.NewMemoryStore()
	first, err := NewStore(mem, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := first.Login("Jordan"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	second, err := NewStore(mem, nil)
	if err != nil {
		t.Fatalf("NewStore after restart: %v", err)
	}
	if got := second.Current(); got != "Jordan" {
		t.Errorf("Current after restart = %q, want %q", got, "Jordan")
	}
}

func TestFailedPersistKeepsPreviousIdentity(t *testing.T) {
	mem := storage.NewMemoryStore()
	store, err := NewStore(mem, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Login("Jordan"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	mem.FailSaves = errors.New("disk full")
	if err := store.Login("Riley"); err == nil {
		t.Fatal("expected persist failure to surface")
	}
	if got := store.Current(); got != "Jordan" {
		t.Errorf("failed login replaced identity: %q", got)
	}
}
