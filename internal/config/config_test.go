package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{envPort, envDataDir, envBdlBaseURL, envBdlAPIKey, envBdlPerPage, envMetricsOn, envMetricsPort} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, defaultPort)
	}
	if cfg.DataDir != defaultDataDir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, defaultDataDir)
	}
	if cfg.Balldontlie.BaseURL != defaultBdlBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.Balldontlie.BaseURL, defaultBdlBaseURL)
	}
	if cfg.Balldontlie.PerPage != defaultPerPage {
		t.Errorf("PerPage = %d, want %d", cfg.Balldontlie.PerPage, defaultPerPage)
	}
	if !cfg.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envDataDir, "/tmp/rosters")
	t.Setenv(envBdlBaseURL, "https://proxy.internal")
	t.Setenv(envBdlAPIKey, "secret")
	t.Setenv(envBdlPerPage, "25")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DataDir != "/tmp/rosters" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Balldontlie.BaseURL != "https://proxy.internal" {
		t.Errorf("BaseURL = %q", cfg.Balldontlie.BaseURL)
	}
	if cfg.Balldontlie.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.Balldontlie.APIKey)
	}
	if cfg.Balldontlie.PerPage != 25 {
		t.Errorf("PerPage = %d", cfg.Balldontlie.PerPage)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled")
	}
}
