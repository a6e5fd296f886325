package config

import "testing"

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CFG_TEST_KEY", "value")
	if got := envOrDefault("CFG_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
	if got := envOrDefault("CFG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"valid", "25", 25},
		{"invalid", "abc", 10},
		{"zero", "0", 10},
		{"negative", "-3", 10},
		{"empty", "", 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.raw != "" {
				t.Setenv("CFG_TEST_INT", tc.raw)
			}
			if got := intEnvOrDefault("CFG_TEST_INT", 10); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"maybe", true},
	}

	for _, tc := range cases {
		t.Setenv("CFG_TEST_BOOL", tc.raw)
		if got := boolEnvOrDefault("CFG_TEST_BOOL", true); got != tc.want {
			t.Errorf("boolEnvOrDefault(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
