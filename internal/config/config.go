package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	DataDir     string
	Balldontlie BalldontlieConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present;
// variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		DataDir:     envOrDefault(envDataDir, defaultDataDir),
		Balldontlie: loadBalldontlie(),
		Metrics:     loadMetrics(),
	}
}
