package config

const (
	envBdlBaseURL = "API_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"
	envBdlPerPage = "PLAYERS_PER_PAGE"

	defaultBdlBaseURL = "https://api.balldontlie.io"
	defaultPerPage    = 10
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL string
	APIKey  string
	PerPage int
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL: envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:  envOrDefault(envBdlAPIKey, ""),
		PerPage: intEnvOrDefault(envBdlPerPage, defaultPerPage),
	}
}
