package balldontlie

import "time"

const (
	defaultBaseURL     = "https://api.balldontlie.io"
	defaultPerPage     = 10
	defaultHTTPTimeout = 10 * time.Second

	// The upstream listing is always narrowed to one season.
	seasonFilter = "2024"
)
