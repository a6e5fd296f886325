package balldontlie

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
	"github.com/ThantZinWinnnnn/team-task/internal/providers"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	PerPage    int
}

// Client fetches player pages from the balldontlie API and maps them to
// domain models. One call performs exactly one upstream request; retry
// behavior lives in the wrapping provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	perPage    int
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		perPage:    resolvePerPage(cfg.PerPage),
	}
}

// FetchPlayers retrieves one page of the season's player listing.
func (c *Client) FetchPlayers(ctx context.Context, req providers.PageRequest) (players.Page, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return players.Page{}, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return players.Page{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var payload playersResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
			return players.Page{}, decodeErr
		}
		return mapPage(payload), nil

	case resp.StatusCode == http.StatusTooManyRequests:
		return players.Page{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    readErrorBody(resp.Body),
		}

	default:
		return players.Page{}, &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    readErrorBody(resp.Body),
		}
	}
}

func (c *Client) buildRequest(ctx context.Context, req providers.PageRequest) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/players", nil)
	if err != nil {
		return nil, err
	}

	perPage := req.PerPage
	if perPage <= 0 {
		perPage = c.perPage
	}

	q := httpReq.URL.Query()
	q.Set("season", seasonFilter)
	q.Set("per_page", strconv.Itoa(perPage))
	if req.Cursor != "" {
		q.Set("cursor", req.Cursor)
	}
	if req.Search != "" {
		q.Set("search", req.Search)
	}
	httpReq.URL.RawQuery = q.Encode()

	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return httpReq, nil
}

func readErrorBody(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 512))
	return strings.TrimSpace(string(raw))
}
