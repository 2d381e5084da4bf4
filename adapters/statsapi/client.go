package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tpstats/domain/timepoint"
	"tpstats/internal/errors"
)

// Config holds the backend connection settings
type Config struct {
	BaseURL string
	// Timeout bounds a whole request; zero means no timeout
	Timeout time.Duration
}

// Client reads timepoint statistics from GET {BaseURL}/stats/timepoint/{id}
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new stats backend client
func NewClient(config Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if base == "" {
		return nil, errors.ConfigInvalid("stats base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.ConfigInvalid(fmt.Sprintf("invalid stats base URL %q", config.BaseURL))
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// Endpoint returns the URL fetched for a timepoint
func (c *Client) Endpoint(id timepoint.ID) string {
	return c.baseURL + "/stats/timepoint/" + url.PathEscape(id.String())
}

// FetchTimepoint issues one GET for the timepoint. The HTTP status is not
// inspected: any JSON object body is handed back for the caller to read
// its status field. No retries.
func (c *Client) FetchTimepoint(ctx context.Context, id timepoint.ID) (*timepoint.StatsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(id), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for timepoint %s", id)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.ExternalServiceError("stats", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ExternalServiceError("stats", fmt.Errorf("failed to read response: %w", err))
	}

	parsed, err := timepoint.ParseResponse(body)
	if err != nil {
		return nil, errors.DecodeError(fmt.Sprintf("stats backend returned HTTP %d with an undecodable body", resp.StatusCode), err)
	}
	return parsed, nil
}
