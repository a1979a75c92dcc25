// Package rates handles fetching USD exchange rates from the open.er-api.com service
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the endpoint serving the latest USD rate table
const DefaultBaseURL = "https://open.er-api.com/v6/latest/USD"

// apiResponse represents the response from the er-api service
type apiResponse struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	Rates              map[string]float64 `json:"rates"`
}

// Snapshot holds one fetched exchange-rate table
type Snapshot struct {
	Base      string
	FetchedAt time.Time
	Rates     map[string]float64
}

// Client fetches rate tables from the upstream service
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new rates client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch retrieves the current USD rate table
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Result != "success" {
		return nil, fmt.Errorf("upstream returned result %q", response.Result)
	}
	if len(response.Rates) == 0 {
		return nil, fmt.Errorf("upstream returned no rates")
	}

	return &Snapshot{
		Base:      response.BaseCode,
		FetchedAt: time.Now().UTC(),
		Rates:     response.Rates,
	}, nil
}
