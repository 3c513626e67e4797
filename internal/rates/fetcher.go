// Package rates manages the bounded set of exchange-rate viewer cards and the
// external rate lookups behind them.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher looks up the conversion rate for a currency pair. A zero or absent
// rate means "unknown" to callers, never a crash.
type Fetcher interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

const defaultEndpoint = "https://api.exchangerate-api.com/v4/latest"

// HTTPFetcher fetches rates from an exchangerate-api compatible endpoint.
type HTTPFetcher struct {
	httpClient *http.Client
	endpoint   string
}

// NewHTTPFetcher creates a fetcher. An empty endpoint selects the public
// exchangerate-api service.
func NewHTTPFetcher(endpoint string, timeout time.Duration) *HTTPFetcher {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPFetcher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Rate fetches the latest quote for one unit of from expressed in to.
func (f *HTTPFetcher) Rate(ctx context.Context, from, to string) (float64, error) {
	url := fmt.Sprintf("%s/%s", f.endpoint, from)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rate request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}

	rate, ok := parsed.Rates[to]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("no rate for %s/%s", from, to)
	}
	return rate, nil
}
