package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CBRClient fetches the daily rate snapshot published by the Central Bank
// of Russia as JSON.
type CBRClient struct {
	http *http.Client
	url  string
}

type Quote struct {
	Value    float64 `json:"Value"`
	Previous float64 `json:"Previous"`
}

type DailyRates struct {
	Date   string           `json:"Date"`
	Valute map[string]Quote `json:"Valute"`
}

func (c *CBRClient) GetDailyRates(ctx context.Context) (*DailyRates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily rates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute daily rates request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d from rate source: %s", resp.StatusCode, resp.Status)
	}

	var body DailyRates
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode daily rates response: %w", err)
	}

	if len(body.Valute) == 0 {
		return nil, fmt.Errorf("rate source returned no quotes")
	}

	return &body, nil
}

func NewCBRClient(httpClient *http.Client, url string) *CBRClient {
	return &CBRClient{http: httpClient, url: url}
}
