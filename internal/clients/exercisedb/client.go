// Package exercisedb fetches the exercise catalog the workout page
// searches and filters.
package exercisedb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fittrack/internal/models"
)

const (
	defaultBaseURL = "https://exercisedb.p.rapidapi.com"
	rapidAPIHost   = "exercisedb.p.rapidapi.com"
)

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Exercises fetches the full catalog.
func (c *Client) Exercises(ctx context.Context) ([]models.Workout, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, fmt.Errorf("missing exercise API key")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/exercises", nil)
	if err != nil {
		return nil, fmt.Errorf("create exercises request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.APIKey)
	req.Header.Set("x-rapidapi-host", rapidAPIHost)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute exercises request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read exercises response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("exercises request failed with status %d", resp.StatusCode)
	}

	var catalog []models.Workout
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("decode exercises response: %w", err)
	}
	return catalog, nil
}
