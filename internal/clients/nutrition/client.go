// Package nutrition looks up nutrition facts for a free-text ingredient
// list.
package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fittrack/internal/models"
)

const (
	defaultBaseURL = "https://edamam-edamam-nutrition-analysis.p.rapidapi.com"
	rapidAPIHost   = "edamam-edamam-nutrition-analysis.p.rapidapi.com"
)

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Analyze fetches nutrition data for an ingredient list such as
// "1 cup rice, 10 oz chickpeas".
func (c *Client) Analyze(ctx context.Context, ingredients string) (models.Nutrition, error) {
	if strings.TrimSpace(ingredients) == "" {
		return models.Nutrition{}, fmt.Errorf("empty ingredient list")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return models.Nutrition{}, fmt.Errorf("missing nutrition API key")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	endpoint := fmt.Sprintf("%s/api/nutrition-data?nutrition-type=cooking&ingr=%s",
		base, url.QueryEscape(ingredients))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Nutrition{}, fmt.Errorf("create nutrition request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.APIKey)
	req.Header.Set("x-rapidapi-host", rapidAPIHost)

	resp, err := httpClient.Do(req)
	if err != nil {
		return models.Nutrition{}, fmt.Errorf("execute nutrition request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Nutrition{}, fmt.Errorf("read nutrition response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Nutrition{}, fmt.Errorf("nutrition request failed with status %d", resp.StatusCode)
	}

	var parsed models.Nutrition
	if err := json.Unmarshal(body, &parsed); err != nil {
		return models.Nutrition{}, fmt.Errorf("decode nutrition response: %w", err)
	}
	return parsed, nil
}
