// Package weather fetches current conditions by city for activity
// planning alerts.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Report is the slice of the current-weather response the planner uses.
type Report struct {
	Name string `json:"name"`
	Cod  int    `json:"cod"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// Condition returns the primary condition, lowercased.
func (r Report) Condition() string {
	if len(r.Weather) == 0 {
		return ""
	}
	return strings.ToLower(r.Weather[0].Main)
}

// Alert returns a warning when conditions make outdoor activity a bad
// idea, or the empty string.
func (r Report) Alert() string {
	cond := r.Condition()
	if r.Main.Temp < 0 || cond == "storm" || cond == "rain" {
		return "Alert: Bad weather conditions detected. Please take precautions."
	}
	return ""
}

type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Current fetches the current weather for a city in metric units.
func (c *Client) Current(ctx context.Context, city string) (Report, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return Report{}, fmt.Errorf("missing weather API key")
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}

	endpoint := fmt.Sprintf("%s/data/2.5/weather?q=%s&units=metric&appid=%s",
		base, url.QueryEscape(city), url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("create weather request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("execute weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, fmt.Errorf("read weather response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Report{}, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}

	var report Report
	if err := json.Unmarshal(body, &report); err != nil {
		return Report{}, fmt.Errorf("decode weather response: %w", err)
	}
	if report.Cod != 200 {
		return Report{}, fmt.Errorf("no weather available for city %q", city)
	}
	return report, nil
}
