package handlers

import (
	"encoding/json"
	"net/http"

	"fittrack/internal/clients/weather"
)

type WeatherHandler struct {
	weather *weather.Client
}

func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	return &WeatherHandler{weather: client}
}

// Get fetches current conditions for ?city= and attaches the activity
// alert, if any.
func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		http.Error(w, "city parameter required", http.StatusBadRequest)
		return
	}
	report, err := h.weather.Current(r.Context(), city)
	if err != nil {
		http.Error(w, "could not fetch weather data", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"city":      report.Name,
		"temp":      report.Main.Temp,
		"condition": report.Condition(),
		"alert":     report.Alert(),
	})
}
