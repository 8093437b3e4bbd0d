package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fittrack/internal/clients/nutrition"
	"fittrack/internal/middleware"
	"fittrack/internal/models"
	"fittrack/internal/services"
	"fittrack/internal/session"
)

type FoodWaterHandler struct {
	foodWater *services.FoodWaterService
	sessions  *session.Manager
	nutrition *nutrition.Client
}

func NewFoodWaterHandler(foodWater *services.FoodWaterService, sessions *session.Manager, client *nutrition.Client) *FoodWaterHandler {
	return &FoodWaterHandler{foodWater: foodWater, sessions: sessions, nutrition: client}
}

// Lookup analyzes an ingredient list without logging it, returning the
// nutrition facts plus a goal-aware suggestion.
func (h *FoodWaterHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	ingr := r.URL.Query().Get("ingr")
	if ingr == "" {
		http.Error(w, "ingr parameter required", http.StatusBadRequest)
		return
	}
	data, err := h.nutrition.Analyze(r.Context(), ingr)
	if err != nil {
		http.Error(w, "could not fetch nutrition data", http.StatusBadGateway)
		return
	}
	suggestion := ""
	if profile, err := h.sessions.Profile(r.Context(), username); err == nil {
		suggestion = services.Suggestion(profile.FitnessGoal, data.Calories)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"nutritionData": data,
		"suggestion":    suggestion,
	})
}

func (h *FoodWaterHandler) FoodLog(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	log, err := h.foodWater.FoodLog(r.Context(), username)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"log":           log,
		"totalCalories": services.TotalCalories(log),
	})
}

func (h *FoodWaterHandler) LogFood(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	var body struct {
		Food          string           `json:"food"`
		NutritionData models.Nutrition `json:"nutritionData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	total, err := h.foodWater.LogFood(r.Context(), username, body.Food, body.NutritionData)
	if err != nil {
		if errors.Is(err, services.ErrFoodRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not save", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"totalCalories": total})
}

func (h *FoodWaterHandler) WaterLog(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	log, err := h.foodWater.WaterLog(r.Context(), username)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	recommended := services.WaterIntakeDefault
	if profile, err := h.sessions.Profile(r.Context(), username); err == nil {
		recommended = services.RecommendedWater(profile.Gender)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"log":         log,
		"totalWater":  services.TotalWater(log),
		"recommended": recommended,
	})
}

func (h *FoodWaterHandler) LogWater(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	var body struct {
		Liters float64 `json:"liters"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	total, err := h.foodWater.LogWater(r.Context(), username, body.Liters)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not save", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"totalWater": total})
}
