package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fittrack/internal/middleware"
	"fittrack/internal/services"
)

type MenstrualHandler struct {
	menstrual *services.MenstrualService
}

func NewMenstrualHandler(menstrual *services.MenstrualService) *MenstrualHandler {
	return &MenstrualHandler{menstrual: menstrual}
}

func (h *MenstrualHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	cycle, err := h.menstrual.Cycle(r.Context(), username)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	resp := map[string]any{"cycle": cycle}
	if next, ok := services.NextPeriod(cycle); ok {
		resp["nextPeriod"] = next.Format("2006-01-02")
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *MenstrualHandler) Save(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	var body struct {
		StartDate string `json:"startDate"`
		Duration  int    `json:"duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	cycle, err := h.menstrual.SaveCycle(r.Context(), username, body.StartDate, body.Duration)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStartDateRequired), errors.Is(err, services.ErrInvalidDuration):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "could not save", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cycle)
}

func (h *MenstrualHandler) AddSymptom(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	var body struct {
		Symptom string `json:"symptom"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	cycle, err := h.menstrual.AddSymptom(r.Context(), username, body.Symptom)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSymptomEmpty), errors.Is(err, services.ErrSymptomExists):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "could not save", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cycle)
}
