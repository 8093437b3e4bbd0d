package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"fittrack/internal/clients/exercisedb"
	"fittrack/internal/clients/latest"
	"fittrack/internal/middleware"
	"fittrack/internal/services"
)

type WorkoutHandler struct {
	workouts *services.WorkoutService
	catalog  *exercisedb.Client
	refresh  latest.Guard
}

func NewWorkoutHandler(workouts *services.WorkoutService, catalog *exercisedb.Client) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts, catalog: catalog}
}

// Catalog serves the cached exercise catalog, refreshing it from the
// exercise API when the cache is empty or ?refresh=1 is set. A refresh
// superseded by a newer one is discarded rather than applied.
func (h *WorkoutHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cached, err := h.workouts.Catalog(r.Context(), "", "")
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	if len(cached) == 0 || q.Get("refresh") == "1" {
		gen := h.refresh.Begin()
		fetched, err := h.catalog.Exercises(r.Context())
		if err != nil {
			if len(cached) == 0 {
				http.Error(w, "could not fetch workouts", http.StatusBadGateway)
				return
			}
			// Keep serving the stale catalog on fetch failure.
		} else if h.refresh.Accept(gen) {
			if err := h.workouts.SaveCatalog(r.Context(), fetched); err != nil {
				http.Error(w, "could not save", http.StatusInternalServerError)
				return
			}
		}
	}
	filtered, err := h.workouts.Catalog(r.Context(), q.Get("search"), q.Get("bodyPart"))
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	bodyParts, err := h.workouts.BodyParts(r.Context())
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"workouts":  filtered,
		"bodyParts": bodyParts,
	})
}

// History returns completed workouts, optionally limited to ?date=.
func (h *WorkoutHandler) History(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	data, err := h.workouts.History(r.Context(), username, r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *WorkoutHandler) Complete(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	var body struct {
		Name     string `json:"name"`
		Target   string `json:"target"`
		Duration int    `json:"duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	record, err := h.workouts.Complete(r.Context(), username, body.Name, body.Target, body.Duration)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWorkout) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not save", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}
