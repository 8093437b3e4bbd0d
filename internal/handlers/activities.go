package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fittrack/internal/middleware"
	"fittrack/internal/services"
)

type ActivityHandler struct {
	activities *services.ActivityService
}

func NewActivityHandler(activities *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// List supports ?filter=completed|incomplete; anything else returns all.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	out, err := h.activities.List(r.Context(), username, r.URL.Query().Get("filter"))
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *ActivityHandler) Add(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	var body struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	entry, err := h.activities.Add(r.Context(), username, body.Description)
	if err != nil {
		if errors.Is(err, services.ErrDescriptionRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not save", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry)
}

func (h *ActivityHandler) Edit(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	id, err := activityID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var body struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.activities.Edit(r.Context(), username, id, body.Description); err != nil {
		writeActivityError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ActivityHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	id, err := activityID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.activities.ToggleCompleted(r.Context(), username, id); err != nil {
		writeActivityError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	id, err := activityID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.activities.Delete(r.Context(), username, id); err != nil {
		writeActivityError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func activityID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func writeActivityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrActivityNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, services.ErrDescriptionRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "could not save", http.StatusInternalServerError)
	}
}
