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

type JournalHandler struct {
	journal *services.JournalService
}

func NewJournalHandler(journal *services.JournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	entries, err := h.journal.List(r.Context(), username)
	if err != nil {
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	entry, err := h.journal.Get(r.Context(), username, id)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}

func (h *JournalHandler) Add(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	var body struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	entry, err := h.journal.Add(r.Context(), username, body.Title, body.Content)
	if err != nil {
		if errors.Is(err, services.ErrTitleContentRequired) {
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

func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.journal.Delete(r.Context(), username, id); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *JournalHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	username := middleware.Username(r.Context())
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.journal.AddNote(r.Context(), username, id, body.Text); err != nil {
		switch {
		case errors.Is(err, services.ErrEntryNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, services.ErrNoteRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "could not save", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
