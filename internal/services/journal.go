package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repo"
	"fittrack/internal/store"
)

var (
	ErrTitleContentRequired = errors.New("title and content required")
	ErrEntryNotFound        = errors.New("journal entry not found")
	ErrNoteRequired         = errors.New("note text required")
)

// JournalService owns per-user journal entries. Entries are keyed by
// their creation timestamp; notes are append-only within an entry.
type JournalService struct {
	kv store.KV
}

func NewJournalService(kv store.KV) *JournalService {
	return &JournalService{kv: kv}
}

func (s *JournalService) List(ctx context.Context, username string) ([]models.JournalEntry, error) {
	return repo.Load[models.JournalEntry](ctx, s.kv, username, store.FeatureJournalEntries)
}

func (s *JournalService) Get(ctx context.Context, username string, id int64) (models.JournalEntry, error) {
	entries, err := repo.Load[models.JournalEntry](ctx, s.kv, username, store.FeatureJournalEntries)
	if err != nil {
		return models.JournalEntry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.JournalEntry{}, ErrEntryNotFound
}

// Add prepends a new entry so the most recent one lists first.
func (s *JournalService) Add(ctx context.Context, username, title, content string) (models.JournalEntry, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return models.JournalEntry{}, ErrTitleContentRequired
	}
	entries, err := repo.Load[models.JournalEntry](ctx, s.kv, username, store.FeatureJournalEntries)
	if err != nil {
		return models.JournalEntry{}, err
	}
	id := time.Now().UnixMilli()
	for _, e := range entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	entry := models.JournalEntry{
		ID:      id,
		Title:   title,
		Content: content,
		Date:    time.Now().Format("1/2/2006, 3:04:05 PM"),
		Notes:   []models.Note{},
	}
	entries = append([]models.JournalEntry{entry}, entries...)
	if err := repo.Save(ctx, s.kv, username, store.FeatureJournalEntries, entries); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (s *JournalService) Delete(ctx context.Context, username string, id int64) error {
	entries, err := repo.Load[models.JournalEntry](ctx, s.kv, username, store.FeatureJournalEntries)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return ErrEntryNotFound
	}
	return repo.Save(ctx, s.kv, username, store.FeatureJournalEntries, kept)
}

// AddNote appends a note to an existing entry.
func (s *JournalService) AddNote(ctx context.Context, username string, id int64, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrNoteRequired
	}
	entries, err := repo.Load[models.JournalEntry](ctx, s.kv, username, store.FeatureJournalEntries)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Notes = append(entries[i].Notes, models.Note{Text: text, Updated: true})
			return repo.Save(ctx, s.kv, username, store.FeatureJournalEntries, entries)
		}
	}
	return ErrEntryNotFound
}
