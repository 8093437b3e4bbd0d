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
	ErrDescriptionRequired = errors.New("description required")
	ErrActivityNotFound    = errors.New("activity not found")
)

// ActivityService owns the per-user activity plan. Entries are
// addressed by ID, never by position.
type ActivityService struct {
	kv store.KV
}

func NewActivityService(kv store.KV) *ActivityService {
	return &ActivityService{kv: kv}
}

// List returns activities, optionally filtered: "completed",
// "incomplete", or anything else for all.
func (s *ActivityService) List(ctx context.Context, username, filter string) ([]models.ActivityEntry, error) {
	activities, err := repo.Load[models.ActivityEntry](ctx, s.kv, username, store.FeatureActivities)
	if err != nil {
		return nil, err
	}
	switch filter {
	case "completed", "incomplete":
		filtered := make([]models.ActivityEntry, 0, len(activities))
		for _, a := range activities {
			if a.Completed == (filter == "completed") {
				filtered = append(filtered, a)
			}
		}
		return filtered, nil
	}
	return activities, nil
}

// Add appends a new activity stamped with the current local time.
func (s *ActivityService) Add(ctx context.Context, username, description string) (models.ActivityEntry, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.ActivityEntry{}, ErrDescriptionRequired
	}
	activities, err := repo.Load[models.ActivityEntry](ctx, s.kv, username, store.FeatureActivities)
	if err != nil {
		return models.ActivityEntry{}, err
	}
	id := time.Now().UnixMilli()
	for _, a := range activities {
		if a.ID >= id {
			id = a.ID + 1
		}
	}
	entry := models.ActivityEntry{
		ID:          id,
		Description: description,
		Date:        time.Now().Format("1/2/2006, 3:04:05 PM"),
	}
	activities = append(activities, entry)
	if err := repo.Save(ctx, s.kv, username, store.FeatureActivities, activities); err != nil {
		return models.ActivityEntry{}, err
	}
	return entry, nil
}

// Edit replaces the description of the activity with the given ID.
func (s *ActivityService) Edit(ctx context.Context, username string, id int64, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrDescriptionRequired
	}
	return s.update(ctx, username, id, func(a *models.ActivityEntry) {
		a.Description = description
	})
}

// ToggleCompleted flips the completion flag.
func (s *ActivityService) ToggleCompleted(ctx context.Context, username string, id int64) error {
	return s.update(ctx, username, id, func(a *models.ActivityEntry) {
		a.Completed = !a.Completed
	})
}

// Delete removes the activity with the given ID.
func (s *ActivityService) Delete(ctx context.Context, username string, id int64) error {
	activities, err := repo.Load[models.ActivityEntry](ctx, s.kv, username, store.FeatureActivities)
	if err != nil {
		return err
	}
	kept := activities[:0]
	for _, a := range activities {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(activities) {
		return ErrActivityNotFound
	}
	return repo.Save(ctx, s.kv, username, store.FeatureActivities, kept)
}

func (s *ActivityService) update(ctx context.Context, username string, id int64, apply func(*models.ActivityEntry)) error {
	activities, err := repo.Load[models.ActivityEntry](ctx, s.kv, username, store.FeatureActivities)
	if err != nil {
		return err
	}
	for i := range activities {
		if activities[i].ID == id {
			apply(&activities[i])
			return repo.Save(ctx, s.kv, username, store.FeatureActivities, activities)
		}
	}
	return ErrActivityNotFound
}
