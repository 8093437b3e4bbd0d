package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repo"
	"fittrack/internal/session"
	"fittrack/internal/store"
)

// CaloriesPerMinute is the flat burn rate applied to completed workouts.
const CaloriesPerMinute = 10

var ErrInvalidWorkout = errors.New("workout name and positive duration required")

// WorkoutService owns the shared exercise catalog cache, the per-user
// completed-workout history, and the profile counters a completion
// increments.
type WorkoutService struct {
	kv       store.KV
	sessions *session.Manager
}

func NewWorkoutService(kv store.KV, sessions *session.Manager) *WorkoutService {
	return &WorkoutService{kv: kv, sessions: sessions}
}

// Catalog returns the last-fetched exercise catalog, filtered by a name
// substring and an exact body part when given.
func (s *WorkoutService) Catalog(ctx context.Context, search, bodyPart string) ([]models.Workout, error) {
	catalog, err := repo.LoadValue[[]models.Workout](ctx, s.kv, store.CatalogKey)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(search)
	filtered := make([]models.Workout, 0, len(catalog))
	for _, w := range catalog {
		if search != "" && !strings.Contains(strings.ToLower(w.Name), search) {
			continue
		}
		if bodyPart != "" && w.BodyPart != bodyPart {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered, nil
}

// SaveCatalog overwrites the shared catalog cache.
func (s *WorkoutService) SaveCatalog(ctx context.Context, catalog []models.Workout) error {
	return repo.SaveValue(ctx, s.kv, store.CatalogKey, catalog)
}

// BodyParts returns the distinct body parts present in the catalog.
func (s *WorkoutService) BodyParts(ctx context.Context) ([]string, error) {
	catalog, err := repo.LoadValue[[]models.Workout](ctx, s.kv, store.CatalogKey)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var parts []string
	for _, w := range catalog {
		if w.BodyPart != "" && !seen[w.BodyPart] {
			seen[w.BodyPart] = true
			parts = append(parts, w.BodyPart)
		}
	}
	sort.Strings(parts)
	return parts, nil
}

// History returns completed workouts grouped by date. An empty date
// returns the whole mapping, otherwise only that date's records.
func (s *WorkoutService) History(ctx context.Context, username, date string) (models.WorkoutData, error) {
	data, err := repo.LoadValue[models.WorkoutData](ctx, s.kv, store.UserKey(username, store.FeatureWorkoutData))
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = models.WorkoutData{}
	}
	if date == "" {
		return data, nil
	}
	return models.WorkoutData{date: data[date]}, nil
}

// Complete records a finished workout under today's date, computes the
// calorie burn, and increments the profile counters. The persisted
// session mirror follows when the user is the active one.
func (s *WorkoutService) Complete(ctx context.Context, username, name, target string, duration int) (models.WorkoutRecord, error) {
	if strings.TrimSpace(name) == "" || duration <= 0 {
		return models.WorkoutRecord{}, ErrInvalidWorkout
	}
	date := time.Now().Format("1/2/2006")
	key := store.UserKey(username, store.FeatureWorkoutData)
	data, err := repo.LoadValue[models.WorkoutData](ctx, s.kv, key)
	if err != nil {
		return models.WorkoutRecord{}, err
	}
	if data == nil {
		data = models.WorkoutData{}
	}
	record := models.WorkoutRecord{
		Name:           name,
		Target:         target,
		Duration:       duration,
		CaloriesBurned: duration * CaloriesPerMinute,
		Date:           date,
	}
	data[date] = append(data[date], record)
	if err := repo.SaveValue(ctx, s.kv, key, data); err != nil {
		return models.WorkoutRecord{}, err
	}

	profile, err := s.sessions.Profile(ctx, username)
	if err != nil {
		return models.WorkoutRecord{}, err
	}
	profile.WorkoutsCompleted++
	profile.TotalWorkoutTime += duration
	profile.CaloriesBurned += record.CaloriesBurned
	profile.ActiveMinutes += duration
	if err := s.sessions.UpdateProfile(ctx, profile); err != nil {
		return models.WorkoutRecord{}, err
	}
	return record, nil
}

// TotalCaloriesBurned sums the calorie burn across the whole history.
func TotalCaloriesBurned(data models.WorkoutData) int {
	var total int
	for _, records := range data {
		for _, r := range records {
			total += r.CaloriesBurned
		}
	}
	return total
}
