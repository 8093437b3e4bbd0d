package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("store: key not found")

// KV is a key to JSON-document store. Writes replace the whole value and
// are atomic at the key level; there are no partial updates and the last
// writer wins.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Fixed keys shared by all users.
const (
	CurrentUserKey = "currentUser"
	CatalogKey     = "workouts"
)

// Feature suffixes for per-user keys.
const (
	FeatureActivities     = "activities"
	FeatureJournalEntries = "journalEntries"
	FeatureFoodLog        = "foodLog"
	FeatureWaterLog       = "waterLog"
	FeatureWorkoutData    = "workoutData"
	FeatureMenstrualData  = "menstrualData"
	FeatureCalories       = "calories"
	FeatureWater          = "water"
	FeatureFoodWater      = "food-water"
)

// UserKey builds the namespaced key for one user's slice of a feature.
func UserKey(username, feature string) string {
	return username + "-" + feature
}
