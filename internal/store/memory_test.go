package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()
	kv := NewMemory()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Set(ctx, "alice-activities", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := kv.Get(ctx, "alice-activities")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":1}]` {
		t.Fatalf("unexpected value %s", got)
	}

	// Full overwrite, not a merge.
	if err := kv.Set(ctx, "alice-activities", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = kv.Get(ctx, "alice-activities")
	if string(got) != `[]` {
		t.Fatalf("expected overwrite, got %s", got)
	}

	if err := kv.Delete(ctx, "alice-activities"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Get(ctx, "alice-activities"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUserKey(t *testing.T) {
	t.Parallel()
	if got := UserKey("alice", FeatureFoodWater); got != "alice-food-water" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := UserKey("bob", FeatureWorkoutData); got != "bob-workoutData" {
		t.Fatalf("unexpected key %q", got)
	}
}
