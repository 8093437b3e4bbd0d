package services_test

import (
	"context"
	"errors"
	"testing"

	"fittrack/internal/services"
	"fittrack/internal/store"
)

func TestActivityAddListRoundTrip(t *testing.T) {
	t.Parallel()
	svc := services.NewActivityService(store.NewMemory())
	ctx := context.Background()

	first, err := svc.Add(ctx, "alice", "morning run")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == 0 || first.Completed {
		t.Fatalf("unexpected entry %+v", first)
	}
	if _, err := svc.Add(ctx, "alice", "stretching"); err != nil {
		t.Fatalf("add second: %v", err)
	}

	all, err := svc.List(ctx, "alice", "all")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(all))
	}

	// Another user's slice is untouched.
	other, err := svc.List(ctx, "bob", "all")
	if err != nil {
		t.Fatalf("list other user: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no activities for bob, got %d", len(other))
	}
}

func TestActivityAddRequiresDescription(t *testing.T) {
	t.Parallel()
	svc := services.NewActivityService(store.NewMemory())
	if _, err := svc.Add(context.Background(), "alice", "   "); !errors.Is(err, services.ErrDescriptionRequired) {
		t.Fatalf("expected ErrDescriptionRequired, got %v", err)
	}
}

func TestActivityEditToggleDeleteByID(t *testing.T) {
	t.Parallel()
	svc := services.NewActivityService(store.NewMemory())
	ctx := context.Background()

	a, _ := svc.Add(ctx, "alice", "run")
	b, _ := svc.Add(ctx, "alice", "swim")

	if err := svc.Edit(ctx, "alice", a.ID, "long run"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if err := svc.ToggleCompleted(ctx, "alice", b.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	completed, err := svc.List(ctx, "alice", "completed")
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != b.ID {
		t.Fatalf("expected only swim completed, got %+v", completed)
	}
	incomplete, _ := svc.List(ctx, "alice", "incomplete")
	if len(incomplete) != 1 || incomplete[0].Description != "long run" {
		t.Fatalf("expected edited run incomplete, got %+v", incomplete)
	}

	if err := svc.Delete(ctx, "alice", a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all, _ := svc.List(ctx, "alice", "all")
	if len(all) != 1 || all[0].ID != b.ID {
		t.Fatalf("expected only swim left, got %+v", all)
	}

	if err := svc.Delete(ctx, "alice", a.ID); !errors.Is(err, services.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
	if err := svc.Edit(ctx, "alice", 99999, "x"); !errors.Is(err, services.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}
