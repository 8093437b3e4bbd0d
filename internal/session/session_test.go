package session_test

import (
	"context"
	"errors"
	"testing"

	"fittrack/internal/models"
	"fittrack/internal/session"
	"fittrack/internal/store"
)

func testProfile() models.UserProfile {
	return models.UserProfile{
		Username:      "alice",
		Password:      "s3cret",
		Age:           30,
		Height:        170,
		Weight:        70,
		Gender:        "female",
		FitnessGoal:   "maintain",
		ActivityLevel: "active",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	m := session.NewManager(kv)
	ctx := context.Background()

	if err := m.Register(ctx, testProfile()); err != nil {
		t.Fatalf("register: %v", err)
	}
	profile, err := m.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if profile.Username != "alice" || profile.Height != 170 {
		t.Fatalf("unexpected profile %+v", profile)
	}
	current := m.Current()
	if current == nil || current.Username != "alice" {
		t.Fatalf("expected session for alice, got %+v", current)
	}
}

func TestLoginWrongPasswordLeavesSessionUnset(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	m := session.NewManager(kv)
	ctx := context.Background()

	if err := m.Register(ctx, testProfile()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := m.Login(ctx, "alice", "S3CRET"); !errors.Is(err, session.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if m.Current() != nil {
		t.Fatal("session should be unset after failed login")
	}
	if _, err := kv.Get(ctx, store.CurrentUserKey); !errors.Is(err, store.ErrNotFound) {
		t.Fatal("currentUser key should not be persisted after failed login")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	t.Parallel()
	m := session.NewManager(store.NewMemory())
	if _, err := m.Login(context.Background(), "nobody", "pw"); !errors.Is(err, session.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	m := session.NewManager(store.NewMemory())
	err := m.Register(context.Background(), models.UserProfile{Username: "  ", Password: ""})
	if !errors.Is(err, session.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestDuplicateRegistrationOverwrites(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	m := session.NewManager(kv)
	ctx := context.Background()

	if err := m.Register(ctx, testProfile()); err != nil {
		t.Fatalf("register: %v", err)
	}
	second := testProfile()
	second.Password = "other"
	if err := m.Register(ctx, second); err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if _, err := m.Login(ctx, "alice", "s3cret"); !errors.Is(err, session.ErrInvalidCredentials) {
		t.Fatal("old password should no longer work after overwrite")
	}
	if _, err := m.Login(ctx, "alice", "other"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestSessionRestoredAcrossRestart(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	ctx := context.Background()

	first := session.NewManager(kv)
	if err := first.Register(ctx, testProfile()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := first.Login(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	second := session.NewManager(kv)
	if err := second.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	current := second.Current()
	if current == nil || current.Username != "alice" {
		t.Fatalf("expected restored session, got %+v", current)
	}
}

func TestLogoutThenRestartYieldsNoSession(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	ctx := context.Background()

	first := session.NewManager(kv)
	if err := first.Register(ctx, testProfile()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := first.Login(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := first.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	// Logging out twice is fine.
	if err := first.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}

	second := session.NewManager(kv)
	if err := second.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if second.Current() != nil {
		t.Fatal("no session should survive a logout")
	}
}

func TestUpdateProfileRefreshesSessionMirror(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()
	m := session.NewManager(kv)
	ctx := context.Background()

	if err := m.Register(ctx, testProfile()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := m.Login(ctx, "alice", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	updated := testProfile()
	updated.WorkoutsCompleted = 3
	if err := m.UpdateProfile(ctx, updated); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if got := m.Current(); got.WorkoutsCompleted != 3 {
		t.Fatalf("in-memory session not refreshed: %+v", got)
	}

	restarted := session.NewManager(kv)
	if err := restarted.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := restarted.Current(); got == nil || got.WorkoutsCompleted != 3 {
		t.Fatalf("persisted session mirror not refreshed: %+v", got)
	}
}
