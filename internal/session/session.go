// Package session owns identity records and the single active session.
// Profiles live under the bare username key; the active session is
// mirrored to a fixed key so a restart restores it.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"fittrack/internal/models"
	"fittrack/internal/repo"
	"fittrack/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("username and password required")
	ErrUnknownUser        = errors.New("unknown user")
)

// Manager is the explicit session holder handed to every feature. One
// session is active per process at a time.
type Manager struct {
	kv store.KV

	mu      sync.RWMutex
	current *models.UserProfile
}

func NewManager(kv store.KV) *Manager {
	return &Manager{kv: kv}
}

// Restore loads a previously persisted session, if any. Called once at
// startup; a missing key is not an error.
func (m *Manager) Restore(ctx context.Context) error {
	profile, err := repo.LoadValue[models.UserProfile](ctx, m.kv, store.CurrentUserKey)
	if err != nil {
		return err
	}
	if profile.Username == "" {
		return nil
	}
	m.mu.Lock()
	m.current = &profile
	m.mu.Unlock()
	return nil
}

// Register stores a new profile keyed by username, overwriting any
// existing profile with the same username.
func (m *Manager) Register(ctx context.Context, profile models.UserProfile) error {
	profile.Username = strings.TrimSpace(profile.Username)
	if profile.Username == "" || profile.Password == "" {
		return ErrMissingFields
	}
	return repo.SaveValue(ctx, m.kv, profile.Username, profile)
}

// Login looks up the stored profile and compares passwords
// case-sensitively. On success the session is set and persisted; on
// failure it is left unchanged.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.UserProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	profile, err := repo.LoadValue[models.UserProfile](ctx, m.kv, username)
	if err != nil {
		return nil, err
	}
	if profile.Username == "" || profile.Password != password {
		return nil, ErrInvalidCredentials
	}
	if err := repo.SaveValue(ctx, m.kv, store.CurrentUserKey, profile); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.current = &profile
	m.mu.Unlock()
	return &profile, nil
}

// Logout clears the session and removes the persisted key. Safe to call
// with no session active.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return m.kv.Delete(ctx, store.CurrentUserKey)
}

// Current returns the active profile, or nil when nobody is logged in.
func (m *Manager) Current() *models.UserProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	copied := *m.current
	return &copied
}

// Profile loads a stored profile by username.
func (m *Manager) Profile(ctx context.Context, username string) (models.UserProfile, error) {
	profile, err := repo.LoadValue[models.UserProfile](ctx, m.kv, username)
	if err != nil {
		return models.UserProfile{}, err
	}
	if profile.Username == "" {
		return models.UserProfile{}, ErrUnknownUser
	}
	return profile, nil
}

// UpdateProfile overwrites the stored profile and refreshes the
// persisted session mirror when the update targets the active user.
func (m *Manager) UpdateProfile(ctx context.Context, profile models.UserProfile) error {
	if err := repo.SaveValue(ctx, m.kv, profile.Username, profile); err != nil {
		return err
	}
	m.mu.Lock()
	active := m.current != nil && m.current.Username == profile.Username
	if active {
		m.current = &profile
	}
	m.mu.Unlock()
	if active {
		return repo.SaveValue(ctx, m.kv, store.CurrentUserKey, profile)
	}
	return nil
}
