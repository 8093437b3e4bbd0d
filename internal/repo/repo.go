// Package repo provides the generic per-user keyed collection store that
// every feature shares: load the whole slice, transform it in memory,
// write the whole slice back. A missing or unparseable value reads as
// the zero value so a stale write never takes a feature down.
package repo

import (
	"context"
	"encoding/json"
	"errors"

	"fittrack/internal/store"
)

// Load returns the stored sequence for one user's feature slice, or an
// empty sequence when the key is absent or does not parse.
func Load[T any](ctx context.Context, kv store.KV, username, feature string) ([]T, error) {
	raw, err := kv.Get(ctx, store.UserKey(username, feature))
	if errors.Is(err, store.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, nil
	}
	return items, nil
}

// Save serializes and fully overwrites the stored sequence.
func Save[T any](ctx context.Context, kv store.KV, username, feature string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return kv.Set(ctx, store.UserKey(username, feature), raw)
}

// LoadValue reads a single JSON document stored under key. Absent or
// unparseable values read as the zero value of T.
func LoadValue[T any](ctx context.Context, kv store.KV, key string) (T, error) {
	var value T
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return value, nil
	}
	if err != nil {
		return value, err
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		var zero T
		return zero, nil
	}
	return value, nil
}

// SaveValue serializes and fully overwrites a single JSON document.
func SaveValue[T any](ctx context.Context, kv store.KV, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, raw)
}
