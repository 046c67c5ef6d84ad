// Package record is the persisted key-value store every portal component
// reads and writes through. Values are JSON documents under string keys.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// Backend stores raw bytes under string keys.
// Get returns domain.ErrNotFound for an absent key. Remove ignores absent keys.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, keys ...string) error
}

// AtomicBackend is implemented by backends that can group several writes
// into one transaction. Calls made with the ctx passed to fn join it.
type AtomicBackend interface {
	Backend
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the JSON facade over a Backend.
type Store struct {
	backend Backend
	log     *slog.Logger
}

// NewStore creates a Store over the given backend.
func NewStore(logger *slog.Logger, backend Backend) *Store {
	return &Store{
		backend: backend,
		log:     logger.With("component", "record"),
	}
}

// Get decodes the value stored at key into a T. Absent or undecodable data
// yields def; only backend failures are returned as errors.
func Get[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return def, nil
		}
		return def, fmt.Errorf("record.Get %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.WarnContext(ctx, "corrupt record, using default",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return def, nil
	}

	return v, nil
}

// GetString reads a scalar string key. Values written by this package are
// JSON strings; older stores hold the bare text, which is returned as is.
func GetString(ctx context.Context, s *Store, key, def string) (string, error) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return def, nil
		}
		return def, fmt.Errorf("record.GetString %s: %w", key, err)
	}

	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw), nil
	}
	return v, nil
}

// Set stores the JSON encoding of v at key.
func (s *Store) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("record.Set %s: encode: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("record.Set %s: %w", key, err)
	}
	return nil
}

// Remove deletes the given keys. Missing keys are not an error.
func (s *Store) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.backend.Remove(ctx, keys...); err != nil {
		return fmt.Errorf("record.Remove: %w", err)
	}
	return nil
}

// Atomic runs fn inside a backend transaction when the backend offers one,
// and directly otherwise.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	ab, ok := s.backend.(AtomicBackend)
	if !ok {
		return fn(ctx)
	}
	return ab.RunAtomic(ctx, fn)
}
