// Package memory implements the record backend as an in-process map.
// It backs tests and the "memory" store driver.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// Backend is a map-backed record backend. Values are copied on the way in
// and out so callers never share a buffer with the store.
type Backend struct {
	mu   sync.Mutex
	data map[string][]byte
}

// New creates an empty backend.
func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored at key.
func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.data[key]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", key, domain.ErrNotFound)
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value at key.
func (b *Backend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = append([]byte(nil), value...)
	return nil
}

// Remove deletes keys; absent keys are ignored.
func (b *Backend) Remove(_ context.Context, keys ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, k := range keys {
		delete(b.data, k)
	}
	return nil
}

// Keys returns the number of stored keys.
func (b *Backend) Keys() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}
