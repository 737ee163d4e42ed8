// Package store persists the single current trip plan.
//
// A PlanStore sits on top of a Backend, a minimal key-value interface with
// three implementations: MemoryBackend for tests and throwaway sessions,
// FileBackend for the default on-disk store, and RedisBackend for sessions
// shared across machines or expired by TTL.
package store

import (
	"context"
	"slices"
	"sync"

	"github.com/Iron-Ham/tripbook/internal/errors"
)

// ErrNotFound is returned by a Backend when the key holds no value.
var ErrNotFound = errors.New("key not found")

// Backend is a byte-oriented key-value store.
type Backend interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key returns ErrNotFound.
	Delete(ctx context.Context, key string) error
}

// MemoryBackend keeps values in process memory.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Get implements Backend.
func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

// Set implements Backend.
func (m *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = slices.Clone(value)
	return nil
}

// Delete implements Backend.
func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}
