// Package storage provides the local key-value stores the client core persists into:
// Durable survives process restart, Memory lives as long as the session.
package storage

import (
	"context"
	"sort"
	"sync"
)

// Store is a string key-value store. Get reports false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

// Memory is a session-scoped store, nothing is kept after the process exits
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemory makes an empty session store
func NewMemory() *Memory {
	return &Memory{items: map[string]string{}}
}

// Get returns the value of the key
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

// Set stores the value under the key
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// Remove deletes the key, missing key is fine
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Keys returns all stored keys sorted
func (m *Memory) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]string, 0, len(m.items))
	for k := range m.items {
		res = append(res, k)
	}
	sort.Strings(res)
	return res, nil
}
