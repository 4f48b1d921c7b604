// Package store is the durable key/value mirror of the session.
//
// Values are raw strings; callers serialize. Four keys are in use, one per
// independently persisted piece of session state.
package store

import (
	"sort"
	"sync"
)

// Keys persisted by the session.
const (
	KeyCredential     = "credential"
	KeyBookmarks      = "bookmarks"
	KeyHistory        = "history"
	KeySummaryHistory = "summary-history"
)

// AllKeys lists every key the session writes.
var AllKeys = []string{KeyCredential, KeyBookmarks, KeyHistory, KeySummaryHistory}

// Store is a raw string key/value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

// Memory is an in-process Store. It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements Store.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Remove implements Store.
func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear removes every key the session writes.
func Clear(s Store) error {
	for _, k := range AllKeys {
		if err := s.Remove(k); err != nil {
			return err
		}
	}
	return nil
}
