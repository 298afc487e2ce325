// Package kv provides the generic string key-value persistence facility the
// preference store writes through. Implementations: in-memory, JSON file,
// and Redis.
package kv

import "errors"

// ErrNotFound is returned by Get when the key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a synchronous string key-value facility.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Memory is a map-backed Store for tests and ephemeral sessions.
type Memory struct {
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the stored value for key, or ErrNotFound.
func (m *Memory) Get(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}
