package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is the default name for the preference file.
const DefaultFileName = "prefs.json"

// File is a Store persisted as a single JSON object on disk. Every Set
// rewrites the file; the map is read once and cached.
type File struct {
	path   string
	values map[string]string
}

// NewFile opens a file-backed store at path. If path is empty, the default
// location (~/.config/cadence/prefs.json) is used. A missing or unreadable
// file yields an empty store; corruption is not fatal here because the
// preference layer substitutes defaults for anything it cannot parse.
func NewFile(path string) (*File, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		path = filepath.Join(configDir, "cadence", DefaultFileName)
	}

	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err == nil {
		// Best effort: a corrupt file leaves the store empty.
		_ = json.Unmarshal(data, &f.values)
	}

	return f, nil
}

// Get returns the stored value for key, or ErrNotFound.
func (f *File) Get(key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key and rewrites the file.
func (f *File) Set(key, value string) error {
	f.values[key] = value

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write preference file: %w", err)
	}

	return nil
}

// Path returns the path to the preference file.
func (f *File) Path() string {
	return f.path
}
