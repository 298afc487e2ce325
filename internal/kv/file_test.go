package kv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	store, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}

	if _, err := store.Get("volume"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	if err := store.Set("volume", "0.75"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Re-open and verify persistence.
	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() reopen error = %v", err)
	}
	got, err := reopened.Get("volume")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "0.75" {
		t.Errorf("Get() = %q, want %q", got, "0.75")
	}
}

func TestFileCreatesNestedDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")

	store, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() error = %v", err)
	}

	if err := store.Set("shuffle", "1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("file permissions = %o, want 0600", mode)
	}
}

func TestFileToleratesCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile() on corrupt file error = %v", err)
	}

	if _, err := store.Get("volume"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after corruption error = %v, want ErrNotFound", err)
	}

	// Writing should recover the file.
	if err := store.Set("volume", "0.5"); err != nil {
		t.Fatalf("Set() after corruption error = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	if _, err := store.Get("repeat"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}

	if err := store.Set("repeat", "2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := store.Get("repeat")
	if err != nil || got != "2" {
		t.Errorf("Get() = %q, %v, want %q, nil", got, err, "2")
	}
}
