package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore keeps the whole cache in memory and writes it back as one
// pretty-printed JSON object, the same format the original cache file
// used. Mutations are only persisted by Flush.
type JSONStore struct {
	path         string
	translations map[string]string
	dirty        bool
}

// OpenJSON loads a JSON cache file. A missing or unreadable file yields
// an empty cache rather than an error: the cache is an optimization,
// never a requirement.
func OpenJSON(path string) (*JSONStore, error) {
	if path == "" {
		path = DefaultFile
	}

	store := &JSONStore{
		path:         path,
		translations: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return store, nil
	}
	if err := json.Unmarshal(data, &store.translations); err != nil {
		// Corrupt cache: start over instead of failing the build
		store.translations = make(map[string]string)
	}
	return store, nil
}

// Get returns the cached translation for a key.
func (s *JSONStore) Get(key string) (string, bool) {
	translation, ok := s.translations[key]
	return translation, ok
}

// Put stores a translation in memory. Empty translations are dropped.
func (s *JSONStore) Put(key, translation string) {
	if translation == "" {
		return
	}
	s.translations[key] = translation
	s.dirty = true
}

// Len returns the number of cached translations.
func (s *JSONStore) Len() int {
	return len(s.translations)
}

// Flush writes the cache file atomically. A clean cache is not
// rewritten.
func (s *JSONStore) Flush() error {
	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s.translations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace cache file: %w", err)
	}

	s.dirty = false
	return nil
}

// Close is a no-op for the JSON backend.
func (s *JSONStore) Close() error {
	return nil
}
