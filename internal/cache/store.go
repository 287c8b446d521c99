package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Backend names accepted in configuration.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DefaultFile is the default cache file name, kept compatible with the
// original cache so existing books reuse their translations.
const DefaultFile = "deepseek_cache.json"

// Store is a content-addressed translation cache.
type Store interface {
	// Get returns the cached translation for a key, if present.
	Get(key string) (string, bool)

	// Put stores a translation. Empty translations must not be stored.
	Put(key, translation string)

	// Len returns the number of cached translations.
	Len() int

	// Flush persists any in-memory state.
	Flush() error

	// Close releases backend resources. Close does not flush.
	Close() error
}

// Key derives the cache key for a piece of source text and a target
// language: the hex SHA-256 of the text bytes followed by the language
// bytes. The language is part of the key so one cache serves multiple
// target languages.
func Key(text, targetLang string) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte(targetLang))
	return hex.EncodeToString(h.Sum(nil))
}

// Open creates the store for the configured backend.
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", BackendJSON:
		return OpenJSON(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", backend)
	}
}
