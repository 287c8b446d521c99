package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// SQLiteStore is a write-through cache backed by a SQLite database.
// Every Put hits the database immediately, so an interrupted run keeps
// all translations it already paid for.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a SQLite cache database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "translations.db"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS translations (
		key TEXT PRIMARY KEY,
		translation TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create translations table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the cached translation for a key.
func (s *SQLiteStore) Get(key string) (string, bool) {
	var translation string
	err := s.db.QueryRow(`SELECT translation FROM translations WHERE key = ?`, key).Scan(&translation)
	if err != nil {
		return "", false
	}
	return translation, true
}

// Put stores a translation immediately. Empty translations are dropped.
func (s *SQLiteStore) Put(key, translation string) {
	if translation == "" {
		return
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO translations VALUES (?, ?, ?)`, key, translation, time.Now().UTC())
	if err != nil {
		// A lost write means paying for this translation again next run
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

// Len returns the number of cached translations.
func (s *SQLiteStore) Len() int {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&count); err != nil {
		return 0
	}
	return count
}

// Flush is a no-op: the SQLite backend is write-through.
func (s *SQLiteStore) Flush() error {
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
