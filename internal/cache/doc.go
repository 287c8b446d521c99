// Package cache persists translations keyed by a content hash of the
// source text and target language, so that rebuilding a book only pays
// API calls for chapters that actually changed. Two backends exist: a
// flat JSON file matching the original cache format, and a SQLite
// database for books large enough that rewriting one file per run
// becomes wasteful.
package cache
