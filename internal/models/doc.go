// Package models lists the chat models available behind the configured
// OpenAI-compatible endpoint, so users can pick a model for book.toml
// without leaving the terminal.
package models
