package preprocess

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestTranslatorConfig_FromContext(t *testing.T) {
	ctx := &Context{
		Config: json.RawMessage(`{
			"book": {"language": "en"},
			"preprocessor": {
				"translator": {
					"language": "French",
					"prompt": "Be terse.",
					"proxy": "http://127.0.0.1:8099",
					"provider": "gemini",
					"model": "gemini-2.0-flash",
					"cache-file": "cache/translations.json",
					"cache-backend": "json",
					"max-chunk-size": 2000,
					"keep-on-failure": true
				},
				"links": {}
			}
		}`),
	}

	cfg, err := ctx.TranslatorConfig()
	if err != nil {
		t.Fatalf("TranslatorConfig failed: %v", err)
	}

	if cfg.Language != "French" {
		t.Errorf("Expected language 'French', got '%s'", cfg.Language)
	}
	if cfg.Prompt != "Be terse." {
		t.Errorf("Expected prompt 'Be terse.', got '%s'", cfg.Prompt)
	}
	if cfg.Proxy != "http://127.0.0.1:8099" {
		t.Errorf("Unexpected proxy: '%s'", cfg.Proxy)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Expected provider 'gemini', got '%s'", cfg.Provider)
	}
	if cfg.MaxChunkSize != 2000 {
		t.Errorf("Expected max chunk size 2000, got %d", cfg.MaxChunkSize)
	}
	if !cfg.KeepOnFailure {
		t.Error("Expected keep-on-failure true")
	}
}

func TestTranslatorConfig_MissingTable(t *testing.T) {
	ctx := &Context{Config: json.RawMessage(`{"book": {"language": "en"}}`)}

	cfg, err := ctx.TranslatorConfig()
	if err != nil {
		t.Fatalf("TranslatorConfig failed: %v", err)
	}
	if cfg.Language != "" {
		t.Errorf("Expected empty config, got %+v", cfg)
	}
}

func TestTranslatorConfig_EmptyConfig(t *testing.T) {
	ctx := &Context{}

	cfg, err := ctx.TranslatorConfig()
	if err != nil {
		t.Fatalf("TranslatorConfig failed: %v", err)
	}
	if *cfg != (TranslatorConfig{}) {
		t.Errorf("Expected zero config, got %+v", cfg)
	}
}

func TestLoadBookTOML(t *testing.T) {
	dir := t.TempDir()
	bookToml := `[book]
title = "Example Book"
language = "en"

[preprocessor.translator]
language = "Chinese"
prompt = "Follow Rust community terminology."
max-chunk-size = 3000

[output.html]
`
	if err := os.WriteFile(filepath.Join(dir, "book.toml"), []byte(bookToml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBookTOML(dir)
	if err != nil {
		t.Fatalf("LoadBookTOML failed: %v", err)
	}

	if cfg.Language != "Chinese" {
		t.Errorf("Expected language 'Chinese', got '%s'", cfg.Language)
	}
	if cfg.Prompt != "Follow Rust community terminology." {
		t.Errorf("Unexpected prompt: '%s'", cfg.Prompt)
	}
	if cfg.MaxChunkSize != 3000 {
		t.Errorf("Expected max chunk size 3000, got %d", cfg.MaxChunkSize)
	}
}

func TestLoadBookTOML_MissingFile(t *testing.T) {
	cfg, err := LoadBookTOML(t.TempDir())
	if err != nil {
		t.Fatalf("LoadBookTOML failed for missing file: %v", err)
	}
	if *cfg != (TranslatorConfig{}) {
		t.Errorf("Expected zero config for missing book.toml, got %+v", cfg)
	}
}

func TestLoadBookTOML_Invalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "book.toml"), []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadBookTOML(dir); err == nil {
		t.Error("Expected error for invalid book.toml")
	}
}
