package cli

import (
	"testing"
	"time"
)

func TestNewFlags_Defaults(t *testing.T) {
	flags := NewFlags()

	if flags.Language != "Chinese" {
		t.Errorf("Expected default language 'Chinese', got '%s'", flags.Language)
	}
	if flags.Provider != "deepseek" {
		t.Errorf("Expected default provider 'deepseek', got '%s'", flags.Provider)
	}
	if flags.MaxChunkSize != 4000 {
		t.Errorf("Expected default chunk size 4000, got %d", flags.MaxChunkSize)
	}
	if flags.Timeout != 600*time.Second {
		t.Errorf("Expected default timeout 600s, got %v", flags.Timeout)
	}
	if flags.CacheFile != "deepseek_cache.json" {
		t.Errorf("Expected default cache file 'deepseek_cache.json', got '%s'", flags.CacheFile)
	}
	if flags.CacheBackend != "json" {
		t.Errorf("Expected default cache backend 'json', got '%s'", flags.CacheBackend)
	}
	if flags.DryRun || flags.Verbose || flags.KeepOnFailure {
		t.Error("Boolean flags should default to false")
	}
}
