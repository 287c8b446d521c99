package cli

import (
	"time"

	"github.com/BUB97/mdbook-translator/internal/cache"
	"github.com/BUB97/mdbook-translator/internal/chunk"
	"github.com/BUB97/mdbook-translator/internal/provider"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	Verbose   bool
	DryRun    bool
	OutputDir string

	// Translation flags
	Language      string
	Prompt        string
	KeepOnFailure bool
	MaxChunkSize  int

	// Provider flags
	Provider string
	Model    string
	BaseURL  string
	Proxy    string
	Timeout  time.Duration

	// Cache flags
	CacheFile    string
	CacheBackend string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:     "Chinese",
		Provider:     "deepseek",
		MaxChunkSize: chunk.DefaultMaxChars,
		Timeout:      provider.DefaultTimeout,
		CacheFile:    cache.DefaultFile,
		CacheBackend: cache.BackendJSON,
	}
}
