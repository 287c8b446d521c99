package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Provider defines the interface for translation backends
type Provider interface {
	// Translate translates one chunk of Markdown into the target language
	Translate(ctx context.Context, req Request) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// Request contains the parameters for a single translation call
type Request struct {
	Text        string // Markdown chunk to translate
	TargetLang  string // Target language, e.g. "Chinese"
	ExtraPrompt string // Optional extra instruction from book.toml
}

// Config holds common configuration for translation providers
type Config struct {
	Provider string // Provider name: "deepseek", "openai" or "gemini"
	APIKey   string
	Model    string        // Chat model, provider specific default when empty
	BaseURL  string        // API endpoint, deepseek/openai only
	Proxy    string        // Optional HTTP(S) proxy URL
	Timeout  time.Duration // HTTP timeout for one translation call
}

// SystemPrompt is the instruction given to every chat model: translate
// technical documentation, keep code and commands untouched, follow the
// community's usual terminology and leave unknown terms in the source
// language.
const SystemPrompt = "You are a professional technical documentation translation assistant. " +
	"Preserve code blocks and commands exactly as they are. Prefer the terminology " +
	"commonly used by the target language community. If you do not understand a term, " +
	"keep it in the original language."

// DefaultTimeout bounds one translation request. Large chunks on slow
// models can take minutes.
const DefaultTimeout = 600 * time.Second

// DefaultConfig returns default provider configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: "deepseek",
		Timeout:  DefaultTimeout,
	}
}

// UserPrompt builds the user message for a translation request.
func UserPrompt(req Request) string {
	return fmt.Sprintf("Translate the following text into %s:\n\n%s", req.TargetLang, req.Text)
}

// newHTTPClient builds the HTTP client shared by all backends, with the
// request timeout and optional proxy applied.
func newHTTPClient(config *Config) (*http.Client, error) {
	client := &http.Client{Timeout: config.Timeout}
	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", config.Proxy, err)
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}
	return client, nil
}

// New creates the translation provider named in the configuration.
func New(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	switch config.Provider {
	case "", "deepseek", "openai":
		return NewDeepSeekProvider(config)
	case "gemini":
		return NewGeminiProvider(config)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}
