package preprocess

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// TranslatorConfig is the [preprocessor.translator] table from
// book.toml. In preprocessor mode it arrives as JSON inside the
// context; in standalone mode it is read from book.toml directly.
type TranslatorConfig struct {
	Language      string `json:"language"        toml:"language"`
	Prompt        string `json:"prompt"          toml:"prompt"`
	Proxy         string `json:"proxy"           toml:"proxy"`
	Provider      string `json:"provider"        toml:"provider"`
	Model         string `json:"model"           toml:"model"`
	BaseURL       string `json:"base-url"        toml:"base-url"`
	CacheFile     string `json:"cache-file"      toml:"cache-file"`
	CacheBackend  string `json:"cache-backend"   toml:"cache-backend"`
	MaxChunkSize  int    `json:"max-chunk-size"  toml:"max-chunk-size"`
	KeepOnFailure bool   `json:"keep-on-failure" toml:"keep-on-failure"`
}

// TranslatorConfig extracts this preprocessor's table from the
// context's config. A missing table is not an error: every setting has
// a default.
func (c *Context) TranslatorConfig() (*TranslatorConfig, error) {
	var cfg TranslatorConfig
	if len(c.Config) == 0 {
		return &cfg, nil
	}

	var root struct {
		Preprocessor map[string]json.RawMessage `json:"preprocessor"`
	}
	if err := json.Unmarshal(c.Config, &root); err != nil {
		return nil, fmt.Errorf("failed to parse book config: %w", err)
	}

	table, ok := root.Preprocessor[Name]
	if !ok {
		return &cfg, nil
	}
	if err := json.Unmarshal(table, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse [preprocessor.%s] config: %w", Name, err)
	}
	return &cfg, nil
}

// LoadBookTOML reads the [preprocessor.translator] table from a
// book.toml file, for standalone mode. A missing file yields an empty
// configuration.
func LoadBookTOML(dir string) (*TranslatorConfig, error) {
	var cfg TranslatorConfig

	data, err := os.ReadFile(filepath.Join(dir, "book.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read book.toml: %w", err)
	}

	var root struct {
		Preprocessor struct {
			Translator TranslatorConfig `toml:"translator"`
		} `toml:"preprocessor"`
	}
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse book.toml: %w", err)
	}

	cfg = root.Preprocessor.Translator
	return &cfg, nil
}
