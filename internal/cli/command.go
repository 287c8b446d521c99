package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BUB97/mdbook-translator/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdbook-translator",
		Short: "mdBook translation preprocessor",
		Long: `mdbook-translator is an mdBook preprocessor that translates a book's
Markdown content through a chat-completion API (DeepSeek by default),
with a content-addressed cache so unchanged chapters are never
re-translated.

Run without arguments it speaks the mdBook preprocessor protocol: the
[context, book] tuple on stdin, the translated book on stdout.

Examples:
  mdbook-translator supports html        # Protocol handshake, called by mdBook
  mdbook-translator translate intro.md   # Translate a standalone Markdown file
  mdbook-translator models               # List models for the configured provider`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.mdbook-translator.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&flags.Language, "language", "l", flags.Language, "Target language")
	cmd.PersistentFlags().StringVar(&flags.Prompt, "prompt", "", "Extra instruction appended to every translation request")
	cmd.PersistentFlags().BoolVar(&flags.KeepOnFailure, "keep-on-failure", false, "Keep source text for chunks that fail to translate")
	cmd.PersistentFlags().IntVar(&flags.MaxChunkSize, "max-chunk-size", flags.MaxChunkSize, "Maximum characters per translation request")
	cmd.PersistentFlags().BoolVar(&flags.DryRun, "dry-run", false, "Walk and chunk without calling the API")

	// Provider flags
	cmd.PersistentFlags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider (deepseek, openai or gemini)")
	cmd.PersistentFlags().StringVar(&flags.Model, "model", "", "Chat model (provider default when empty)")
	cmd.PersistentFlags().StringVar(&flags.BaseURL, "base-url", "", "API endpoint for OpenAI-compatible providers")
	cmd.PersistentFlags().StringVar(&flags.Proxy, "proxy", "", "HTTP(S) proxy URL for API requests")
	cmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for one translation request")

	// Cache flags
	cmd.PersistentFlags().StringVar(&flags.CacheFile, "cache-file", flags.CacheFile, "Translation cache path")
	cmd.PersistentFlags().StringVar(&flags.CacheBackend, "cache-backend", flags.CacheBackend, "Cache backend (json or sqlite)")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("language", cmd.PersistentFlags().Lookup("language"))
	viper.BindPFlag("prompt", cmd.PersistentFlags().Lookup("prompt"))
	viper.BindPFlag("keep_on_failure", cmd.PersistentFlags().Lookup("keep-on-failure"))
	viper.BindPFlag("max_chunk_size", cmd.PersistentFlags().Lookup("max-chunk-size"))
	viper.BindPFlag("provider.name", cmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("provider.model", cmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("provider.base_url", cmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("provider.proxy", cmd.PersistentFlags().Lookup("proxy"))
	viper.BindPFlag("provider.timeout", cmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("cache.file", cmd.PersistentFlags().Lookup("cache-file"))
	viper.BindPFlag("cache.backend", cmd.PersistentFlags().Lookup("cache-backend"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A .env next to the book is the easiest place for the API key
	godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory and cwd with name
		// ".mdbook-translator" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mdbook-translator")
	}

	// Environment variables: "provider.base_url" becomes
	// MDBOOK_TRANSLATOR_PROVIDER_BASE_URL
	viper.SetEnvPrefix("MDBOOK_TRANSLATOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ResolveConfig copies every bound setting back out of viper into the
// flags the run consumes, so config-file and MDBOOK_TRANSLATOR_*
// environment values take effect. BindPFlag gives viper the precedence
// order: a flag set on the command line wins, then the environment,
// then the config file, then the flag default.
func ResolveConfig(flags *Flags) {
	flags.Language = viper.GetString("language")
	flags.Prompt = viper.GetString("prompt")
	flags.KeepOnFailure = viper.GetBool("keep_on_failure")
	flags.MaxChunkSize = viper.GetInt("max_chunk_size")
	flags.Provider = viper.GetString("provider.name")
	flags.Model = viper.GetString("provider.model")
	flags.BaseURL = viper.GetString("provider.base_url")
	flags.Proxy = viper.GetString("provider.proxy")
	flags.Timeout = viper.GetDuration("provider.timeout")
	flags.CacheFile = viper.GetString("cache.file")
	flags.CacheBackend = viper.GetString("cache.backend")
}

// GetAPIKey retrieves the API key for a provider from environment or
// config. DEEPSEEK_API_KEY matches the original plugin; OPENAI_API_KEY
// and GEMINI_API_KEY cover the other backends.
func GetAPIKey(providerName string) string {
	switch providerName {
	case "gemini":
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		return viper.GetString("provider.gemini_api_key")
	case "openai":
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return key
		}
		fallthrough
	default:
		if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
			return key
		}
		return viper.GetString("provider.api_key")
	}
}
