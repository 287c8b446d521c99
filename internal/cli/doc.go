// Package cli provides command-line interface setup and configuration
// for mdbook-translator: cobra command construction, flag definitions,
// viper config file and environment handling, and API key resolution.
package cli
