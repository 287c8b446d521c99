// Package provider abstracts the remote translation backends. The
// default backend speaks the OpenAI-compatible chat-completions API
// that DeepSeek exposes; Gemini is available as an alternative. All
// backends receive the same system prompt and are wrapped in a retry
// and circuit-breaker layer before use.
package provider
