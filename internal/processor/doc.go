// Package processor wires configuration, cache, provider and
// translator together for each run mode: the mdBook preprocessor
// protocol on stdin/stdout, and standalone translation of Markdown
// files.
package processor
