// Package chunk splits Markdown text into translation-sized pieces.
// The splitter is line based: it never breaks inside a fenced code
// block, and it preserves blank lines so that paragraph boundaries
// survive the round trip through the translation API.
package chunk
