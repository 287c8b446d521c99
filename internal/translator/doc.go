// Package translator drives the translation pass: it chunks chapter
// content, answers chunks from the cache where possible, sends the
// rest to the configured provider and reassembles the translated
// chapters. It owns the run statistics reported at the end of a build.
package translator
