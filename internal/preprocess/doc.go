// Package preprocess implements the mdBook preprocessor wire protocol:
// parsing the [context, book] tuple mdBook pipes in on stdin, checking
// the mdBook version handshake, extracting this preprocessor's
// configuration table and writing the processed book back out. Stdout
// carries nothing but the book JSON.
package preprocess
