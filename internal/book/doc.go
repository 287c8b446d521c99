// Package book models the mdBook document tree as it crosses the
// preprocessor boundary. The JSON shape mirrors mdBook's serde output:
// a Book holds a list of items, and each item is either a chapter
// object, the literal string "Separator", or a part title. Round
// tripping a book through this package must not change its structure.
package book
