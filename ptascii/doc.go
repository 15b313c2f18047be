// Package ptascii renders a PartialGraph to a terminal-friendly
// character grid: vertices as 'o', edges as integer-stepped line
// characters, everything else '.'. It is the Go counterpart of the
// original source's draw_ascii(width, height) debug call
// (original_source/src/main.rs), used here as a test/CLI aid rather
// than a search-loop side effect.
package ptascii
