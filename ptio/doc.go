// Package ptio reads and writes the binary point-set stream format of
// spec.md §6: a sequence of fixed-size point sets, each coordinate
// encoded as one unsigned byte (8-bit mode) or two little-endian
// unsigned bytes (16-bit mode), packed x0,y0,x1,y1,….
//
// ReadPointSets reads to EOF and discards any trailing partial record.
// WritePointSets is the reader's dual, used by tests and pointset
// fixtures to round-trip generated point sets to disk; spec.md does
// not require a writer, but every reader in this module's ancestry
// (the teacher's loaders included) ships with a symmetric encoder for
// golden-file generation.
package ptio
