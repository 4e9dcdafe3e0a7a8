// Package gen renders an annotated document back to text and writes it.
//
// Rendering is purely concatenative: preamble, each block in source order
// (rewritten or replaced by its skip marker), then postamble. Writes go
// through a temp file and rename, so a crash mid-write never leaves a
// truncated output behind.
package gen
