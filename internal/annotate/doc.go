// Package annotate decides, per scanned move block, whether the block is
// kept or elided, and renders both outcomes.
//
// A block is kept when its slug resolves to a metadata record whose
// generation is present and within the configured threshold. Kept blocks get
// one `.category = <v>,` line inserted before their terminator; elided
// blocks are replaced by a single skip-marker comment.
package annotate
