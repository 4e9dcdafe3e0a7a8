// Package diagnostic provides structured warnings and per-entry notes
// collected while loading metadata and rewriting the move table.
//
// Key capabilities:
//   - Degraded metadata field warnings (non-numeric values read as absent)
//   - Duplicate slug warnings
//   - Per-entry skip notes with the reason for exclusion
package diagnostic
