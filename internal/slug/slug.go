// Package slug derives metadata table keys from move constant names.
package slug

import "strings"

// Prefix is the constant-name prefix shared by every move entry.
const Prefix = "MOVE_"

// FromConstant converts a move constant to its metadata slug.
// The transform is total and deterministic:
// 1. Strip the MOVE_ prefix (if present).
// 2. Lowercase.
// 3. Replace underscores with hyphens.
//
// Examples:
//   - "MOVE_POUND" -> "pound"
//   - "MOVE_KARATE_CHOP" -> "karate-chop"
func FromConstant(name string) string {
	name = strings.TrimPrefix(name, Prefix)
	name = strings.ToLower(name)

	return strings.ReplaceAll(name, "_", "-")
}
