// Package metadata loads the moves CSV table into a slug-keyed lookup.
//
// Only three columns matter: identifier, generation_id, damage_class_id.
// Columns are discovered by header name, not position. Numeric fields that
// fail to parse are recorded as absent rather than failing the load, so a
// missing damage class can never block a move from the output.
package metadata
