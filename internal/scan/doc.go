// Package scan partitions a battle_moves.h file into a preamble, an ordered
// sequence of move entry blocks, and a postamble.
//
// Boundary detection is line-pattern based, not a C grammar: the scanner
// recognizes the gBattleMoves array declaration, `[MOVE_X] =` entry headers,
// and the `},` block terminator. Lines are kept verbatim (terminators
// included) so re-joining a document reproduces the input bytes.
//
// Unlike naive pass-through scanning, structural pattern misses are fatal:
// a file with no array declaration, no entries, or an unterminated block
// returns an error instead of silently copying the input through.
package scan
