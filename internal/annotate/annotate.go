package annotate

import (
	"fmt"
	"regexp"

	"movegen/internal/common"
	"movegen/internal/diagnostic"
	"movegen/internal/metadata"
	"movegen/internal/scan"
	"movegen/internal/slug"
)

// DefaultCategory is the category value used when the metadata record has
// no damage class (status moves by domain convention).
const DefaultCategory = 1

// defaultIndent is used when a block has no field line to copy indentation from.
const defaultIndent = "    "

// DecisionKind states whether a block is kept or elided.
type DecisionKind int

const (
	// KindInclude keeps the block and inserts a category line.
	KindInclude DecisionKind = iota
	// KindSkip replaces the block with a marker comment.
	KindSkip
)

// String returns a human-readable decision name.
func (k DecisionKind) String() string {
	switch k {
	case KindInclude:
		return "include"
	case KindSkip:
		return "skip"
	default:
		return common.UnknownStr
	}
}

// Decision is the per-block outcome. Category is only meaningful for
// KindInclude.
type Decision struct {
	Kind     DecisionKind
	Category int
}

// Decide computes the inclusion decision for one block.
//
// Inclusion requires a metadata record for the block's slug with a defined
// generation not exceeding maxGen; there is no lower bound. The category
// value is the record's damage class, or DefaultCategory when absent. Skips
// are recorded in diags with the reason.
func Decide(b scan.Block, table metadata.Table, maxGen int, diags *diagnostic.Diagnostics) Decision {
	key := slug.FromConstant(b.Name)

	rec, ok := table[key]
	if !ok {
		diags.AddInfo("skip-no-record", "no metadata record, block elided", key, b.StartLine)
		return Decision{Kind: KindSkip}
	}

	if rec.Generation == nil {
		diags.AddInfo("skip-no-generation", "generation undefined, block elided", key, b.StartLine)
		return Decision{Kind: KindSkip}
	}

	if *rec.Generation > maxGen {
		diags.AddInfo("skip-generation",
			fmt.Sprintf("generation %d above threshold %d, block elided", *rec.Generation, maxGen),
			key, b.StartLine)

		return Decision{Kind: KindSkip}
	}

	category := DefaultCategory
	if rec.DamageClass != nil {
		category = *rec.DamageClass
	}

	return Decision{Kind: KindInclude, Category: category}
}

var (
	blockEndPattern = regexp.MustCompile(`^\s*},\s*$`)
	indentPattern   = regexp.MustCompile(`^[ \t]*`)
)

// RenderBlock returns the block's lines with the category line inserted
// immediately before the terminator. The inserted line copies the
// indentation of the last field line, so the new field sits flush with the
// existing ones.
func RenderBlock(b scan.Block, category int) []string {
	// Locate the terminator from the end; scanning guarantees it exists.
	term := len(b.Lines) - 1
	for ; term >= 0; term-- {
		if blockEndPattern.MatchString(b.Lines[term]) {
			break
		}
	}

	if term < 0 {
		term = len(b.Lines)
	}

	indent := defaultIndent

	if term > 0 {
		if prev, ok := common.Last(b.Lines[:term]); ok {
			indent = indentPattern.FindString(prev)
		}
	}

	line := fmt.Sprintf("%s.category = %d,\n", indent, category)

	out := make([]string, 0, len(b.Lines)+1)
	out = append(out, b.Lines[:term]...)
	out = append(out, line)
	out = append(out, b.Lines[term:]...)

	return out
}

// SkipMarker returns the single comment line that replaces an elided block.
// The stated predicate tracks the configured threshold.
func SkipMarker(name string, maxGen int) string {
	return fmt.Sprintf("%s/* Skipped %s (not in metadata, gen<=%d) */\n", defaultIndent, name, maxGen)
}
