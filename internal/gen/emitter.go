package gen

import (
	"bytes"
	"fmt"

	"movegen/internal/annotate"
	"movegen/internal/scan"
)

// Render serializes the document with one decision per block, preserving
// source order. decisions must be index-aligned with doc.Blocks; maxGen is
// the threshold named in skip markers.
func Render(doc *scan.Document, decisions []annotate.Decision, maxGen int) ([]byte, error) {
	if len(decisions) != len(doc.Blocks) {
		return nil, fmt.Errorf("decision count %d does not match block count %d",
			len(decisions), len(doc.Blocks))
	}

	var buf bytes.Buffer

	for _, line := range doc.Preamble {
		buf.WriteString(line)
	}

	for i, block := range doc.Blocks {
		switch d := decisions[i]; d.Kind {
		case annotate.KindInclude:
			for _, line := range annotate.RenderBlock(block, d.Category) {
				buf.WriteString(line)
			}
		case annotate.KindSkip:
			buf.WriteString(annotate.SkipMarker(block.Name, maxGen))
		}
	}

	for _, line := range doc.Postamble {
		buf.WriteString(line)
	}

	return buf.Bytes(), nil
}
