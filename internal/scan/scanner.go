package scan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Structural errors. Any of these means the input does not look like a
// battle_moves.h and the run must not produce output.
var (
	ErrNoTableDecl       = errors.New("gBattleMoves array declaration not found")
	ErrNoEntries         = errors.New("table body ended without entries or closing brace")
	ErrUnterminatedBlock = errors.New("entry block not terminated before end of file")
)

var (
	tableDeclPattern  = regexp.MustCompile(`const struct BattleMove gBattleMoves\[MOVES_COUNT\] =`)
	entryStartPattern = regexp.MustCompile(`^\s*\[(MOVE_[A-Z0-9_]+)\] =\s*$`)
	blockEndPattern   = regexp.MustCompile(`^\s*},\s*$`)
)

// isTableEnd reports whether line closes the array itself.
func isTableEnd(line string) bool {
	return strings.TrimSpace(line) == "};"
}

// Scan reads the whole source and partitions it into a Document.
//
// The scanner walks four states: copying preamble until the array
// declaration, copying header lines until the first entry (or the table's
// closing brace for an empty table), accumulating entry blocks, and passing
// the remainder through as postamble.
func Scan(r io.Reader) (*Document, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	doc := &Document{}
	i := 0
	n := len(lines)

	// Preamble: copy through the declaration line.
	declFound := false

	for ; i < n; i++ {
		doc.Preamble = append(doc.Preamble, lines[i])

		if tableDeclPattern.MatchString(lines[i]) {
			declFound = true
			i++

			break
		}
	}

	if !declFound {
		return nil, ErrNoTableDecl
	}

	// Header: copy until the first entry or the table's closing brace.
	entrySeen := false

	for i < n {
		if entryStartPattern.MatchString(lines[i]) {
			entrySeen = true
			break
		}

		doc.Preamble = append(doc.Preamble, lines[i])

		if isTableEnd(lines[i]) {
			// Empty table: no blocks, remainder is postamble.
			doc.Postamble = append(doc.Postamble, lines[i+1:]...)
			return doc, nil
		}

		i++
	}

	if !entrySeen {
		return nil, ErrNoEntries
	}

	// Blocks: consecutive entry blocks until a line that starts no entry.
	for i < n {
		m := entryStartPattern.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}

		block := Block{Name: m[1], StartLine: i + 1}
		terminated := false

		for ; i < n; i++ {
			block.Lines = append(block.Lines, lines[i])

			if blockEndPattern.MatchString(lines[i]) {
				terminated = true
				i++

				break
			}
		}

		if !terminated {
			return nil, fmt.Errorf("entry %s starting at line %d: %w",
				block.Name, block.StartLine, ErrUnterminatedBlock)
		}

		block.EndLine = i
		doc.Blocks = append(doc.Blocks, block)
	}

	// Done: everything left is postamble.
	doc.Postamble = append(doc.Postamble, lines[i:]...)

	return doc, nil
}

// readLines splits r into lines with their terminators kept, so that the
// concatenation of all lines equals the input byte-for-byte. A final line
// without a trailing newline is preserved as-is.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}

		if errors.Is(err, io.EOF) {
			return lines, nil
		}

		if err != nil {
			return nil, err
		}
	}
}
