package scan

// Block is one move entry: a contiguous run of raw source lines from the
// `[MOVE_X] =` header through the `},` terminator, both inclusive.
type Block struct {
	// Name is the move constant from the header line (e.g. "MOVE_POUND").
	Name string
	// Lines holds the block's raw lines, line terminators included.
	Lines []string
	// StartLine and EndLine are 1-based source line numbers of the header
	// and terminator lines.
	StartLine int
	EndLine   int
}

// Document is the scanned partition of a source file. Joining
// Preamble + Blocks' lines + Postamble reproduces the input exactly.
type Document struct {
	// Preamble holds everything up to and including the table declaration
	// and any header lines before the first entry.
	Preamble []string
	// Blocks are the move entries in source order.
	Blocks []Block
	// Postamble holds everything after the last block, starting with the
	// array's closing line.
	Postamble []string
}
