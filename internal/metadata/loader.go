package metadata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"movegen/internal/diagnostic"
)

// ErrMissingInput indicates a required input file is absent or unreadable.
var ErrMissingInput = errors.New("input file missing")

// ErrBadHeader indicates the CSV header row lacks a required column.
var ErrBadHeader = errors.New("required column missing")

// Required column names in the CSV header row.
const (
	colIdentifier  = "identifier"
	colGeneration  = "generation_id"
	colDamageClass = "damage_class_id"
)

// Record holds the metadata fields this tool consumes for one move.
// Generation and DamageClass are nil when the CSV cell was empty or
// non-numeric.
type Record struct {
	Slug        string
	Generation  *int
	DamageClass *int
}

// Table maps slug to its metadata record.
// Duplicate slugs follow a last-wins policy: the record from the latest row
// replaces earlier ones, and a warning diagnostic is recorded.
type Table map[string]Record

// Load reads the CSV file at path into a Table.
// Degraded fields and duplicate slugs are reported through diags; only a
// missing file or a malformed header aborts the load.
func Load(path string, diags *diagnostic.Diagnostics) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("metadata table %s: %w", path, ErrMissingInput)
		}

		return nil, fmt.Errorf("opening metadata table %s: %w", path, err)
	}
	defer f.Close()

	table, err := Parse(f, diags)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata table %s: %w", path, err)
	}

	return table, nil
}

// Parse reads CSV data from r into a Table.
func Parse(r io.Reader, diags *diagnostic.Diagnostics) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may be ragged; missing cells degrade to absent fields

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	table := make(Table)
	line := 1

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		line++

		slugVal := cell(row, cols.identifier)
		if slugVal == "" {
			diags.AddWarning("metadata-empty-identifier", "row has no identifier, skipped", "", line)
			continue
		}

		rec := Record{
			Slug:        slugVal,
			Generation:  parseField(row, cols.generation, colGeneration, slugVal, line, diags),
			DamageClass: parseField(row, cols.damageClass, colDamageClass, slugVal, line, diags),
		}

		if _, dup := table[slugVal]; dup {
			diags.AddWarning("metadata-duplicate-slug", "duplicate slug, last row wins", slugVal, line)
		}

		table[slugVal] = rec
	}

	return table, nil
}

// columnSet holds the resolved index of each required column.
type columnSet struct {
	identifier  int
	generation  int
	damageClass int
}

func resolveColumns(header []string) (columnSet, error) {
	idx := map[string]int{}
	for i, name := range header {
		idx[name] = i
	}

	cols := columnSet{}

	for _, req := range []struct {
		name string
		dst  *int
	}{
		{colIdentifier, &cols.identifier},
		{colGeneration, &cols.generation},
		{colDamageClass, &cols.damageClass},
	} {
		i, ok := idx[req.name]
		if !ok {
			return columnSet{}, fmt.Errorf("header column %q: %w", req.name, ErrBadHeader)
		}

		*req.dst = i
	}

	return cols, nil
}

// cell returns the value at index i, or "" when the row is too short.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	return row[i]
}

// parseField parses an integer cell, degrading to nil with a warning on
// empty or non-numeric values.
func parseField(row []string, i int, col, slug string, line int, diags *diagnostic.Diagnostics) *int {
	raw := cell(row, i)
	if raw == "" {
		return nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		diags.AddWarning("metadata-bad-field",
			fmt.Sprintf("non-numeric %s %q read as absent", col, raw), slug, line)
		return nil
	}

	return &v
}
