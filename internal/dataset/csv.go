// Package dataset loads observed DMU data from CSV files.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/stoned/shape"
)

// ErrUnknownColumn is returned by Column for a name missing from the header.
var ErrUnknownColumn = errors.New("csv: unknown column")

// Table is a parsed CSV file: a header row and string cells. Cells are
// parsed as numbers only when a column is requested, so label columns
// (DMU names, regions) may hold anything.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

// LoadCSV reads a CSV file whose first row is the header.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// ReadCSV parses CSV from r; the first record is the header.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("csv: empty input (no header row)")
	}

	t := &Table{header: records[0], index: make(map[string]int, len(records[0])), rows: records[1:]}
	for j, h := range t.header {
		h = strings.TrimSpace(h)
		if _, dup := t.index[h]; dup {
			return nil, fmt.Errorf("csv: duplicate column %q", h)
		}
		t.index[h] = j
	}

	return t, nil
}

// Header returns a copy of the column names.
func (t *Table) Header() []string { return append([]string(nil), t.header...) }

// Len is the number of data rows (DMUs).
func (t *Table) Len() int { return len(t.rows) }

// Floats parses one named column.
func (t *Table) Floats(name string) ([]float64, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColumn, name)
	}
	out := make([]float64, len(t.rows))
	for i, rec := range t.rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
		if err != nil {
			return nil, fmt.Errorf("csv: row %d column %q: %w", i+2, name, err)
		}
		out[i] = v
	}

	return out, nil
}

// Column builds a shape.Column from the named columns: none gives an
// absent column, one gives scalars, several give per-DMU vectors in the
// order the names are listed.
func (t *Table) Column(names ...string) (shape.Column, error) {
	switch len(names) {
	case 0:
		return shape.None(), nil
	case 1:
		v, err := t.Floats(names[0])
		if err != nil {
			return shape.Column{}, err
		}
		return shape.Scalars(v), nil
	}

	rows, err := t.Rows(names...)
	if err != nil {
		return shape.Column{}, err
	}

	return shape.Vectors(rows), nil
}

// Rows returns the named columns as an n×len(names) row-major slice.
func (t *Table) Rows(names ...string) ([][]float64, error) {
	rows := make([][]float64, len(t.rows))
	for i := range rows {
		rows[i] = make([]float64, len(names))
	}
	for k, name := range names {
		v, err := t.Floats(name)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i][k] = v[i]
		}
	}

	return rows, nil
}

// LoadMatrix reads a headerless numeric CSV, such as an isotonic weight
// matrix, into rows.
func LoadMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	out := make([][]float64, len(records))
	for i, rec := range records {
		out[i] = make([]float64, len(rec))
		for j, cell := range rec {
			if out[i][j], err = strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
				return nil, fmt.Errorf("csv: %s row %d field %d: %w", path, i+1, j+1, err)
			}
		}
	}

	return out, nil
}
