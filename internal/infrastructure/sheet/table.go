// Package sheet reads and writes header-keyed tables from CSV and XLSX files.
package sheet

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/databunker/hierarchy-matcher/internal/domain"
)

// Table is a rectangular-ish table whose first row named the columns.
// Rows may be shorter than the header; missing cells read as empty.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// NewTable creates a table. Header names are matched after trimming spaces;
// on duplicate names the first column wins.
func NewTable(header []string, rows [][]string) *Table {
	t := &Table{
		Header: header,
		Rows:   rows,
		index:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}
	return t
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[strings.TrimSpace(name)]
	return i, ok
}

// Has reports whether the named column exists
func (t *Table) Has(name string) bool {
	_, ok := t.ColumnIndex(name)
	return ok
}

// Value returns the cell of row under the named column, or "" when absent
func (t *Table) Value(row int, name string) string {
	col, ok := t.ColumnIndex(name)
	if !ok || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Require fails with domain.ErrMissingColumn naming every absent column
func (t *Table) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if !t.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Options configure file access
type Options struct {
	Sheet string // xlsx sheet; first sheet when reading, "Sheet1" when writing if empty
	Comma rune   // csv separator; ',' if zero
}

// ReadFile reads a table, choosing the format by file extension
func ReadFile(path string, opts Options) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ReadCSV(path, opts.Comma)
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, opts.Sheet)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}
}

// WriteFile writes a table, choosing the format by file extension
func WriteFile(path string, t *Table, opts Options) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return WriteCSV(path, t, opts.Comma)
	case ".xlsx":
		return WriteXLSX(path, t, opts.Sheet)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}
}

// fromRows splits raw rows into header and data, dropping fully blank rows
func fromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("table has no header row")
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		data = append(data, row)
	}
	return NewTable(rows[0], data), nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
