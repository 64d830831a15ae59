package domain

import (
	"fmt"
	"strings"
)

// Column identifies a field of the proposal table
type Column int

// Proposal columns in output order
const (
	ColumnQuery Column = iota
	ColumnChannel
	ColumnSKU
	ColumnUPC
	ColumnItem
	ColumnURL
	ColumnImage
	ColumnProposal
	ColumnConcatenatedAdjusted
	ColumnCategory
	ColumnGender
	ColumnSport
	ColumnSubcategory3
	ColumnSubcategory4
	ColumnSubcategory5

	columnCount
)

var columnNames = [columnCount]string{
	"Item_conc",
	"Canal",
	"SKU",
	"UPC",
	"Item",
	"URL SKU",
	"Image",
	"proposal_conc",
	"concatenated_adjusted",
	"Categoria_Nike",
	"Subcategoria_Nike",
	"Subcategoria2_Nike",
	"Subcatgory3_Nike",
	"Subcatgory4_Nike",
	"Subcatgory5_Nike",
}

// ProposalColumns lists every proposal column in output order
func ProposalColumns() []Column {
	cols := make([]Column, columnCount)
	for i := range cols {
		cols[i] = Column(i)
	}
	return cols
}

// ProposalHeader returns the output header row
func ProposalHeader() []string {
	return append([]string(nil), columnNames[:]...)
}

// ParseColumn resolves a column by its exact header name
func ParseColumn(name string) (Column, error) {
	name = strings.TrimSpace(name)
	for i, n := range columnNames {
		if n == name {
			return Column(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Valid reports whether c names a proposal column
func (c Column) Valid() bool {
	return c >= 0 && c < columnCount
}

func (c Column) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnNames[c]
}

// hierarchyLevel maps a hierarchy column to its level, or -1
func (c Column) hierarchyLevel() int {
	if c >= ColumnCategory && c <= ColumnSubcategory5 {
		return int(c - ColumnCategory)
	}
	return -1
}

// Proposal is one row of the proposal table: a new product and the hierarchy proposed for it
type Proposal struct {
	Query     string // canonical text used for matching
	Channel   string
	SKU       string
	UPC       string
	Item      string
	URL       string
	Image     string
	Proposed  string // hierarchy key of the matched catalog record, or NoMatchSentinel
	Hierarchy Hierarchy

	// ConcatenatedAdjusted is the hierarchy key after the heuristic overrides.
	// Conditions may overwrite it; later level overrides do not flow into it.
	ConcatenatedAdjusted string
}

// RefreshAdjusted recomputes ConcatenatedAdjusted from the current levels.
// A no-match row whose levels are all unset stays empty.
func (p *Proposal) RefreshAdjusted() {
	if p.Proposed == NoMatchSentinel && p.Hierarchy.IsZero() {
		p.ConcatenatedAdjusted = ""
		return
	}
	p.ConcatenatedAdjusted = p.Hierarchy.Key()
}

// Value returns the current value of column c. Unset values are empty.
func (p *Proposal) Value(c Column) string {
	if lvl := c.hierarchyLevel(); lvl >= 0 {
		return p.Hierarchy[lvl]
	}
	switch c {
	case ColumnQuery:
		return p.Query
	case ColumnChannel:
		return p.Channel
	case ColumnSKU:
		return p.SKU
	case ColumnUPC:
		return p.UPC
	case ColumnItem:
		return p.Item
	case ColumnURL:
		return p.URL
	case ColumnImage:
		return p.Image
	case ColumnProposal:
		return p.Proposed
	case ColumnConcatenatedAdjusted:
		return p.ConcatenatedAdjusted
	}
	return ""
}

// Set overwrites column c with value
func (p *Proposal) Set(c Column, value string) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, c)
	}
	if lvl := c.hierarchyLevel(); lvl >= 0 {
		p.Hierarchy[lvl] = value
		return nil
	}
	switch c {
	case ColumnQuery:
		p.Query = value
	case ColumnChannel:
		p.Channel = value
	case ColumnSKU:
		p.SKU = value
	case ColumnUPC:
		p.UPC = value
	case ColumnItem:
		p.Item = value
	case ColumnURL:
		p.URL = value
	case ColumnImage:
		p.Image = value
	case ColumnProposal:
		p.Proposed = value
	case ColumnConcatenatedAdjusted:
		p.ConcatenatedAdjusted = value
	}
	return nil
}

// Row renders the proposal in output column order
func (p *Proposal) Row() []string {
	row := make([]string, columnCount)
	for i := range row {
		row[i] = p.Value(Column(i))
	}
	return row
}
