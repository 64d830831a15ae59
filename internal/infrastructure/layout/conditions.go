package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/databunker/hierarchy-matcher/internal/domain"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/sheet"
)

// Conditions table control columns
const (
	ConditionColumn = "Column"
	ConditionWord   = "Word"
	ConditionDelete = "ELIMINAR"
)

// ConditionsFromTable maps the conditions table in row order. Every other
// named header must be a proposal column; this is checked before any row is
// read. Blank override cells are ignored. Rows with a blank Word are dropped.
// A backslash in Word is an alternative spelling of the "+" joiner.
//
// Word holds one term or exactly two terms joined by "+". Three or more terms,
// or a joiner with an empty side, fail the load with ErrInvalidCondition
// rather than matching every row.
func ConditionsFromTable(t *sheet.Table) ([]domain.Condition, error) {
	if err := t.Require(ConditionColumn, ConditionWord); err != nil {
		return nil, err
	}

	overrideCols, err := overrideColumns(t.Header)
	if err != nil {
		return nil, err
	}

	conditions := make([]domain.Condition, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		word := cell(t, row, ConditionWord)
		if strings.TrimSpace(word) == "" {
			continue
		}
		word = strings.ReplaceAll(word, `\`, domain.TermJoiner)

		// rows are numbered as in the spreadsheet, header being row 1
		line := row + 2

		column, err := domain.ParseColumn(cell(t, row, ConditionColumn))
		if err != nil {
			return nil, fmt.Errorf("conditions row %d: %w", line, err)
		}

		terms, err := splitTerms(word)
		if err != nil {
			return nil, fmt.Errorf("conditions row %d: %w", line, err)
		}

		cond := domain.Condition{
			Column: column,
			Word:   word,
			Terms:  terms,
			Delete: isTruthy(cell(t, row, ConditionDelete)),
		}
		for _, oc := range overrideCols {
			value := strings.TrimSpace(cell(t, row, oc.header))
			if value == "" {
				continue
			}
			cond.Overrides = append(cond.Overrides, domain.Override{Column: oc.column, Value: value})
		}

		conditions = append(conditions, cond)
	}

	return conditions, nil
}

type overrideColumn struct {
	header string
	column domain.Column
}

func overrideColumns(header []string) ([]overrideColumn, error) {
	var cols []overrideColumn
	for _, h := range header {
		name := strings.TrimSpace(h)
		switch name {
		case "", ConditionColumn, ConditionWord, ConditionDelete:
			continue
		}

		column, err := domain.ParseColumn(name)
		if err != nil {
			return nil, fmt.Errorf("conditions header: %w", err)
		}
		cols = append(cols, overrideColumn{header: name, column: column})
	}
	return cols, nil
}

// splitTerms accepts a single term or exactly two terms joined by "+"
func splitTerms(word string) ([]string, error) {
	if !strings.Contains(word, domain.TermJoiner) {
		return []string{word}, nil
	}

	terms := strings.Split(word, domain.TermJoiner)
	if len(terms) != 2 {
		return nil, fmt.Errorf("%w: %q must join exactly two terms", domain.ErrInvalidCondition, word)
	}
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			return nil, fmt.Errorf("%w: %q has an empty term", domain.ErrInvalidCondition, word)
		}
	}
	return terms, nil
}

// isTruthy reads the deletion flag: numerically 1, or "true"
func isTruthy(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f == 1
	}
	return strings.EqualFold(v, "true")
}
