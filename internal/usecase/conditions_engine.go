package usecase

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/databunker/hierarchy-matcher/internal/domain"
)

// ConditionsReport summarizes one pass of the conditions engine
type ConditionsReport struct {
	Evaluated int // conditions with a non-empty trigger
	Skipped   int // conditions with an empty trigger
	Touched   int // row matches, counted once per condition
	Deleted   int
}

// ConditionsEngine applies ordered override conditions to a proposal table
type ConditionsEngine struct {
	logger *zap.Logger
}

// NewConditionsEngine creates a conditions engine
func NewConditionsEngine(logger *zap.Logger) *ConditionsEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConditionsEngine{logger: logger}
}

// Apply evaluates conditions in order against proposals. Matching rows get the
// condition's overrides and are then dropped when the condition deletes. Later
// conditions see the rows as left by earlier ones; deleted rows never match
// again. The surviving rows are returned in their original order.
func (e *ConditionsEngine) Apply(conditions []domain.Condition, proposals []domain.Proposal) ([]domain.Proposal, ConditionsReport, error) {
	var report ConditionsReport
	deleted := make([]bool, len(proposals))

	for n, cond := range conditions {
		terms := foldTerms(cond)
		if len(terms) == 0 {
			report.Skipped++
			continue
		}
		if !cond.Column.Valid() {
			return nil, report, fmt.Errorf("condition %d (%q): %w: %s", n+1, cond.Word, domain.ErrUnknownColumn, cond.Column)
		}
		report.Evaluated++

		matched := 0
		for i := range proposals {
			if deleted[i] || !containsAll(proposals[i].Value(cond.Column), terms) {
				continue
			}
			for _, o := range cond.Overrides {
				if o.Value == "" {
					continue
				}
				if err := proposals[i].Set(o.Column, o.Value); err != nil {
					return nil, report, fmt.Errorf("condition %d (%q): %w", n+1, cond.Word, err)
				}
			}
			if cond.Delete {
				deleted[i] = true
				report.Deleted++
			}
			matched++
		}
		report.Touched += matched

		if matched > 0 {
			e.logger.Debug("condition applied",
				zap.Int("condition", n+1),
				zap.String("column", cond.Column.String()),
				zap.String("word", cond.Word),
				zap.Int("rows", matched),
				zap.Bool("delete", cond.Delete))
		}
	}

	kept := make([]domain.Proposal, 0, len(proposals)-report.Deleted)
	for i := range proposals {
		if !deleted[i] {
			kept = append(kept, proposals[i])
		}
	}

	e.logger.Info("conditions applied",
		zap.Int("evaluated", report.Evaluated),
		zap.Int("skipped", report.Skipped),
		zap.Int("touched", report.Touched),
		zap.Int("deleted", report.Deleted))

	return kept, report, nil
}

func foldTerms(cond domain.Condition) []string {
	terms := make([]string, 0, len(cond.Terms))
	for _, t := range cond.Terms {
		if t == "" {
			continue
		}
		terms = append(terms, foldForMatch(t))
	}
	return terms
}

// containsAll reports whether value contains every term, ignoring case.
// An unset value matches nothing.
func containsAll(value string, terms []string) bool {
	if value == "" {
		return false
	}
	folded := foldForMatch(value)
	for _, t := range terms {
		if !strings.Contains(folded, t) {
			return false
		}
	}
	return true
}
