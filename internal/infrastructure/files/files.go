// Package files provides the file-backed sources and sink of a delivery cycle.
package files

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/databunker/hierarchy-matcher/internal/domain"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/layout"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/sheet"
)

// CatalogFile reads the reference catalog from a csv or xlsx file
type CatalogFile struct {
	Path  string
	Sheet string
}

// LoadCatalog implements domain.CatalogSource
func (f CatalogFile) LoadCatalog(ctx context.Context) ([]domain.CatalogRecord, error) {
	t, err := read(ctx, f.Path, sheet.Options{Sheet: f.Sheet})
	if err != nil {
		return nil, err
	}
	records, err := layout.CatalogFromTable(t)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", f.Path, err)
	}
	return records, nil
}

// ProductsFile reads the consolidated competitor export
type ProductsFile struct {
	Path  string
	Sheet string
}

// LoadProducts implements domain.ProductSource
func (f ProductsFile) LoadProducts(ctx context.Context) ([]domain.NewProduct, error) {
	t, err := read(ctx, f.Path, sheet.Options{Sheet: f.Sheet})
	if err != nil {
		return nil, err
	}
	products, err := layout.ProductsFromTable(t)
	if err != nil {
		return nil, fmt.Errorf("products %s: %w", f.Path, err)
	}
	return products, nil
}

// ConditionsFile reads the conditions table. Comma defaults to ';'.
type ConditionsFile struct {
	Path  string
	Comma rune
}

// LoadConditions implements domain.ConditionSource
func (f ConditionsFile) LoadConditions(ctx context.Context) ([]domain.Condition, error) {
	comma := f.Comma
	if comma == 0 {
		comma = ';'
	}
	t, err := read(ctx, f.Path, sheet.Options{Comma: comma})
	if err != nil {
		return nil, err
	}
	conditions, err := layout.ConditionsFromTable(t)
	if err != nil {
		return nil, fmt.Errorf("conditions %s: %w", f.Path, err)
	}
	return conditions, nil
}

// ProposalFile writes the proposal table; the format follows the extension
type ProposalFile struct {
	Path  string
	Sheet string
}

// WriteProposals implements domain.ProposalSink
func (f ProposalFile) WriteProposals(ctx context.Context, proposals []domain.Proposal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return sheet.WriteFile(f.Path, layout.ProposalsToTable(proposals), sheet.Options{Sheet: f.Sheet})
}

// ProposalFileName builds the conventional output name <client>_matchProposal_<date>.<ext>
func ProposalFileName(client, date, ext string) string {
	return fmt.Sprintf("%s_matchProposal_%s.%s", client, date, ext)
}

// SummaryFileName builds the conventional run summary name <client>_matchSummary_<date>.yaml
func SummaryFileName(client, date string) string {
	return fmt.Sprintf("%s_matchSummary_%s.yaml", client, date)
}

func read(ctx context.Context, path string, opts sheet.Options) (*sheet.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return sheet.ReadFile(path, opts)
}
