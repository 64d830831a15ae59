// Package layout maps delivery tables to domain records and back.
package layout

import (
	"strings"

	"github.com/databunker/hierarchy-matcher/internal/domain"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/sheet"
)

// Input column names shared by the catalog and competitor exports
const (
	ColumnKey          = "key"
	ColumnChannel      = "Canal"
	ColumnCategory     = "Category"
	ColumnSubcategory  = "Subcategory"
	ColumnSubcategory2 = "Subcategory2"
	ColumnSubcategory3 = "Subcategory3"
	ColumnSKU          = "SKU"
	ColumnUPC          = "UPC"
	ColumnItem         = "Item"
	ColumnURL          = "URL SKU"
	ColumnImage        = "Image"
)

// HierarchyColumns are the catalog columns holding the six client hierarchy levels
var HierarchyColumns = [domain.HierarchyDepth]string{
	"Categoria_Nike",
	"Subcategoria_Nike",
	"Subcategoria2_Nike",
	"Subcatgory3_Nike",
	"Subcatgory4_Nike",
	"Subcatgory5_Nike",
}

// cell reads a value, treating spreadsheet NaN markers as missing
func cell(t *sheet.Table, row int, name string) string {
	v := t.Value(row, name)
	if strings.EqualFold(strings.TrimSpace(v), "nan") {
		return ""
	}
	return v
}

func categoryFields(t *sheet.Table, row int) domain.CategoryFields {
	return domain.CategoryFields{
		Item:         cell(t, row, ColumnItem),
		Category:     cell(t, row, ColumnCategory),
		Subcategory:  cell(t, row, ColumnSubcategory),
		Subcategory2: cell(t, row, ColumnSubcategory2),
		Subcategory3: cell(t, row, ColumnSubcategory3),
	}
}

// CatalogFromTable maps the reference catalog. The composite key falls back to
// SKU+Canal when the key column is missing or blank.
func CatalogFromTable(t *sheet.Table) ([]domain.CatalogRecord, error) {
	required := append([]string{ColumnItem, ColumnCategory, ColumnChannel}, HierarchyColumns[:]...)
	if err := t.Require(required...); err != nil {
		return nil, err
	}

	records := make([]domain.CatalogRecord, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		r := domain.CatalogRecord{
			CategoryFields: categoryFields(t, row),
			Key:            cell(t, row, ColumnKey),
			Channel:        cell(t, row, ColumnChannel),
			SKU:            cell(t, row, ColumnSKU),
		}
		for lvl, name := range HierarchyColumns {
			r.Hierarchy[lvl] = cell(t, row, name)
		}
		if strings.TrimSpace(r.Key) == "" {
			r.Key = domain.CompositeKey(r.SKU, r.Channel)
		}
		records = append(records, r)
	}

	return records, nil
}

// ProductsFromTable maps the consolidated competitor export
func ProductsFromTable(t *sheet.Table) ([]domain.NewProduct, error) {
	if err := t.Require(ColumnChannel, ColumnSKU, ColumnItem); err != nil {
		return nil, err
	}

	products := make([]domain.NewProduct, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		products = append(products, domain.NewProduct{
			CategoryFields: categoryFields(t, row),
			Channel:        cell(t, row, ColumnChannel),
			SKU:            cell(t, row, ColumnSKU),
			UPC:            cell(t, row, ColumnUPC),
			URL:            cell(t, row, ColumnURL),
			Image:          cell(t, row, ColumnImage),
		})
	}

	return products, nil
}

// ProposalsToTable renders proposals with the fixed output header
func ProposalsToTable(proposals []domain.Proposal) *sheet.Table {
	rows := make([][]string, len(proposals))
	for i := range proposals {
		rows[i] = proposals[i].Row()
	}
	return sheet.NewTable(domain.ProposalHeader(), rows)
}
