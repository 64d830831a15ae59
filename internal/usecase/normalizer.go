package usecase

import (
	"strings"

	"github.com/databunker/hierarchy-matcher/internal/domain"
)

// CanonicalText joins the description and category path with single spaces,
// in the order item, category, subcategory, subcategory2, subcategory3.
// No case folding happens here; the tokenizer lowercases.
func CanonicalText(f domain.CategoryFields) string {
	return strings.Join([]string{
		f.Item,
		f.Category,
		f.Subcategory,
		f.Subcategory2,
		f.Subcategory3,
	}, " ")
}
