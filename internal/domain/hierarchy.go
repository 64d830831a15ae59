package domain

import "strings"

// HierarchyDepth is the number of levels in the client-side hierarchy
const HierarchyDepth = 6

// HierarchyDelimiter joins hierarchy levels when a hierarchy is flattened for output
const HierarchyDelimiter = "-"

// NoMatchSentinel is the proposal string emitted when a query shares no token with the catalog
const NoMatchSentinel = "No Match Found"

// Hierarchy level positions. The gender and sport segments are the levels
// rewritten by the heuristic overrides.
const (
	LevelCategory     = 0
	LevelGender       = 1 // Subcategoria_Nike
	LevelSport        = 2 // Subcategoria2_Nike
	LevelSubcategory3 = 3
	LevelSubcategory4 = 4
	LevelSubcategory5 = 5
)

// Hierarchy is the 6-level client classification of a product.
// An empty level is unset.
type Hierarchy [HierarchyDepth]string

// IsZero reports whether every level is unset
func (h Hierarchy) IsZero() bool {
	for _, level := range h {
		if level != "" {
			return false
		}
	}
	return true
}

// Key flattens the hierarchy into its hyphen-joined form. Unset levels keep
// their delimiter, so an empty hierarchy flattens to "-----".
func (h Hierarchy) Key() string {
	return strings.Join(h[:], HierarchyDelimiter)
}
