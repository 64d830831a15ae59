package domain

// CategoryFields holds the free-text description and the retailer-side category
// path shared by catalog records and new products
type CategoryFields struct {
	Item         string `json:"item"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Subcategory2 string `json:"subcategory2"`
	Subcategory3 string `json:"subcategory3"`
}

// CatalogRecord represents a curated reference entry with its assigned client hierarchy
type CatalogRecord struct {
	CategoryFields
	Key       string    `json:"key"`
	Channel   string    `json:"channel"`
	SKU       string    `json:"sku"`
	Hierarchy Hierarchy `json:"hierarchy"`
}

// NewProduct represents a competitor product not yet present in the reference catalog
type NewProduct struct {
	CategoryFields
	Channel string `json:"channel"`
	SKU     string `json:"sku"`
	UPC     string `json:"upc"`
	URL     string `json:"url"`
	Image   string `json:"image"`
}

// CompositeKey is the identity used to decide whether a product is already catalogued.
func CompositeKey(sku, channel string) string {
	return sku + channel
}

// Key returns the product's composite key
func (p NewProduct) Key() string {
	return CompositeKey(p.SKU, p.Channel)
}

// MatchResult represents the outcome of resolving one query against the catalog
type MatchResult struct {
	RecordID int  `json:"recordId"`
	Score    int  `json:"score"` // number of distinct query tokens shared with the record
	Found    bool `json:"found"`
}
