package usecase

import "github.com/databunker/hierarchy-matcher/internal/domain"

// AssembleProposal builds the proposal row for product. A nil winner means the
// query matched nothing: the proposal carries the no-match sentinel and all six
// hierarchy levels stay unset.
func AssembleProposal(product domain.NewProduct, query string, winner *domain.CatalogRecord) domain.Proposal {
	p := domain.Proposal{
		Query:    query,
		Channel:  product.Channel,
		SKU:      product.SKU,
		UPC:      product.UPC,
		Item:     product.Item,
		URL:      product.URL,
		Image:    product.Image,
		Proposed: domain.NoMatchSentinel,
	}

	if winner != nil {
		p.Hierarchy = winner.Hierarchy
		p.Proposed = winner.Hierarchy.Key()
	}
	p.RefreshAdjusted()

	return p
}
