package domain

import "context"

// CatalogSource loads the reference catalog
type CatalogSource interface {
	LoadCatalog(ctx context.Context) ([]CatalogRecord, error)
}

// ProductSource loads the consolidated competitor products of a delivery cycle
type ProductSource interface {
	LoadProducts(ctx context.Context) ([]NewProduct, error)
}

// ConditionSource loads the ordered override conditions
type ConditionSource interface {
	LoadConditions(ctx context.Context) ([]Condition, error)
}

// ProposalSink receives the final proposal table
type ProposalSink interface {
	WriteProposals(ctx context.Context, proposals []Proposal) error
}

// TokenCache memoizes token transformations for the duration of a run
type TokenCache interface {
	Get(key string) (string, bool)
	Set(key, value string)
}
