package domain

import "time"

// RunSummary records what one delivery-cycle run did
type RunSummary struct {
	RunID        string    `yaml:"run_id"`
	Client       string    `yaml:"client"`
	DeliveryDate string    `yaml:"delivery_date"`
	StartedAt    time.Time `yaml:"started_at"`
	FinishedAt   time.Time `yaml:"finished_at"`

	CatalogRecords   int `yaml:"catalog_records"`
	CatalogIndexed   int `yaml:"catalog_indexed"`
	IndexedTokens    int `yaml:"indexed_tokens"`
	Products         int `yaml:"products"`
	AlreadyInCatalog int `yaml:"already_in_catalog"`
	NewProducts      int `yaml:"new_products"`
	NoMatch          int `yaml:"no_match"`

	Conditions         int `yaml:"conditions"`
	ConditionMatches   int `yaml:"condition_matches"`
	DeletedByCondition int `yaml:"deleted_by_condition"`
	Proposals          int `yaml:"proposals"`
}
