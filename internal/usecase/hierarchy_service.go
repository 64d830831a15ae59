package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/databunker/hierarchy-matcher/internal/domain"
)

// HierarchyServiceConfig holds configuration for the hierarchy service
type HierarchyServiceConfig struct {
	Client       string
	DeliveryDate string
	OwnChannel   string // catalog rows from this channel are the client's own and never match
	Tokenizer    TokenizerConfig

	// ProgressEvery logs matching progress every N products
	ProgressEvery int
}

// HierarchyService runs the delivery-cycle pipeline: index the catalog, propose a
// hierarchy for every new product, apply heuristic overrides and conditions,
// and hand the table to the sink.
type HierarchyService struct {
	catalog    domain.CatalogSource
	products   domain.ProductSource
	conditions domain.ConditionSource
	sink       domain.ProposalSink
	config     HierarchyServiceConfig
	logger     *zap.Logger
}

// NewHierarchyService creates a new hierarchy service with dependencies.
// conditions may be nil when the cycle has no conditions table.
func NewHierarchyService(
	catalog domain.CatalogSource,
	products domain.ProductSource,
	conditions domain.ConditionSource,
	sink domain.ProposalSink,
	config HierarchyServiceConfig,
	logger *zap.Logger,
) *HierarchyService {
	if config.ProgressEvery <= 0 {
		config.ProgressEvery = 500
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HierarchyService{
		catalog:    catalog,
		products:   products,
		conditions: conditions,
		sink:       sink,
		config:     config,
		logger:     logger,
	}
}

// PrepareCatalog drops the client's own channel and records without a category,
// returning the survivors densely re-addressed from 0. keys holds the composite
// key of every record outside the own channel, including those without a category.
func PrepareCatalog(records []domain.CatalogRecord, ownChannel string) (indexed []domain.CatalogRecord, keys map[string]struct{}) {
	keys = make(map[string]struct{}, len(records))
	indexed = make([]domain.CatalogRecord, 0, len(records))

	for _, r := range records {
		if ownChannel != "" && strings.Contains(r.Channel, ownChannel) {
			continue
		}
		keys[r.Key] = struct{}{}
		if strings.TrimSpace(r.Category) == "" {
			continue
		}
		indexed = append(indexed, r)
	}

	return indexed, keys
}

// SelectNewProducts keeps the products whose composite key is not catalogued
func SelectNewProducts(products []domain.NewProduct, keys map[string]struct{}) []domain.NewProduct {
	fresh := make([]domain.NewProduct, 0, len(products))
	for _, p := range products {
		if _, known := keys[p.Key()]; known {
			continue
		}
		fresh = append(fresh, p)
	}
	return fresh
}

// BuildMatcher loads and indexes the catalog
func (s *HierarchyService) BuildMatcher(ctx context.Context) (*MatchingService, map[string]struct{}, int, error) {
	records, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("load catalog: %w", err)
	}

	indexed, keys := PrepareCatalog(records, s.config.OwnChannel)
	if len(indexed) == 0 {
		return nil, nil, len(records), domain.ErrEmptyCatalog
	}

	s.logger.Info("catalog loaded",
		zap.Int("records", len(records)),
		zap.Int("indexable", len(indexed)),
		zap.String("own_channel", s.config.OwnChannel))

	tokenizer := NewTokenizer(s.config.Tokenizer)
	return NewMatchingService(indexed, tokenizer, s.logger.Named("match")), keys, len(records), nil
}

// Run executes the pipeline once. Any error aborts the run before the sink is written.
func (s *HierarchyService) Run(ctx context.Context) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{
		RunID:        uuid.NewString(),
		Client:       s.config.Client,
		DeliveryDate: s.config.DeliveryDate,
		StartedAt:    time.Now(),
	}
	log := s.logger.With(zap.String("run_id", summary.RunID))
	log.Info("run started", zap.String("client", s.config.Client), zap.String("delivery_date", s.config.DeliveryDate))

	matcher, keys, total, err := s.BuildMatcher(ctx)
	if err != nil {
		return nil, err
	}
	summary.CatalogRecords = total
	summary.CatalogIndexed = matcher.Index().Documents()
	summary.IndexedTokens = matcher.Index().Len()

	products, err := s.products.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	fresh := SelectNewProducts(products, keys)
	summary.Products = len(products)
	summary.AlreadyInCatalog = len(products) - len(fresh)
	summary.NewProducts = len(fresh)
	log.Info("new products selected", zap.Int("products", len(products)), zap.Int("new", len(fresh)))

	proposals := s.propose(log, matcher, fresh, summary)
	ApplyHeuristics(proposals)

	if s.conditions != nil {
		conditions, err := s.conditions.LoadConditions(ctx)
		if err != nil {
			return nil, fmt.Errorf("load conditions: %w", err)
		}
		engine := NewConditionsEngine(log.Named("conditions"))
		var report ConditionsReport
		proposals, report, err = engine.Apply(conditions, proposals)
		if err != nil {
			return nil, fmt.Errorf("apply conditions: %w", err)
		}
		summary.Conditions = len(conditions)
		summary.ConditionMatches = report.Touched
		summary.DeletedByCondition = report.Deleted
	}

	if err := s.sink.WriteProposals(ctx, proposals); err != nil {
		return nil, fmt.Errorf("write proposals: %w", err)
	}
	summary.Proposals = len(proposals)
	summary.FinishedAt = time.Now()

	log.Info("run finished",
		zap.Int("proposals", summary.Proposals),
		zap.Int("no_match", summary.NoMatch),
		zap.Int("deleted", summary.DeletedByCondition),
		zap.Duration("elapsed", summary.FinishedAt.Sub(summary.StartedAt)))

	return summary, nil
}

func (s *HierarchyService) propose(log *zap.Logger, matcher *MatchingService, products []domain.NewProduct, summary *domain.RunSummary) []domain.Proposal {
	progress := rate.Sometimes{First: 1, Every: s.config.ProgressEvery, Interval: 10 * time.Second}
	proposals := make([]domain.Proposal, 0, len(products))

	for i, product := range products {
		proposal, match := matcher.Propose(product)
		if !match.Found {
			summary.NoMatch++
			log.Warn("no catalog match, manual review required",
				zap.String("sku", product.SKU),
				zap.String("channel", product.Channel),
				zap.String("query", proposal.Query))
		}
		proposals = append(proposals, proposal)

		done := i + 1
		progress.Do(func() {
			log.Info("matching progress", zap.Int("done", done), zap.Int("total", len(products)))
		})
	}

	return proposals
}
