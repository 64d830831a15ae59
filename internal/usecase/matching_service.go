package usecase

import (
	"go.uber.org/zap"

	"github.com/databunker/hierarchy-matcher/internal/domain"
)

// MatchingService resolves free-text product descriptions to the catalog record
// sharing the most distinct words with them
type MatchingService struct {
	catalog   []domain.CatalogRecord
	index     *InvertedIndex
	tokenizer *Tokenizer
	logger    *zap.Logger
}

// NewMatchingService indexes catalog by position. The catalog must already be
// filtered; record ids are its slice positions.
func NewMatchingService(catalog []domain.CatalogRecord, tokenizer *Tokenizer, logger *zap.Logger) *MatchingService {
	if logger == nil {
		logger = zap.NewNop()
	}

	texts := make([]string, len(catalog))
	for i := range catalog {
		texts[i] = CanonicalText(catalog[i].CategoryFields)
	}

	index := BuildInvertedIndex(texts, tokenizer)
	logger.Info("catalog indexed",
		zap.Int("records", index.Documents()),
		zap.Int("tokens", index.Len()))

	return &MatchingService{
		catalog:   catalog,
		index:     index,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// FindBestMatch scores every catalog record by the number of distinct query
// tokens it shares and returns the highest scorer. Ties go to the lowest record id.
// Found is false when no query token is indexed.
func (s *MatchingService) FindBestMatch(query string) domain.MatchResult {
	counts := make(map[int]int)
	for _, token := range s.tokenizer.Tokens(query) {
		for _, id := range s.index.Postings(token) {
			counts[id]++
		}
	}

	if len(counts) == 0 {
		s.logger.Debug("no indexed token in query", zap.String("query", query))
		return domain.MatchResult{RecordID: -1}
	}

	best := domain.MatchResult{RecordID: -1, Found: true}
	for id, count := range counts {
		if count > best.Score || (count == best.Score && id < best.RecordID) {
			best.RecordID = id
			best.Score = count
		}
	}

	s.logger.Debug("best match",
		zap.String("query", query),
		zap.Int("record", best.RecordID),
		zap.Int("score", best.Score),
		zap.Int("candidates", len(counts)))

	return best
}

// ResolveKey returns the hierarchy key of the best match, or domain.NoMatchSentinel
func (s *MatchingService) ResolveKey(query string) string {
	match := s.FindBestMatch(query)
	if !match.Found {
		return domain.NoMatchSentinel
	}
	return s.catalog[match.RecordID].Hierarchy.Key()
}

// Record returns the catalog record with the given id
func (s *MatchingService) Record(id int) (domain.CatalogRecord, bool) {
	if id < 0 || id >= len(s.catalog) {
		return domain.CatalogRecord{}, false
	}
	return s.catalog[id], true
}

// Propose resolves product and assembles its proposal row
func (s *MatchingService) Propose(product domain.NewProduct) (domain.Proposal, domain.MatchResult) {
	query := CanonicalText(product.CategoryFields)
	match := s.FindBestMatch(query)

	var winner *domain.CatalogRecord
	if match.Found {
		winner = &s.catalog[match.RecordID]
	}
	return AssembleProposal(product, query, winner), match
}

// Index exposes the underlying inverted index
func (s *MatchingService) Index() *InvertedIndex {
	return s.index
}
