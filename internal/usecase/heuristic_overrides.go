package usecase

import (
	"strings"

	"github.com/databunker/hierarchy-matcher/internal/domain"
)

// Segment values written by the heuristic overrides
const (
	SegmentWomens        = "WOMENS"
	SegmentMens          = "MENS"
	SegmentKids          = "KIDS"
	SegmentOther         = "OTHER"
	SegmentFootball      = "FOOTBALL/SOCCER"
	SegmentBasketball    = "BASKETBALL"
	SegmentSkateboarding = "SKATEBOARDING"
	SegmentRunning       = "RUNNING"
)

// keywordRule yields value when any of its substrings occurs in the folded query
type keywordRule struct {
	substrings []string
	value      string
}

// segmentRules is evaluated in order; the first matching rule wins
type segmentRules []keywordRule

func (rules segmentRules) apply(foldedQuery, current string) string {
	for _, rule := range rules {
		for _, sub := range rule.substrings {
			if strings.Contains(foldedQuery, sub) {
				return rule.value
			}
		}
	}
	return current
}

// genderRules rewrite Subcategoria_Nike. WOMENS precedes MENS because "womens" contains "mens".
var genderRules = segmentRules{
	{substrings: []string{"mujer", "dama", "women", "femenil", "femenin"}, value: SegmentWomens},
	{substrings: []string{"hombre", "caballero", "mens", "unisex", "masculin"}, value: SegmentMens},
	{substrings: []string{"niño", "niña", "niños"}, value: SegmentKids},
}

// sportRules rewrite Subcategoria2_Nike. American football must be tested
// before the generic football rule.
var sportRules = segmentRules{
	{substrings: []string{"fútbol americano", "futbol americano", "football americano"}, value: SegmentOther},
	{substrings: []string{"fútbol", "futbol", "football"}, value: SegmentFootball},
	{substrings: []string{"basketball", "básquetbol", "basquetbol"}, value: SegmentBasketball},
	{substrings: []string{"skateboarding", "skate", "patinar"}, value: SegmentSkateboarding},
	{substrings: []string{"para correr"}, value: SegmentRunning},
	{substrings: []string{"pádel", "paddel", "padel", "páddel", "natación", "natacion", "bikini", "golf", "traje de baño"}, value: SegmentOther},
}

// MapGenderSegment returns the gender segment implied by query, or current when no rule applies
func MapGenderSegment(query, current string) string {
	return genderRules.apply(foldForMatch(query), current)
}

// MapSportSegment returns the sport segment implied by query, or current when no rule applies
func MapSportSegment(query, current string) string {
	return sportRules.apply(foldForMatch(query), current)
}

// ApplyHeuristicOverrides rewrites the gender and sport segments of p from its
// query text, then forces the gender segment to KIDS whenever the sport
// segment mentions KIDS. Rules read only the query, so reapplying is a no-op.
// The adjusted hierarchy key is recomputed last.
func ApplyHeuristicOverrides(p *domain.Proposal) {
	folded := foldForMatch(p.Query)
	p.Hierarchy[domain.LevelGender] = genderRules.apply(folded, p.Hierarchy[domain.LevelGender])
	p.Hierarchy[domain.LevelSport] = sportRules.apply(folded, p.Hierarchy[domain.LevelSport])

	if strings.Contains(strings.ToLower(p.Hierarchy[domain.LevelSport]), "kids") {
		p.Hierarchy[domain.LevelGender] = SegmentKids
	}
	p.RefreshAdjusted()
}

// ApplyHeuristics runs ApplyHeuristicOverrides over every proposal in place
func ApplyHeuristics(proposals []domain.Proposal) {
	for i := range proposals {
		ApplyHeuristicOverrides(&proposals[i])
	}
}
