package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databunker/hierarchy-matcher/internal/domain"
)

func proposalWith(sku string, h domain.Hierarchy, query string) domain.Proposal {
	return domain.Proposal{SKU: sku, Query: query, Hierarchy: h}
}

func skus(proposals []domain.Proposal) []string {
	out := make([]string, len(proposals))
	for i := range proposals {
		out[i] = proposals[i].SKU
	}
	return out
}

func TestConditionsEngine_CompoundTrigger(t *testing.T) {
	engine := NewConditionsEngine(nil)
	proposals := []domain.Proposal{
		proposalWith("1", domain.Hierarchy{"FOOTWEAR", "futbol americano infantil", "FOOTBALL/SOCCER"}, ""),
		proposalWith("2", domain.Hierarchy{"FOOTWEAR", "futbol", "FOOTBALL/SOCCER"}, ""),
		proposalWith("3", domain.Hierarchy{"FOOTWEAR", "Americano FUTBOL", "FOOTBALL/SOCCER"}, ""),
	}
	conditions := []domain.Condition{{
		Column:    domain.ColumnGender,
		Word:      "futbol+americano",
		Terms:     []string{"futbol", "americano"},
		Overrides: []domain.Override{{Column: domain.ColumnSport, Value: "OTHER"}},
	}}

	got, report, err := engine.Apply(conditions, proposals)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "OTHER", got[0].Hierarchy[domain.LevelSport])
	assert.Equal(t, "FOOTBALL/SOCCER", got[1].Hierarchy[domain.LevelSport], "a row with only one term is untouched")
	assert.Equal(t, "OTHER", got[2].Hierarchy[domain.LevelSport], "term order and case do not matter")
	assert.Equal(t, 2, report.Touched)
	assert.Equal(t, 0, report.Deleted)
}

func TestConditionsEngine_DeletesExactlyMatchingRows(t *testing.T) {
	engine := NewConditionsEngine(nil)
	proposals := []domain.Proposal{
		proposalWith("1", domain.Hierarchy{}, "tenis muestra"),
		proposalWith("2", domain.Hierarchy{}, "tenis running"),
		proposalWith("3", domain.Hierarchy{}, "MUESTRA gratis"),
		proposalWith("4", domain.Hierarchy{}, "balón"),
	}
	conditions := []domain.Condition{{
		Column: domain.ColumnQuery,
		Word:   "muestra",
		Terms:  []string{"muestra"},
		Delete: true,
	}}

	got, report, err := engine.Apply(conditions, proposals)
	require.NoError(t, err)

	assert.Equal(t, []string{"2", "4"}, skus(got), "survivors keep their order")
	assert.Equal(t, 2, report.Deleted)
}

func TestConditionsEngine_SequentialConditions(t *testing.T) {
	engine := NewConditionsEngine(nil)
	proposals := []domain.Proposal{
		proposalWith("1", domain.Hierarchy{"APPAREL", "MENS", "LIFESTYLE"}, "sudadera golf"),
		proposalWith("2", domain.Hierarchy{"APPAREL", "MENS", "LIFESTYLE"}, "playera golf"),
	}
	conditions := []domain.Condition{
		{
			// later conditions see earlier overrides
			Column:    domain.ColumnQuery,
			Word:      "golf",
			Terms:     []string{"golf"},
			Overrides: []domain.Override{{Column: domain.ColumnSport, Value: "GOLF"}},
		},
		{
			Column: domain.ColumnSport,
			Word:   "golf",
			Terms:  []string{"golf"},
			Overrides: []domain.Override{
				{Column: domain.ColumnCategory, Value: "GOLF APPAREL"},
				{Column: domain.ColumnGender, Value: ""},
			},
		},
		{
			Column: domain.ColumnQuery,
			Word:   "sudadera",
			Terms:  []string{"sudadera"},
			Delete: true,
		},
		{
			// the deleted row must not match again
			Column:    domain.ColumnQuery,
			Word:      "sudadera",
			Terms:     []string{"sudadera"},
			Overrides: []domain.Override{{Column: domain.ColumnCategory, Value: "NEVER"}},
		},
		{
			Column: domain.ColumnQuery,
			Word:   "",
		},
	}

	got, report, err := engine.Apply(conditions, proposals)
	require.NoError(t, err)

	require.Equal(t, []string{"2"}, skus(got))
	assert.Equal(t, domain.Hierarchy{"GOLF APPAREL", "MENS", "GOLF"}, got[0].Hierarchy, "empty override values are ignored")
	assert.Equal(t, 4, report.Evaluated)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 5, report.Touched)
	assert.Equal(t, 1, report.Deleted)
}

func TestConditionsEngine_OverrideThenDelete(t *testing.T) {
	engine := NewConditionsEngine(nil)
	proposals := []domain.Proposal{proposalWith("1", domain.Hierarchy{}, "x")}
	conditions := []domain.Condition{{
		Column:    domain.ColumnQuery,
		Terms:     []string{"x"},
		Overrides: []domain.Override{{Column: domain.ColumnURL, Value: "u"}},
		Delete:    true,
	}}

	got, _, err := engine.Apply(conditions, proposals)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "u", proposals[0].URL, "overrides land before the row is dropped")
}

func TestConditionsEngine_AdjustedKey(t *testing.T) {
	engine := NewConditionsEngine(nil)
	proposals := []domain.Proposal{
		proposalWith("1", domain.Hierarchy{"EQUIPMENT", "UNISEX", "OTHER"}, "gorra"),
		proposalWith("2", domain.Hierarchy{"EQUIPMENT", "UNISEX", "OTHER"}, "balón golf"),
	}
	ApplyHeuristics(proposals)

	conditions := []domain.Condition{
		{
			Column:    domain.ColumnQuery,
			Word:      "gorra",
			Terms:     []string{"gorra"},
			Overrides: []domain.Override{{Column: domain.ColumnConcatenatedAdjusted, Value: "ACCESSORIES-UNISEX-OTHER---"}},
		},
		{
			Column:    domain.ColumnQuery,
			Word:      "golf",
			Terms:     []string{"golf"},
			Overrides: []domain.Override{{Column: domain.ColumnCategory, Value: "GOLF"}},
		},
		{
			// matches on the key fixed after the heuristics
			Column:    domain.ColumnConcatenatedAdjusted,
			Word:      "equipment",
			Terms:     []string{"equipment"},
			Overrides: []domain.Override{{Column: domain.ColumnSubcategory3, Value: "BALLS"}},
		},
	}

	got, _, err := engine.Apply(conditions, proposals)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "ACCESSORIES-UNISEX-OTHER---", got[0].Value(domain.ColumnConcatenatedAdjusted))
	assert.Equal(t, "", got[0].Hierarchy[domain.LevelSubcategory3])

	assert.Equal(t, domain.Hierarchy{"GOLF", "UNISEX", "OTHER", "BALLS"}, got[1].Hierarchy)
	assert.Equal(t, "EQUIPMENT-UNISEX-OTHER---", got[1].ConcatenatedAdjusted, "level overrides do not flow into the adjusted key")
}

func TestConditionsEngine_UnsetValuesNeverMatch(t *testing.T) {
	engine := NewConditionsEngine(nil)
	proposals := []domain.Proposal{proposalWith("1", domain.Hierarchy{}, "tenis")}
	conditions := []domain.Condition{{Column: domain.ColumnGender, Terms: []string{" "}, Delete: true}}

	got, _, err := engine.Apply(conditions, proposals)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestConditionsEngine_Errors(t *testing.T) {
	tests := []struct {
		name      string
		condition domain.Condition
		wantErr   error
	}{
		{
			name:      "unknown target column",
			condition: domain.Condition{Column: domain.Column(99), Word: "x", Terms: []string{"x"}},
			wantErr:   domain.ErrUnknownColumn,
		},
		{
			name: "unknown override column",
			condition: domain.Condition{Column: domain.ColumnQuery, Word: "x", Terms: []string{"x"},
				Overrides: []domain.Override{{Column: domain.Column(-1), Value: "v"}}},
			wantErr: domain.ErrUnknownColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewConditionsEngine(nil)
			proposals := []domain.Proposal{proposalWith("1", domain.Hierarchy{}, "x")}

			_, _, err := engine.Apply([]domain.Condition{tt.condition}, proposals)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
