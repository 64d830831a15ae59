package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchy_Key(t *testing.T) {
	tests := []struct {
		name string
		h    Hierarchy
		want string
	}{
		{name: "all levels", h: Hierarchy{"A", "B", "C", "D", "E", "F"}, want: "A-B-C-D-E-F"},
		{name: "trailing levels unset", h: Hierarchy{"FOOTWEAR", "MENS"}, want: "FOOTWEAR-MENS----"},
		{name: "level containing the delimiter", h: Hierarchy{"T-SHIRTS", "MENS"}, want: "T-SHIRTS-MENS----"},
		{name: "unset hierarchy", h: Hierarchy{}, want: "-----"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.h.Key())
			assert.Equal(t, tt.want == "-----", tt.h.IsZero())
		})
	}
}

func TestParseColumn(t *testing.T) {
	for _, c := range ProposalColumns() {
		got, err := ParseColumn(" " + c.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseColumn("Subcategoria3_Nike")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestProposalHeader(t *testing.T) {
	assert.Equal(t, []string{
		"Item_conc", "Canal", "SKU", "UPC", "Item", "URL SKU", "Image",
		"proposal_conc", "concatenated_adjusted",
		"Categoria_Nike", "Subcategoria_Nike", "Subcategoria2_Nike",
		"Subcatgory3_Nike", "Subcatgory4_Nike", "Subcatgory5_Nike",
	}, ProposalHeader())
}

func TestProposal_SetAndValue(t *testing.T) {
	var p Proposal

	for i, c := range ProposalColumns() {
		value := string(rune('a' + i))
		require.NoError(t, p.Set(c, value), c.String())
		assert.Equal(t, value, p.Value(c), c.String())
	}

	assert.Equal(t, "j-k-l-m-n-o", p.Hierarchy.Key())
	assert.Equal(t, "i", p.Row()[ColumnConcatenatedAdjusted], "stored, not derived from the levels")
	assert.Len(t, p.Row(), len(ProposalHeader()))

	p.RefreshAdjusted()
	assert.Equal(t, "j-k-l-m-n-o", p.Value(ColumnConcatenatedAdjusted))
}

func TestProposal_SetErrors(t *testing.T) {
	var p Proposal

	assert.ErrorIs(t, p.Set(Column(-1), "x"), ErrUnknownColumn)
	assert.ErrorIs(t, p.Set(columnCount, "x"), ErrUnknownColumn)
	assert.Equal(t, "Column(99)", Column(99).String())
}

func TestProposal_RefreshAdjusted(t *testing.T) {
	tests := []struct {
		name string
		p    Proposal
		want string
	}{
		{name: "matched", p: Proposal{Proposed: "A-B----", Hierarchy: Hierarchy{"A", "B"}}, want: "A-B----"},
		{name: "matched record with empty hierarchy", p: Proposal{Proposed: "-----"}, want: "-----"},
		{name: "no match", p: Proposal{Proposed: NoMatchSentinel}, want: ""},
		{name: "no match with a heuristic segment", p: Proposal{Proposed: NoMatchSentinel, Hierarchy: Hierarchy{"", "", "RUNNING"}}, want: "--RUNNING---"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.p.RefreshAdjusted()
			assert.Equal(t, tt.want, tt.p.ConcatenatedAdjusted)
		})
	}
}

func TestCompositeKey(t *testing.T) {
	p := NewProduct{SKU: "123", Channel: "Liverpool"}
	assert.Equal(t, "123Liverpool", p.Key())
	assert.Equal(t, CompositeKey("123", "Liverpool"), p.Key())
}
