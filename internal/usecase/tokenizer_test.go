package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/databunker/hierarchy-matcher/internal/domain"
	"github.com/databunker/hierarchy-matcher/internal/infrastructure/cache"
)

func TestTokenizer_Tokens(t *testing.T) {
	tok := NewTokenizer(TokenizerConfig{})

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "lowercases and splits", text: "Tenis RUNNING  Mujer", want: []string{"tenis", "running", "mujer"}},
		{name: "dedupes keeping first occurrence", text: "balón Balón futbol", want: []string{"balón", "futbol"}},
		{name: "keeps punctuation attached", text: "Sudadera, talla-M", want: []string{"sudadera,", "talla-m"}},
		{name: "empty text", text: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Tokens(tt.text))
		})
	}
}

func TestTokenizer_Stemming(t *testing.T) {
	stems := cache.NewMemoryCache()
	tok := NewTokenizer(TokenizerConfig{EnableStemming: true, Cache: stems})

	first := tok.Tokens("zapatillas zapatilla")
	assert.Len(t, first, 1, "plural and singular stem to the same token")

	tok.Tokens("zapatillas")
	hits, _ := stems.Stats()
	assert.Positive(t, hits)
	assert.Equal(t, 2, stems.Size())
}

func TestTokenizer_StemmingDefaultsToSpanish(t *testing.T) {
	tok := NewTokenizer(TokenizerConfig{EnableStemming: true})
	assert.Equal(t, "spanish", tok.stemLanguage)
}

func TestCanonicalText(t *testing.T) {
	text := CanonicalText(domain.CategoryFields{
		Item:         "Tenis Pegasus",
		Category:     "Calzado",
		Subcategory:  "Running",
		Subcategory3: "Hombre",
	})
	assert.Equal(t, "Tenis Pegasus Calzado Running  Hombre", text)
}

func TestFoldForMatch(t *testing.T) {
	decomposed := "FU\u0301TBOL"
	assert.Equal(t, "f\u00fatbol", foldForMatch(decomposed))
	assert.Equal(t, "f\u00fatbol", foldForMatch("F\u00daTBOL"))
}
