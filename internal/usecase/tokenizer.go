package usecase

import (
	"strings"

	"github.com/kljensen/snowball"
	"golang.org/x/text/unicode/norm"

	"github.com/databunker/hierarchy-matcher/internal/domain"
)

// TokenizerConfig holds configuration for the tokenizer
type TokenizerConfig struct {
	EnableStemming bool
	StemLanguage   string // any language supported by snowball, e.g. "spanish"
	Cache          domain.TokenCache
}

// Tokenizer turns canonical text into the distinct words used for indexing and lookup.
// Catalog and query text must go through the same Tokenizer.
type Tokenizer struct {
	stemLanguage string
	cache        domain.TokenCache
}

// NewTokenizer creates a tokenizer. Without stemming it splits lowercase text on whitespace.
func NewTokenizer(config TokenizerConfig) *Tokenizer {
	t := &Tokenizer{cache: config.Cache}
	if config.EnableStemming {
		t.stemLanguage = config.StemLanguage
		if t.stemLanguage == "" {
			t.stemLanguage = "spanish"
		}
	}
	return t
}

// Tokens returns the distinct tokens of text in first-seen order
func (t *Tokenizer) Tokens(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(words))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		token := t.stem(word)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

func (t *Tokenizer) stem(word string) string {
	if t.stemLanguage == "" {
		return word
	}
	if t.cache != nil {
		if cached, ok := t.cache.Get(word); ok {
			return cached
		}
	}

	stemmed, err := snowball.Stem(word, t.stemLanguage, true)
	if err != nil || stemmed == "" {
		stemmed = word
	}

	if t.cache != nil {
		t.cache.Set(word, stemmed)
	}
	return stemmed
}

// foldForMatch prepares text for case-insensitive substring rules.
// NFC keeps accented keywords like "fútbol" matching text exported in decomposed form.
func foldForMatch(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
