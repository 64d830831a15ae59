package usecase

// InvertedIndex maps a token to the ids of the catalog records whose canonical
// text contains it. Ids are dense positions 0..N-1 and posting lists are
// ascending. It is immutable once built.
type InvertedIndex struct {
	postings  map[string][]int
	documents int
}

// BuildInvertedIndex indexes texts by position using tokenizer
func BuildInvertedIndex(texts []string, tokenizer *Tokenizer) *InvertedIndex {
	idx := &InvertedIndex{
		postings:  make(map[string][]int),
		documents: len(texts),
	}

	// Tokens are distinct per text and ids are visited in order, so every
	// posting list stays sorted and duplicate-free.
	for id, text := range texts {
		for _, token := range tokenizer.Tokens(text) {
			idx.postings[token] = append(idx.postings[token], id)
		}
	}

	return idx
}

// Postings returns the ids indexed under token, or nil when the token is absent.
// The returned slice must not be modified.
func (idx *InvertedIndex) Postings(token string) []int {
	return idx.postings[token]
}

// Contains reports whether id is in the posting list of token
func (idx *InvertedIndex) Contains(token string, id int) bool {
	for _, p := range idx.postings[token] {
		if p == id {
			return true
		}
		if p > id {
			return false
		}
	}
	return false
}

// Len returns the number of distinct tokens
func (idx *InvertedIndex) Len() int {
	return len(idx.postings)
}

// Documents returns the number of indexed texts
func (idx *InvertedIndex) Documents() int {
	return idx.documents
}
