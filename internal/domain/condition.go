package domain

// TermJoiner joins the two terms of a compound trigger word
const TermJoiner = "+"

// Override replaces the value of one proposal column
type Override struct {
	Column Column
	Value  string
}

// Condition is an externally supplied rule that patches or deletes proposal rows
// whose target column contains the trigger word.
type Condition struct {
	Column    Column
	Word      string   // trigger as written in the conditions table
	Terms     []string // trigger terms, all of which must be present (case-insensitive)
	Overrides []Override
	Delete    bool
}
