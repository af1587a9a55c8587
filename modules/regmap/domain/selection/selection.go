// Package selection models which single state the page currently shows.
// Selection is an explicit value passed through the transition function, not
// ambient state, so it can be tested without a request context.
package selection

// DefaultState seeds the initial selection.
const DefaultState = "NY"

// Selection holds exactly one selected state abbreviation.
type Selection struct {
	abbr string
}

// Initial returns the seed selection.
func Initial() Selection {
	return Selection{abbr: DefaultState}
}

// From builds a selection from an externally supplied abbreviation (query
// parameter, list click). Empty input falls back to the initial selection.
func From(abbr string) Selection {
	if abbr == "" {
		return Initial()
	}
	return Selection{abbr: abbr}
}

// Select is the sole transition. It is unconditional: abbreviations absent
// from the dataset are legal and resolve to a synthesized display record
// downstream.
func (s Selection) Select(abbr string) Selection {
	return Selection{abbr: abbr}
}

// Abbr returns the selected abbreviation.
func (s Selection) Abbr() string {
	return s.abbr
}
