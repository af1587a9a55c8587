// Package regulation holds the immutable dataset entities the map page
// projects from. The dataset is loaded once at startup and never mutated.
package regulation

// TimelineEntry is one dated step in a state's regulatory history.
type TimelineEntry struct {
	Date   string
	Label  string
	Detail string
}

// StateRecord is the raw per-state entry as stored in the dataset. Status is
// kept raw here; normalization happens at display time.
type StateRecord struct {
	Name               string
	Status             string
	Summary            string
	KeyLaws            []string
	RecentDevelopments string
	Sources            []string
	LastUpdated        string
	Timeline           []TimelineEntry
	RegulatoryBody     string
}

// FederalContext summarizes the federal baseline shown above the map.
type FederalContext struct {
	Headline    string
	Summary     string
	KeyPoints   []string
	LastUpdated string
}

// FederalBill is one pending federal measure.
type FederalBill struct {
	Name    string
	Chamber string
	Status  string
	Summary string
	Sources []string
}

// StateIssuedStablecoin is a token issued or chartered under state authority.
type StateIssuedStablecoin struct {
	State    string
	Name     string
	Symbol   string
	Status   string
	Detail   string
	Launched string
}

// Development is one dated state-level item for the developments list.
type Development struct {
	Date   string
	State  string
	Title  string
	Detail string
}

// Dataset is the top-level document. All fields are optional in the source
// document; consumers must tolerate nil/empty values.
type Dataset struct {
	FederalContext         *FederalContext
	States                 map[string]StateRecord
	StateIssuedStablecoins []StateIssuedStablecoin
	PendingFederalBills    []FederalBill
	MajorStateDevelopments []Development
}

// Repository reads the loaded dataset. There are no writes.
type Repository interface {
	Dataset() *Dataset
	State(abbr string) (StateRecord, bool)
	// LatestUpdate returns the max LastUpdated across all state records,
	// or a fixed fallback when none carries one.
	LatestUpdate() string
}
