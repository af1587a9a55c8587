package regulation

import "github.com/stablewatch/regmap/modules/regmap/domain/status"

// DisplayRecord is the fully resolved, always-complete set of fields shown
// for the selected state, whether backed by a dataset entry or synthesized.
// No field is ever left empty-undefined.
type DisplayRecord struct {
	Abbr               string
	Name               string
	Status             status.CanonicalStatus
	Summary            string
	KeyLaws            []string
	RecentDevelopments string
	Sources            []string
	LastUpdated        string
	Timeline           []TimelineEntry
	RegulatoryBody     string
	// Synthesized marks records built for states absent from the dataset.
	Synthesized bool
}
