// Package region maps geographic boundary features onto state abbreviations.
// Boundary features identify themselves by a numeric FIPS code and a display
// name; both lookups are fixed tables.
package region

import "strconv"

type stateEntry struct {
	Fips string
	Abbr string
	Name string
}

// entries covers the 50 states, DC, and the territories, in FIPS order.
var entries = []stateEntry{
	{"01", "AL", "Alabama"},
	{"02", "AK", "Alaska"},
	{"04", "AZ", "Arizona"},
	{"05", "AR", "Arkansas"},
	{"06", "CA", "California"},
	{"08", "CO", "Colorado"},
	{"09", "CT", "Connecticut"},
	{"10", "DE", "Delaware"},
	{"11", "DC", "District of Columbia"},
	{"12", "FL", "Florida"},
	{"13", "GA", "Georgia"},
	{"15", "HI", "Hawaii"},
	{"16", "ID", "Idaho"},
	{"17", "IL", "Illinois"},
	{"18", "IN", "Indiana"},
	{"19", "IA", "Iowa"},
	{"20", "KS", "Kansas"},
	{"21", "KY", "Kentucky"},
	{"22", "LA", "Louisiana"},
	{"23", "ME", "Maine"},
	{"24", "MD", "Maryland"},
	{"25", "MA", "Massachusetts"},
	{"26", "MI", "Michigan"},
	{"27", "MN", "Minnesota"},
	{"28", "MS", "Mississippi"},
	{"29", "MO", "Missouri"},
	{"30", "MT", "Montana"},
	{"31", "NE", "Nebraska"},
	{"32", "NV", "Nevada"},
	{"33", "NH", "New Hampshire"},
	{"34", "NJ", "New Jersey"},
	{"35", "NM", "New Mexico"},
	{"36", "NY", "New York"},
	{"37", "NC", "North Carolina"},
	{"38", "ND", "North Dakota"},
	{"39", "OH", "Ohio"},
	{"40", "OK", "Oklahoma"},
	{"41", "OR", "Oregon"},
	{"42", "PA", "Pennsylvania"},
	{"44", "RI", "Rhode Island"},
	{"45", "SC", "South Carolina"},
	{"46", "SD", "South Dakota"},
	{"47", "TN", "Tennessee"},
	{"48", "TX", "Texas"},
	{"49", "UT", "Utah"},
	{"50", "VT", "Vermont"},
	{"51", "VA", "Virginia"},
	{"53", "WA", "Washington"},
	{"54", "WV", "West Virginia"},
	{"55", "WI", "Wisconsin"},
	{"56", "WY", "Wyoming"},
	{"60", "AS", "American Samoa"},
	{"66", "GU", "Guam"},
	{"69", "MP", "Northern Mariana Islands"},
	{"72", "PR", "Puerto Rico"},
	{"78", "VI", "U.S. Virgin Islands"},
}

var (
	fipsToAbbr = make(map[string]string, len(entries))
	nameToAbbr = make(map[string]string, len(entries))
	abbrToName = make(map[string]string, len(entries))
)

func init() {
	for _, e := range entries {
		fipsToAbbr[e.Fips] = e.Abbr
		nameToAbbr[e.Name] = e.Abbr
		abbrToName[e.Abbr] = e.Name
	}
}

// normalizeFips turns a boundary feature id into the two-character
// zero-padded form the FIPS table is keyed by. Non-numeric ids are returned
// as-is and will simply miss the table.
func normalizeFips(featureID string) string {
	n, err := strconv.Atoi(featureID)
	if err != nil {
		return featureID
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Resolve maps a boundary feature to a state abbreviation. The numeric code
// lookup wins; the name table is the fallback. A double miss means the
// feature has no interactive state association.
func Resolve(featureID, featureName string) (string, bool) {
	if abbr, ok := fipsToAbbr[normalizeFips(featureID)]; ok {
		return abbr, true
	}
	if abbr, ok := nameToAbbr[featureName]; ok {
		return abbr, true
	}
	return "", false
}

// Name returns the display name for an abbreviation.
func Name(abbr string) (string, bool) {
	name, ok := abbrToName[abbr]
	return name, ok
}

// AllAbbrs returns every known abbreviation in FIPS order.
func AllAbbrs() []string {
	abbrs := make([]string, 0, len(entries))
	for _, e := range entries {
		abbrs = append(abbrs, e.Abbr)
	}
	return abbrs
}
