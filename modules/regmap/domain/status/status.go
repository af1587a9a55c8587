// Package status defines the closed set of regulatory-posture categories a
// state can be displayed under, and the normalization from raw dataset values
// into that set.
package status

// CanonicalStatus is the fixed, finite set of regulatory-posture categories
// used for display and coloring.
type CanonicalStatus string

const (
	ClearFriendly    CanonicalStatus = "clear_friendly"
	ClearRestrictive CanonicalStatus = "clear_restrictive"
	Pending          CanonicalStatus = "pending"
	FederalDefault   CanonicalStatus = "federal_default"
)

// All returns every canonical status in legend order.
func All() []CanonicalStatus {
	return []CanonicalStatus{ClearFriendly, Pending, ClearRestrictive, FederalDefault}
}

// Meta is the static per-status descriptor the view renders from. The colors
// are the base map fill plus the three chip colors.
type Meta struct {
	Label          string
	Description    string
	BaseColor      string
	ChipBackground string
	ChipBorder     string
	ChipText       string
}

var metaTable = map[CanonicalStatus]Meta{
	ClearFriendly: {
		Label:          "Clear framework, permissive",
		Description:    "Enacted a stablecoin-specific framework that permits issuance or custody under defined conditions.",
		BaseColor:      "#16a34a",
		ChipBackground: "#dcfce7",
		ChipBorder:     "#86efac",
		ChipText:       "#166534",
	},
	ClearRestrictive: {
		Label:          "Clear framework, restrictive",
		Description:    "Enacted rules that materially restrict stablecoin issuance or use.",
		BaseColor:      "#dc2626",
		ChipBackground: "#fee2e2",
		ChipBorder:     "#fca5a5",
		ChipText:       "#991b1b",
	},
	Pending: {
		Label:          "Legislation pending",
		Description:    "A stablecoin bill or rulemaking is moving but has not taken effect.",
		BaseColor:      "#d97706",
		ChipBackground: "#fef3c7",
		ChipBorder:     "#fcd34d",
		ChipText:       "#92400e",
	},
	FederalDefault: {
		Label:          "Federal framework applies",
		Description:    "No state-specific stablecoin framework identified; federal law and generic money-transmission rules govern.",
		BaseColor:      "#64748b",
		ChipBackground: "#f1f5f9",
		ChipBorder:     "#cbd5e1",
		ChipText:       "#334155",
	},
}

// Meta returns the static descriptor for the status. Unknown values map to
// the federal-default descriptor so callers never render from a zero Meta.
func (s CanonicalStatus) Meta() Meta {
	if m, ok := metaTable[s]; ok {
		return m
	}
	return metaTable[FederalDefault]
}

// legacyAliases maps status values from earlier dataset revisions onto the
// canonical set.
var legacyAliases = map[string]CanonicalStatus{
	"friendly":    ClearFriendly,
	"restrictive": ClearRestrictive,
	"none":        FederalDefault,
	"unclear":     Pending,
}

// overrides forces a status for a state regardless of what the dataset
// stores. Used when the stored value lags a development we already track.
var overrides = map[string]CanonicalStatus{
	// FL enacted a framework but the implementing rules are still in
	// comment period; show it as pending until they take effect.
	"FL": Pending,
}

// IsCanonical reports whether raw is already a member of the canonical set.
func IsCanonical(raw string) bool {
	_, ok := metaTable[CanonicalStatus(raw)]
	return ok
}

// Normalize maps a raw dataset status (possibly a legacy alias, possibly
// absent) to exactly one canonical status. An override for the state wins
// unconditionally; unknown values fail safe to FederalDefault. Pure and
// idempotent: a canonical input is returned unchanged.
func Normalize(raw string, stateAbbr string) CanonicalStatus {
	if forced, ok := overrides[stateAbbr]; ok {
		return forced
	}
	if raw == "" {
		return FederalDefault
	}
	if IsCanonical(raw) {
		return CanonicalStatus(raw)
	}
	if mapped, ok := legacyAliases[raw]; ok {
		return mapped
	}
	return FederalDefault
}

// Overridden reports whether the state has a forced status entry.
func Overridden(stateAbbr string) bool {
	_, ok := overrides[stateAbbr]
	return ok
}
