// Package viewmodels holds the render-ready shapes the templates consume.
// Everything here is plain strings and ints; all domain resolution happens
// in the mappers.
package viewmodels

// StatusChip is the colored status pill shown in the state panel and legend.
type StatusChip struct {
	Label      string
	Background string
	Border     string
	Text       string
}

// NavLink is one entry of the page header navigation.
type NavLink struct {
	Label string
	Href  string
}

// LegendItem is one row of the map legend.
type LegendItem struct {
	Label       string
	Description string
	Color       string
}

// SourceLink is a rendered source citation.
type SourceLink struct {
	Href  string
	Label string
}

// TimelineEntry is one formatted milestone in a state's history.
type TimelineEntry struct {
	Date   string
	Label  string
	Detail string
}

// Tile is one interactive cell of the map with every interaction color
// precomputed, so the client never derives colors itself.
type Tile struct {
	Abbr              string
	Name              string
	StatusLabel       string
	X                 int
	Y                 int
	LabelX            int
	LabelY            int
	Fill              string
	FillHover         string
	FillPressed       string
	FillSelected      string
	FillHoverSelected string
	Selected          bool
}

// StatePanel is the detail panel for the selected state.
type StatePanel struct {
	Abbr               string
	Name               string
	Chip               StatusChip
	Summary            string
	KeyLaws            []string
	RecentDevelopments string
	Sources            []SourceLink
	LastUpdated        string
	Timeline           []TimelineEntry
	RegulatoryBody     string
	Synthesized        bool
}

// FederalContext is the federal framework banner.
type FederalContext struct {
	Headline    string
	Summary     string
	KeyPoints   []string
	LastUpdated string
}

// FederalBill is one row of the pending federal legislation table.
type FederalBill struct {
	Name    string
	Chamber string
	Status  string
	Summary string
	Sources []SourceLink
}

// Stablecoin is one row of the state-issued stablecoin table.
type Stablecoin struct {
	State    string
	Name     string
	Symbol   string
	Status   string
	Detail   string
	Launched string
}

// Development is one row of the recent state developments list.
type Development struct {
	Date   string
	State  string
	Title  string
	Detail string
}

// IndexPage is the full page model.
type IndexPage struct {
	Title            string
	CSSPath          string
	JSPath           string
	HtmxSrc          string
	Nav              []NavLink
	Tiles            []Tile
	Legend           []LegendItem
	Selected         StatePanel
	Federal          *FederalContext
	Bills            []FederalBill
	Stablecoins      []Stablecoin
	Developments     []Development
	LastUpdated      string
	SectionMap       string
	SectionBills     string
	SectionCoins     string
	SectionActivity  string
	TileSize         int
	CellSize         int
	ViewBoxW         int
	ViewBoxH         int
}
