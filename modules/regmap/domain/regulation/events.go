package regulation

// DatasetLoadedEvent is published once after the embedded dataset is parsed.
type DatasetLoadedEvent struct {
	States       int
	Bills        int
	Stablecoins  int
	Developments int
	LatestUpdate string
}

// StateViewedEvent is published whenever a display record is resolved for a
// selection.
type StateViewedEvent struct {
	Abbr        string
	Synthesized bool
}
