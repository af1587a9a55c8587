package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablewatch/regmap/modules/regmap/domain/regulation"
	"github.com/stablewatch/regmap/modules/regmap/domain/status"
	"github.com/stablewatch/regmap/modules/regmap/infrastructure/geo"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "February 16, 2026", FormatDate("2026-02-16"))
	assert.Equal(t, "August 20, 2025", FormatDate("2025-08-20"))
	assert.Equal(t, "N/A", FormatDate(""))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
	assert.Equal(t, "2026-13-45", FormatDate("2026-13-45"))
}

func TestSourceLabel(t *testing.T) {
	assert.Equal(t,
		"www.dfs.ny.gov/virtual_currency_businesses",
		SourceLabel("https://www.dfs.ny.gov/virtual_currency_businesses"))
	assert.Equal(t, "stabletoken.wyo.gov", SourceLabel("https://stabletoken.wyo.gov"))
	assert.Equal(t, "dfr.oregon.gov", SourceLabel("https://dfr.oregon.gov/"))
	assert.Equal(t, "plain text", SourceLabel("plain text"))
	assert.Equal(t, "", SourceLabel(""))
}

func TestStatePanel(t *testing.T) {
	panel := StatePanel(regulation.DisplayRecord{
		Abbr:        "NY",
		Name:        "New York",
		Status:      status.ClearFriendly,
		Summary:     "summary",
		KeyLaws:     []string{"Part 200"},
		Sources:     []string{"https://www.dfs.ny.gov/virtual_currency_businesses"},
		LastUpdated: "2026-02-16",
		Timeline: []regulation.TimelineEntry{
			{Date: "2015-06-24", Label: "BitLicense adopted", Detail: "d"},
		},
	})

	assert.Equal(t, "Clear framework, permissive", panel.Chip.Label)
	assert.Equal(t, "#dcfce7", panel.Chip.Background)
	assert.Equal(t, "February 16, 2026", panel.LastUpdated)
	require.Len(t, panel.Sources, 1)
	assert.Equal(t, "www.dfs.ny.gov/virtual_currency_businesses", panel.Sources[0].Label)
	require.Len(t, panel.Timeline, 1)
	assert.Equal(t, "June 24, 2015", panel.Timeline[0].Date)
}

func TestTile_InteractionColors(t *testing.T) {
	tile := Tile(
		geo.Tile{Abbr: "NY", Name: "New York", Row: 2, Col: 9},
		regulation.DisplayRecord{Abbr: "NY", Status: status.ClearFriendly},
		64, 58,
		true,
	)

	assert.Equal(t, 576, tile.X)
	assert.Equal(t, 128, tile.Y)
	assert.Equal(t, 605, tile.LabelX)
	assert.Equal(t, 157, tile.LabelY)
	assert.True(t, tile.Selected)
	assert.Equal(t, "#16a34a", tile.Fill)
	// Hover, selected, and pressed fills are progressively lighter.
	assert.NotEqual(t, tile.Fill, tile.FillHover)
	assert.NotEqual(t, tile.FillHover, tile.FillSelected)
	assert.NotEqual(t, tile.FillSelected, tile.FillPressed)
}

func TestTile_BlackBaseShifts(t *testing.T) {
	rec := regulation.DisplayRecord{Abbr: "XX", Status: status.CanonicalStatus("bogus")}
	tile := Tile(geo.Tile{Abbr: "XX"}, rec, 64, 58, false)
	// Unknown status falls back to the federal-default descriptor.
	assert.Equal(t, "#64748b", tile.Fill)
}

func TestFederalContext_Nil(t *testing.T) {
	assert.Nil(t, FederalContext(nil))
}
