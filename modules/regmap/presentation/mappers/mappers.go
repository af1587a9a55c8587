// Package mappers converts domain records into viewmodels. Formatting here
// is fail-soft: bad input renders as itself, never as an error.
package mappers

import (
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en_US"

	"github.com/stablewatch/regmap/modules/regmap/domain/regulation"
	"github.com/stablewatch/regmap/modules/regmap/infrastructure/geo"
	"github.com/stablewatch/regmap/modules/regmap/presentation/viewmodels"
	"github.com/stablewatch/regmap/pkg/ui"
)

var dateTranslator locales.Translator = en_US.New()

// FormatDate renders an ISO date in long form, e.g. "February 16, 2026".
// Empty input renders as "N/A"; unparseable input is passed through so a
// malformed dataset date still shows something.
func FormatDate(iso string) string {
	if iso == "" {
		return "N/A"
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return dateTranslator.FmtDateLong(t)
}

// SourceLabel shortens a source URL to its host and path for display. Inputs
// that do not parse as absolute URLs are returned unchanged.
func SourceLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	label := u.Host + u.Path
	return strings.TrimSuffix(label, "/")
}

// StatusChip builds the chip for a canonical status.
func StatusChip(rec regulation.DisplayRecord) viewmodels.StatusChip {
	meta := rec.Status.Meta()
	return viewmodels.StatusChip{
		Label:      meta.Label,
		Background: meta.ChipBackground,
		Border:     meta.ChipBorder,
		Text:       meta.ChipText,
	}
}

// StatePanel maps a display record onto the detail panel viewmodel.
func StatePanel(rec regulation.DisplayRecord) viewmodels.StatePanel {
	sources := make([]viewmodels.SourceLink, 0, len(rec.Sources))
	for _, src := range rec.Sources {
		sources = append(sources, viewmodels.SourceLink{
			Href:  src,
			Label: SourceLabel(src),
		})
	}
	timeline := make([]viewmodels.TimelineEntry, 0, len(rec.Timeline))
	for _, entry := range rec.Timeline {
		timeline = append(timeline, viewmodels.TimelineEntry{
			Date:   FormatDate(entry.Date),
			Label:  entry.Label,
			Detail: entry.Detail,
		})
	}
	return viewmodels.StatePanel{
		Abbr:               rec.Abbr,
		Name:               rec.Name,
		Chip:               StatusChip(rec),
		Summary:            rec.Summary,
		KeyLaws:            rec.KeyLaws,
		RecentDevelopments: rec.RecentDevelopments,
		Sources:            sources,
		LastUpdated:        FormatDate(rec.LastUpdated),
		Timeline:           timeline,
		RegulatoryBody:     rec.RegulatoryBody,
		Synthesized:        rec.Synthesized,
	}
}

// Tile maps a grid tile and its record onto the map cell viewmodel, with
// every interaction color derived from the status base color up front.
func Tile(t geo.Tile, rec regulation.DisplayRecord, cellSize, tileSize int, selected bool) viewmodels.Tile {
	meta := rec.Status.Meta()
	base := meta.BaseColor
	x := t.Col * cellSize
	y := t.Row * cellSize
	return viewmodels.Tile{
		Abbr:              t.Abbr,
		Name:              t.Name,
		StatusLabel:       meta.Label,
		X:                 x,
		Y:                 y,
		LabelX:            x + tileSize/2,
		LabelY:            y + tileSize/2,
		Fill:              base,
		FillHover:         ui.Shift(base, ui.ShiftHover),
		FillPressed:       ui.Shift(base, ui.ShiftPressed),
		FillSelected:      ui.Shift(base, ui.ShiftSelected),
		FillHoverSelected: ui.Shift(base, ui.ShiftHoverSelected),
		Selected:          selected,
	}
}

// FederalContext maps the federal banner; nil in, nil out.
func FederalContext(fc *regulation.FederalContext) *viewmodels.FederalContext {
	if fc == nil {
		return nil
	}
	return &viewmodels.FederalContext{
		Headline:    fc.Headline,
		Summary:     fc.Summary,
		KeyPoints:   fc.KeyPoints,
		LastUpdated: FormatDate(fc.LastUpdated),
	}
}

func FederalBills(bills []regulation.FederalBill) []viewmodels.FederalBill {
	out := make([]viewmodels.FederalBill, 0, len(bills))
	for _, b := range bills {
		sources := make([]viewmodels.SourceLink, 0, len(b.Sources))
		for _, src := range b.Sources {
			sources = append(sources, viewmodels.SourceLink{Href: src, Label: SourceLabel(src)})
		}
		out = append(out, viewmodels.FederalBill{
			Name:    b.Name,
			Chamber: b.Chamber,
			Status:  b.Status,
			Summary: b.Summary,
			Sources: sources,
		})
	}
	return out
}

func Stablecoins(coins []regulation.StateIssuedStablecoin) []viewmodels.Stablecoin {
	out := make([]viewmodels.Stablecoin, 0, len(coins))
	for _, c := range coins {
		out = append(out, viewmodels.Stablecoin{
			State:    c.State,
			Name:     c.Name,
			Symbol:   c.Symbol,
			Status:   c.Status,
			Detail:   c.Detail,
			Launched: FormatDate(c.Launched),
		})
	}
	return out
}

func Developments(devs []regulation.Development) []viewmodels.Development {
	out := make([]viewmodels.Development, 0, len(devs))
	for _, d := range devs {
		out = append(out, viewmodels.Development{
			Date:   FormatDate(d.Date),
			State:  d.State,
			Title:  d.Title,
			Detail: d.Detail,
		})
	}
	return out
}
