// Package dataset loads the embedded regulation document and exposes it as
// the regulation.Repository.
package dataset

import (
	_ "embed"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/stablewatch/regmap/modules/regmap/domain/regulation"
	"github.com/stablewatch/regmap/modules/regmap/infrastructure/dataset/models"
)

//go:embed data/regulation.json
var regulationJSON []byte

// fallbackLastUpdated is used when no state record carries a lastUpdated
// value at all.
const fallbackLastUpdated = "2026-02-01"

type DatasetRepository struct {
	data         *regulation.Dataset
	latestUpdate string
}

var _ regulation.Repository = (*DatasetRepository)(nil)

// NewRegulationRepository parses the embedded document once. A parse failure
// is the one fatal error class in this module; it surfaces before the server
// starts listening.
func NewRegulationRepository() (*DatasetRepository, error) {
	return newFromBytes(regulationJSON)
}

func newFromBytes(raw []byte) (*DatasetRepository, error) {
	var doc models.Dataset
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing regulation dataset")
	}
	data := toDomain(&doc)
	return &DatasetRepository{
		data:         data,
		latestUpdate: latestUpdate(data),
	}, nil
}

func (r *DatasetRepository) Dataset() *regulation.Dataset {
	return r.data
}

func (r *DatasetRepository) State(abbr string) (regulation.StateRecord, bool) {
	rec, ok := r.data.States[abbr]
	return rec, ok
}

func (r *DatasetRepository) LatestUpdate() string {
	return r.latestUpdate
}

// latestUpdate is the max over all present lastUpdated values. ISO dates
// order lexicographically, so string comparison is enough.
func latestUpdate(data *regulation.Dataset) string {
	latest := ""
	for _, rec := range data.States {
		if rec.LastUpdated > latest {
			latest = rec.LastUpdated
		}
	}
	if latest == "" {
		return fallbackLastUpdated
	}
	return latest
}

func toDomain(doc *models.Dataset) *regulation.Dataset {
	out := &regulation.Dataset{
		States: make(map[string]regulation.StateRecord, len(doc.States)),
	}
	if doc.FederalContext != nil {
		out.FederalContext = &regulation.FederalContext{
			Headline:    doc.FederalContext.Headline,
			Summary:     doc.FederalContext.Summary,
			KeyPoints:   doc.FederalContext.KeyPoints,
			LastUpdated: doc.FederalContext.LastUpdated,
		}
	}
	for abbr, rec := range doc.States {
		out.States[abbr] = toDomainState(rec)
	}
	for _, coin := range doc.StateIssuedStablecoins {
		out.StateIssuedStablecoins = append(out.StateIssuedStablecoins, regulation.StateIssuedStablecoin{
			State:    coin.State,
			Name:     coin.Name,
			Symbol:   coin.Symbol,
			Status:   coin.Status,
			Detail:   coin.Detail,
			Launched: coin.Launched,
		})
	}
	for _, bill := range doc.PendingFederalBills {
		out.PendingFederalBills = append(out.PendingFederalBills, regulation.FederalBill{
			Name:    bill.Name,
			Chamber: bill.Chamber,
			Status:  bill.Status,
			Summary: bill.Summary,
			Sources: bill.Sources,
		})
	}
	for _, dev := range doc.MajorStateDevelopments {
		out.MajorStateDevelopments = append(out.MajorStateDevelopments, regulation.Development{
			Date:   dev.Date,
			State:  dev.State,
			Title:  dev.Title,
			Detail: dev.Detail,
		})
	}
	return out
}

func toDomainState(rec models.StateRecord) regulation.StateRecord {
	out := regulation.StateRecord{
		Name:               rec.Name,
		Status:             rec.Status,
		Summary:            rec.Summary,
		KeyLaws:            rec.KeyLaws,
		RecentDevelopments: rec.RecentDevelopments,
		Sources:            rec.Sources,
		LastUpdated:        rec.LastUpdated,
		RegulatoryBody:     rec.RegulatoryBody,
	}
	for _, entry := range rec.Timeline {
		out.Timeline = append(out.Timeline, regulation.TimelineEntry{
			Date:   entry.Date,
			Label:  entry.Label,
			Detail: entry.Detail,
		})
	}
	return out
}
