package services

import (
	"context"
	"fmt"

	"github.com/stablewatch/regmap/modules/regmap/domain/region"
	"github.com/stablewatch/regmap/modules/regmap/domain/regulation"
	"github.com/stablewatch/regmap/modules/regmap/domain/status"
	"github.com/stablewatch/regmap/pkg/eventbus"
)

// RegulationService resolves display records from the dataset. Every lookup
// yields a complete record: dataset misses are synthesized, never errored.
type RegulationService struct {
	repo      regulation.Repository
	publisher eventbus.EventBus
}

func NewRegulationService(repo regulation.Repository, publisher eventbus.EventBus) *RegulationService {
	return &RegulationService{
		repo:      repo,
		publisher: publisher,
	}
}

// DisplayRecord resolves the record shown for a state. It cannot fail: a
// dataset hit is normalized, a miss yields a synthesized federal-default
// record with every display field populated.
func (s *RegulationService) DisplayRecord(ctx context.Context, abbr string) regulation.DisplayRecord {
	out := s.resolve(abbr)
	s.publisher.Publish(regulation.StateViewedEvent{Abbr: abbr, Synthesized: out.Synthesized})
	return out
}

func (s *RegulationService) resolve(abbr string) regulation.DisplayRecord {
	rec, ok := s.repo.State(abbr)
	if !ok {
		return s.synthesize(abbr)
	}
	return s.fromRecord(abbr, rec)
}

func (s *RegulationService) fromRecord(abbr string, rec regulation.StateRecord) regulation.DisplayRecord {
	name := rec.Name
	if name == "" {
		if resolved, found := region.Name(abbr); found {
			name = resolved
		} else {
			name = abbr
		}
	}
	out := regulation.DisplayRecord{
		Abbr:               abbr,
		Name:               name,
		Status:             status.Normalize(rec.Status, abbr),
		Summary:            rec.Summary,
		KeyLaws:            rec.KeyLaws,
		RecentDevelopments: rec.RecentDevelopments,
		Sources:            rec.Sources,
		LastUpdated:        rec.LastUpdated,
		Timeline:           rec.Timeline,
		RegulatoryBody:     rec.RegulatoryBody,
	}
	if out.KeyLaws == nil {
		out.KeyLaws = []string{}
	}
	if out.Sources == nil {
		out.Sources = []string{}
	}
	if out.LastUpdated == "" {
		out.LastUpdated = s.repo.LatestUpdate()
	}
	return out
}

// synthesize builds the record for a state the dataset does not cover.
func (s *RegulationService) synthesize(abbr string) regulation.DisplayRecord {
	name, ok := region.Name(abbr)
	if !ok {
		name = "Unknown"
	}
	return regulation.DisplayRecord{
		Abbr:   abbr,
		Name:   name,
		Status: status.FederalDefault,
		Summary: fmt.Sprintf(
			"%s has no state-specific stablecoin framework on record. Federal law and generic money-transmission rules govern stablecoin activity involving %s residents.",
			name, name,
		),
		KeyLaws:            []string{"No state-specific stablecoin legislation identified"},
		RecentDevelopments: "No stablecoin-specific activity tracked.",
		Sources:            []string{},
		LastUpdated:        s.repo.LatestUpdate(),
		Synthesized:        true,
	}
}

// StatesOverview returns a display record for every requested state, keyed
// by abbreviation. States absent from the dataset are synthesized the same
// way a direct lookup would, without publishing view events.
func (s *RegulationService) StatesOverview(ctx context.Context, abbrs []string) map[string]regulation.DisplayRecord {
	out := make(map[string]regulation.DisplayRecord, len(abbrs))
	for _, abbr := range abbrs {
		out[abbr] = s.resolve(abbr)
	}
	return out
}

func (s *RegulationService) FederalContext(ctx context.Context) *regulation.FederalContext {
	return s.repo.Dataset().FederalContext
}

func (s *RegulationService) PendingFederalBills(ctx context.Context) []regulation.FederalBill {
	return s.repo.Dataset().PendingFederalBills
}

func (s *RegulationService) StateIssuedStablecoins(ctx context.Context) []regulation.StateIssuedStablecoin {
	return s.repo.Dataset().StateIssuedStablecoins
}

func (s *RegulationService) MajorStateDevelopments(ctx context.Context) []regulation.Development {
	return s.repo.Dataset().MajorStateDevelopments
}

// LatestUpdate is the most recent lastUpdated across the dataset, used as
// the page-level freshness stamp.
func (s *RegulationService) LatestUpdate(ctx context.Context) string {
	return s.repo.LatestUpdate()
}
