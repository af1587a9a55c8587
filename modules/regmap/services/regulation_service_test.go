package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablewatch/regmap/modules/regmap/domain/regulation"
	"github.com/stablewatch/regmap/modules/regmap/domain/status"
	"github.com/stablewatch/regmap/pkg/eventbus"
)

type stubRepo struct {
	states map[string]regulation.StateRecord
	latest string
}

func (r *stubRepo) Dataset() *regulation.Dataset {
	return &regulation.Dataset{States: r.states}
}

func (r *stubRepo) State(abbr string) (regulation.StateRecord, bool) {
	rec, ok := r.states[abbr]
	return rec, ok
}

func (r *stubRepo) LatestUpdate() string {
	return r.latest
}

func newTestService(states map[string]regulation.StateRecord) (*RegulationService, *[]regulation.StateViewedEvent) {
	bus := eventbus.NewEventPublisher(logrus.New())
	var seen []regulation.StateViewedEvent
	bus.Subscribe(func(ev regulation.StateViewedEvent) {
		seen = append(seen, ev)
	})
	repo := &stubRepo{states: states, latest: "2026-02-16"}
	return NewRegulationService(repo, bus), &seen
}

func TestDisplayRecord_DatasetHit(t *testing.T) {
	svc, seen := newTestService(map[string]regulation.StateRecord{
		"NY": {
			Name:        "New York",
			Status:      "clear_friendly",
			Summary:     "summary",
			KeyLaws:     []string{"Part 200"},
			Sources:     []string{"https://www.dfs.ny.gov"},
			LastUpdated: "2026-02-16",
		},
	})

	rec := svc.DisplayRecord(context.Background(), "NY")
	assert.Equal(t, "New York", rec.Name)
	assert.Equal(t, status.ClearFriendly, rec.Status)
	assert.False(t, rec.Synthesized)

	require.Len(t, *seen, 1)
	assert.Equal(t, "NY", (*seen)[0].Abbr)
	assert.False(t, (*seen)[0].Synthesized)
}

func TestDisplayRecord_LegacyAliasNormalized(t *testing.T) {
	svc, _ := newTestService(map[string]regulation.StateRecord{
		"CT": {Name: "Connecticut", Status: "restrictive", Summary: "s", LastUpdated: "2025-12-02"},
		"AK": {Name: "Alaska", Status: "none", Summary: "s", LastUpdated: "2025-09-14"},
		"OR": {Name: "Oregon", Status: "unclear", Summary: "s", LastUpdated: "2025-12-19"},
	})

	ctx := context.Background()
	assert.Equal(t, status.ClearRestrictive, svc.DisplayRecord(ctx, "CT").Status)
	assert.Equal(t, status.FederalDefault, svc.DisplayRecord(ctx, "AK").Status)
	assert.Equal(t, status.Pending, svc.DisplayRecord(ctx, "OR").Status)
}

func TestDisplayRecord_OverrideWinsOverStoredStatus(t *testing.T) {
	svc, _ := newTestService(map[string]regulation.StateRecord{
		"FL": {Name: "Florida", Status: "clear_friendly", Summary: "s", LastUpdated: "2026-02-05"},
	})

	rec := svc.DisplayRecord(context.Background(), "FL")
	assert.Equal(t, status.Pending, rec.Status)
}

func TestDisplayRecord_SynthesizedForDatasetMiss(t *testing.T) {
	svc, seen := newTestService(map[string]regulation.StateRecord{})

	rec := svc.DisplayRecord(context.Background(), "MT")
	assert.True(t, rec.Synthesized)
	assert.Equal(t, "Montana", rec.Name)
	assert.Equal(t, status.FederalDefault, rec.Status)
	assert.Contains(t, rec.Summary, "Montana")
	assert.NotEmpty(t, rec.KeyLaws)
	assert.NotNil(t, rec.Sources)
	assert.Empty(t, rec.Sources)
	assert.Equal(t, "2026-02-16", rec.LastUpdated)

	require.Len(t, *seen, 1)
	assert.True(t, (*seen)[0].Synthesized)
}

func TestDisplayRecord_UnknownAbbrStillResolves(t *testing.T) {
	svc, _ := newTestService(map[string]regulation.StateRecord{})

	rec := svc.DisplayRecord(context.Background(), "ZZ")
	assert.Equal(t, "Unknown", rec.Name)
	assert.Equal(t, status.FederalDefault, rec.Status)
	assert.True(t, rec.Synthesized)
}

func TestDisplayRecord_FillsMissingFields(t *testing.T) {
	svc, _ := newTestService(map[string]regulation.StateRecord{
		"TN": {Status: "none", Summary: "s"},
	})

	rec := svc.DisplayRecord(context.Background(), "TN")
	assert.Equal(t, "Tennessee", rec.Name)
	assert.NotNil(t, rec.KeyLaws)
	assert.NotNil(t, rec.Sources)
	assert.Equal(t, "2026-02-16", rec.LastUpdated)
}

func TestStatesOverview(t *testing.T) {
	svc, seen := newTestService(map[string]regulation.StateRecord{
		"NY": {Name: "New York", Status: "clear_friendly", Summary: "s", LastUpdated: "2026-02-16"},
	})

	out := svc.StatesOverview(context.Background(), []string{"NY", "MT"})
	require.Len(t, out, 2)
	assert.Equal(t, status.ClearFriendly, out["NY"].Status)
	assert.True(t, out["MT"].Synthesized)
	assert.Empty(t, *seen, "overview must not publish view events")
}
