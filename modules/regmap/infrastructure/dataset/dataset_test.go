package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegulationRepository_EmbeddedDocument(t *testing.T) {
	repo, err := NewRegulationRepository()
	require.NoError(t, err)

	data := repo.Dataset()
	require.NotNil(t, data)
	require.NotNil(t, data.FederalContext)
	assert.NotEmpty(t, data.FederalContext.Headline)
	assert.NotEmpty(t, data.PendingFederalBills)
	assert.NotEmpty(t, data.StateIssuedStablecoins)
	assert.NotEmpty(t, data.MajorStateDevelopments)

	ny, ok := repo.State("NY")
	require.True(t, ok)
	assert.Equal(t, "New York", ny.Name)
	assert.Equal(t, "clear_friendly", ny.Status)
	assert.NotEmpty(t, ny.KeyLaws)
	assert.NotEmpty(t, ny.Timeline)

	_, ok = repo.State("ZZ")
	assert.False(t, ok)
}

func TestLatestUpdate_MaxAcrossStates(t *testing.T) {
	repo, err := NewRegulationRepository()
	require.NoError(t, err)

	assert.Equal(t, "2026-02-16", repo.LatestUpdate())
}

func TestNewFromBytes_ParseFailure(t *testing.T) {
	_, err := newFromBytes([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing regulation dataset")
}

func TestNewFromBytes_NoDatesFallsBack(t *testing.T) {
	raw := []byte(`{"states": {"AK": {"name": "Alaska", "summary": "none"}}}`)
	repo, err := newFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, fallbackLastUpdated, repo.LatestUpdate())
}

func TestNewFromBytes_TimelineMapped(t *testing.T) {
	raw := []byte(`{
		"states": {
			"WY": {
				"name": "Wyoming",
				"summary": "s",
				"lastUpdated": "2026-01-22",
				"timeline": [{"date": "2023-03-17", "label": "Act", "detail": "d"}]
			}
		}
	}`)
	repo, err := newFromBytes(raw)
	require.NoError(t, err)

	wy, ok := repo.State("WY")
	require.True(t, ok)
	require.Len(t, wy.Timeline, 1)
	assert.Equal(t, "2023-03-17", wy.Timeline[0].Date)
	assert.Equal(t, "Act", wy.Timeline[0].Label)
}
