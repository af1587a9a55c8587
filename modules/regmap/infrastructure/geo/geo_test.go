package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTileSet_EmbeddedDocuments(t *testing.T) {
	ts, err := NewTileSet()
	require.NoError(t, err)

	// 50 states plus DC.
	assert.Len(t, ts.Tiles(), 51)

	ny, ok := ts.Find("NY")
	require.True(t, ok)
	assert.Equal(t, "New York", ny.Name)
	assert.Equal(t, 2, ny.Row)
	assert.Equal(t, 9, ny.Col)

	ak, ok := ts.Find("AK")
	require.True(t, ok)
	assert.Equal(t, 0, ak.Row)
	assert.Equal(t, 0, ak.Col)
}

func TestNewTileSet_RenderOrder(t *testing.T) {
	ts, err := NewTileSet()
	require.NoError(t, err)

	tiles := ts.Tiles()
	for i := 1; i < len(tiles); i++ {
		prev, cur := tiles[i-1], tiles[i]
		inOrder := prev.Row < cur.Row || (prev.Row == cur.Row && prev.Col < cur.Col)
		assert.True(t, inOrder, "tiles out of order at %d: %v then %v", i, prev, cur)
	}
}

func TestNewFromBytes_DropsUnresolvedFeatures(t *testing.T) {
	boundaries := []byte(`{"features": [
		{"id": "36", "name": "New York"},
		{"id": "999", "name": "Atlantis"}
	]}`)
	grid := []byte("tiles:\n  NY: { row: 2, col: 9 }\n")

	ts, err := newFromBytes(boundaries, grid)
	require.NoError(t, err)
	assert.Len(t, ts.Tiles(), 1)
	assert.Equal(t, "NY", ts.Tiles()[0].Abbr)
}

func TestNewFromBytes_NameFallbackResolution(t *testing.T) {
	boundaries := []byte(`{"features": [{"id": "bogus", "name": "Wyoming"}]}`)
	grid := []byte("tiles:\n  WY: { row: 3, col: 3 }\n")

	ts, err := newFromBytes(boundaries, grid)
	require.NoError(t, err)
	wy, ok := ts.Find("WY")
	require.True(t, ok)
	assert.Equal(t, "Wyoming", wy.Name)
}

func TestNewFromBytes_ParseFailures(t *testing.T) {
	_, err := newFromBytes([]byte("{"), []byte("tiles: {}"))
	require.Error(t, err)

	_, err = newFromBytes([]byte(`{"features": []}`), []byte(":\tnot yaml"))
	require.Error(t, err)
}
