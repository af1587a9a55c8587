// Package geo builds the tile grid behind the map view. Boundary features
// carry the authoritative ids and names; the grid file only assigns each
// resolved state a cell.
package geo

import (
	_ "embed"
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/stablewatch/regmap/modules/regmap/domain/region"
)

//go:embed data/boundaries.json
var boundariesJSON []byte

//go:embed data/tilegrid.yaml
var tileGridYAML []byte

type feature struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type boundariesDoc struct {
	Features []feature `json:"features"`
}

type gridCell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type gridDoc struct {
	Tiles map[string]gridCell `yaml:"tiles"`
}

// Tile is one interactive cell of the map.
type Tile struct {
	Abbr string
	Name string
	Row  int
	Col  int
}

// TileSet holds the resolved tiles in render order.
type TileSet struct {
	tiles  []Tile
	byAbbr map[string]Tile
}

// NewTileSet parses the embedded boundary and grid documents. Features that
// resolve to no known state, or states the grid gives no cell, are dropped
// rather than failing the load.
func NewTileSet() (*TileSet, error) {
	return newFromBytes(boundariesJSON, tileGridYAML)
}

func newFromBytes(boundaries, grid []byte) (*TileSet, error) {
	var bdoc boundariesDoc
	if err := json.Unmarshal(boundaries, &bdoc); err != nil {
		return nil, errors.Wrap(err, "parsing boundaries")
	}
	var gdoc gridDoc
	if err := yaml.Unmarshal(grid, &gdoc); err != nil {
		return nil, errors.Wrap(err, "parsing tile grid")
	}

	ts := &TileSet{byAbbr: make(map[string]Tile, len(bdoc.Features))}
	for _, f := range bdoc.Features {
		abbr, ok := region.Resolve(f.ID, f.Name)
		if !ok {
			continue
		}
		cell, ok := gdoc.Tiles[abbr]
		if !ok {
			continue
		}
		name, _ := region.Name(abbr)
		if name == "" {
			name = f.Name
		}
		tile := Tile{Abbr: abbr, Name: name, Row: cell.Row, Col: cell.Col}
		ts.tiles = append(ts.tiles, tile)
		ts.byAbbr[abbr] = tile
	}
	sort.Slice(ts.tiles, func(i, j int) bool {
		if ts.tiles[i].Row != ts.tiles[j].Row {
			return ts.tiles[i].Row < ts.tiles[j].Row
		}
		return ts.tiles[i].Col < ts.tiles[j].Col
	})
	return ts, nil
}

// Tiles returns the tiles sorted by row, then column.
func (ts *TileSet) Tiles() []Tile {
	return ts.tiles
}

// Find returns the tile for an abbreviation.
func (ts *TileSet) Find(abbr string) (Tile, bool) {
	t, ok := ts.byAbbr[abbr]
	return t, ok
}
