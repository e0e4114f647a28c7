package game

import (
	"fmt"

	"hexwar/hex"
)

// Tile is one hex of the board. Col and Row are the generation-order grid indices.
type Tile struct {
	Q       int   `json:"q"`
	R       int   `json:"r"`
	Col     int   `json:"col"`
	Row     int   `json:"row"`
	Field   Field `json:"field"`
	HasRoad bool  `json:"hasRoad"`
}

func (t *Tile) Pos() hex.Axial {
	return hex.Axial{Q: t.Q, R: t.R}
}

// MovementCost is the cost of entering the tile. A road halves it (floor).
func (t *Tile) MovementCost() int {
	cost := t.Field.Def().MovementCost
	if t.HasRoad {
		return cost / 2
	}
	return cost
}

// Board is the static tile layout plus per-tile road state.
type Board struct {
	Width  int
	Height int
	tiles  []*Tile
	index  map[hex.Axial]*Tile
	grid   [][]*Tile
}

// NewBoard indexes the given tiles. Tiles keep their order; duplicates and
// out-of-grid col/row pairs are rejected.
func NewBoard(width, height int, tiles []Tile) (*Board, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", width, height)
	}
	b := &Board{
		Width:  width,
		Height: height,
		tiles:  make([]*Tile, 0, len(tiles)),
		index:  make(map[hex.Axial]*Tile, len(tiles)),
		grid:   make([][]*Tile, height),
	}
	for row := range b.grid {
		b.grid[row] = make([]*Tile, width)
	}

	for i := range tiles {
		t := tiles[i]
		if !t.Field.Valid() {
			return nil, fmt.Errorf("tile %s has unknown field %d", t.Pos(), int(t.Field))
		}
		if t.Row < 0 || t.Row >= height || t.Col < 0 || t.Col >= width {
			return nil, fmt.Errorf("tile %s has col/row %d/%d outside %dx%d", t.Pos(), t.Col, t.Row, width, height)
		}
		if _, dup := b.index[t.Pos()]; dup {
			return nil, fmt.Errorf("duplicate tile at %s", t.Pos())
		}
		if b.grid[t.Row][t.Col] != nil {
			return nil, fmt.Errorf("duplicate tile at col/row %d/%d", t.Col, t.Row)
		}
		tile := &t
		b.tiles = append(b.tiles, tile)
		b.index[tile.Pos()] = tile
		b.grid[t.Row][t.Col] = tile
	}
	return b, nil
}

// Tile returns the tile at a, or nil.
func (b *Board) Tile(a hex.Axial) *Tile {
	return b.index[a]
}

// TileAtColRow returns the tile at the grid indices, or nil.
func (b *Board) TileAtColRow(col, row int) *Tile {
	if row < 0 || row >= b.Height || col < 0 || col >= b.Width {
		return nil
	}
	return b.grid[row][col]
}

// Tiles returns all tiles in generation order.
func (b *Board) Tiles() []*Tile {
	return b.tiles
}

// Neighbors returns the existing tiles adjacent to a, in hex.Directions order.
func (b *Board) Neighbors(a hex.Axial) []*Tile {
	out := make([]*Tile, 0, len(hex.Directions))
	for _, n := range a.Neighbors() {
		if t := b.index[n]; t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Center returns the tile in the middle of the grid, falling back to the first tile.
func (b *Board) Center() *Tile {
	if t := b.TileAtColRow(b.Width/2, b.Height/2); t != nil {
		return t
	}
	if len(b.tiles) > 0 {
		return b.tiles[0]
	}
	return nil
}

// Snapshot copies all tiles by value.
func (b *Board) Snapshot() []Tile {
	out := make([]Tile, len(b.tiles))
	for i, t := range b.tiles {
		out[i] = *t
	}
	return out
}

// NeighborsFunc enumerates the tiles adjacent to a coordinate.
type NeighborsFunc func(hex.Axial) []*Tile
