package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexwar/hex"
)

// fixedDice returns queued values in order.
type fixedDice struct {
	values []int
}

func (d *fixedDice) Intn(n int) int {
	v := d.values[0]
	d.values = d.values[1:]
	return v % n
}

// newTestState builds a width x height farmland parallelogram with q = col and
// r = row, applying the given field overrides.
func newTestState(t *testing.T, width, height int, fields map[hex.Axial]Field) *State {
	t.Helper()
	tiles := make([]Tile, 0, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			tile := Tile{Q: col, R: row, Col: col, Row: row, Field: Farmland}
			if f, ok := fields[tile.Pos()]; ok {
				tile.Field = f
			}
			tiles = append(tiles, tile)
		}
	}
	board, err := NewBoard(width, height, tiles)
	require.NoError(t, err)
	return NewState(board, 0)
}

func place(t *testing.T, s *State, ut UnitType, q, r int, owner Player) *Unit {
	t.Helper()
	u := NewUnit(ut, hex.Axial{Q: q, R: r}, owner)
	_, err := s.Units.Add(u)
	require.NoError(t, err)
	return u
}

type ledger struct {
	balances [2]int
}

func (l *ledger) Spend(p Player, cost int) bool {
	if l.balances[p] < cost {
		return false
	}
	l.balances[p] -= cost
	return true
}
