package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexwar/game"
	"hexwar/hex"
)

// loopDice repeats its values forever.
type loopDice struct {
	values []int
	next   int
}

func (d *loopDice) Intn(n int) int {
	v := d.values[d.next%len(d.values)]
	d.next++
	return v % n
}

// newTestCore builds a core over a farmland parallelogram (q = col, r = row)
// with no units and the AI switched off.
func newTestCore(t *testing.T, width, height int, fields map[hex.Axial]game.Field, opts ...Option) *Core {
	t.Helper()
	cfg := DefaultConfig()
	cfg.AI.Enabled = false
	return newTestCoreWithConfig(t, cfg, width, height, fields, opts...)
}

func newTestCoreWithConfig(t *testing.T, cfg Config, width, height int, fields map[hex.Axial]game.Field, opts ...Option) *Core {
	t.Helper()
	c, err := newCore(cfg, opts)
	require.NoError(t, err)

	var tiles []game.Tile
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			tile := game.Tile{Q: col, R: row, Col: col, Row: row, Field: game.Farmland}
			if f, ok := fields[tile.Pos()]; ok {
				tile.Field = f
			}
			tiles = append(tiles, tile)
		}
	}
	board, err := game.NewBoard(width, height, tiles)
	require.NoError(t, err)
	c.state = game.NewState(board, 0)
	return c
}

func place(t *testing.T, c *Core, ut game.UnitType, q, r int, owner game.Player) *game.Unit {
	t.Helper()
	u := game.NewUnit(ut, hex.Axial{Q: q, R: r}, owner)
	_, err := c.state.Units.Add(u)
	require.NoError(t, err)
	return u
}

func at(q, r int) hex.Axial {
	return hex.Axial{Q: q, R: r}
}
