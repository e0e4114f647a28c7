package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexwar/game"
	"hexwar/hex"
)

func newSaveCore(t *testing.T) *Core {
	t.Helper()
	c := newTestCore(t, 5, 4, map[hex.Axial]game.Field{{Q: 2, R: 2}: game.City, {Q: 4, R: 0}: game.Ocean})
	place(t, c, game.MilitaryBase, 0, 0, 0)
	place(t, c, game.MilitaryBase, 4, 3, 1)
	hurt := place(t, c, game.Tank, 2, 2, 0)
	hurt.HP = 70
	hurt.Experience = 3
	hurt.Acted = true
	c.state.Board.Tile(at(1, 1)).HasRoad = true
	c.state.Balances = [2]int{120, 35}
	c.state.Turn = 7
	return c
}

func TestSaveRoundTrip(t *testing.T) {
	c := newSaveCore(t)
	saved := c.Serialize()

	restored, err := NewCoreFromState(c.Config(), saved)
	require.NoError(t, err)
	require.Equal(t, saved, restored.Serialize())

	view := restored.State()
	require.Equal(t, 7, view.Turn)
	require.Equal(t, [2]int{120, 35}, view.Balances)
	require.False(t, view.GameOver)
	tank, found := view.UnitAt(at(2, 2))
	require.True(t, found)
	require.Equal(t, game.Tank, tank.Type)
	require.Equal(t, 70, tank.HP)
	require.Equal(t, 3, tank.Experience)
	require.True(t, tank.Acted)
	road, ok := restored.TileAtColRow(1, 1)
	require.True(t, ok)
	require.True(t, road.HasRoad)
}

func TestSaveJSONRoundTrip(t *testing.T) {
	c := newSaveCore(t)
	data, err := c.SaveJSON()
	require.NoError(t, err)
	require.Contains(t, string(data), `"currentPlayer"`)

	other := newTestCore(t, 3, 1, nil)
	require.NoError(t, other.LoadJSON(data))
	require.Equal(t, c.Serialize(), other.Serialize())
}

func TestLoadFailureKeepsState(t *testing.T) {
	c := newSaveCore(t)
	before := c.Serialize()

	t.Run("version", func(t *testing.T) {
		bad := c.Serialize()
		bad.Version = 2
		err := c.Load(bad)
		require.ErrorIs(t, err, game.ErrUnsupportedVersion)
		require.Equal(t, before, c.Serialize())
	})

	t.Run("unit off the board", func(t *testing.T) {
		bad := c.Serialize()
		bad.Units[0].Q = 40
		err := c.Load(bad)
		require.ErrorIs(t, err, game.ErrMalformedSave)
		require.Equal(t, before, c.Serialize())
	})

	t.Run("garbage json", func(t *testing.T) {
		require.Error(t, c.LoadJSON([]byte("{not json")))
		require.Equal(t, before, c.Serialize())
	})

	t.Run("from state", func(t *testing.T) {
		bad := c.Serialize()
		bad.PlayerBalances = []int{1}
		_, err := NewCoreFromState(c.Config(), bad)
		require.ErrorIs(t, err, game.ErrMalformedSave)
	})
}

func TestLoadRecomputesWinner(t *testing.T) {
	c := newSaveCore(t)
	saved := c.Serialize()
	var units []game.SavedUnit
	for _, u := range saved.Units {
		if u.Type == game.MilitaryBase && u.Owner == 1 {
			continue
		}
		units = append(units, u)
	}
	saved.Units = units

	require.NoError(t, c.Load(saved))
	view := c.State()
	require.True(t, view.GameOver)
	require.Equal(t, game.Player(0), view.Winner)
}

func TestLoadAfterMutualDestruction(t *testing.T) {
	c := newTestCore(t, 3, 1, nil)
	attacker := place(t, c, game.MilitaryBase, 0, 0, 1)
	defender := place(t, c, game.MilitaryBase, 1, 0, 0)
	attacker.HP, defender.HP = 1, 1
	c.state.CurrentPlayer = 1
	require.Equal(t, 2, c.ApplyCombat(game.Preview{
		AttackerID:     attacker.ID,
		DefenderID:     defender.ID,
		AttackerPos:    attacker.Pos,
		DefenderPos:    defender.Pos,
		AttackerOwner:  1,
		DamageDefender: 5,
		DamageAttacker: 5,
	}))
	saved := c.Serialize()

	restored, err := NewCoreFromState(c.Config(), saved)
	require.NoError(t, err)
	view := restored.State()
	require.True(t, view.GameOver)
	require.Equal(t, game.Player(1), view.Winner)
	require.Empty(t, view.Units)

	require.Nil(t, restored.EndTurn())
	require.Equal(t, game.Player(1), restored.State().CurrentPlayer)
}
