package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexwar/game"
)

func newMatchCore(t *testing.T, seed int64) *Core {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	c, err := NewCore(cfg)
	require.NoError(t, err)
	return c
}

func TestMatchRun(t *testing.T) {
	c := newMatchCore(t, 3)
	winner, match, turns := NewMatch(c, true).Run(40)

	require.NotEmpty(t, turns)
	require.LessOrEqual(t, match.TotalTurns, 41)
	require.Equal(t, int64(3), match.Seed)
	require.Equal(t, "normal", match.Difficulty)
	require.Equal(t, int(winner), match.Winner)

	view := c.State()
	if view.GameOver {
		require.Equal(t, view.Winner, winner)
	} else {
		require.Equal(t, game.NoPlayer, winner)
	}
	for _, tm := range turns {
		require.True(t, game.Player(tm.Player).Valid())
		require.GreaterOrEqual(t, tm.Attacks, tm.Destroyed)
		require.GreaterOrEqual(t, tm.Balance, 0)
	}
	require.Zero(t, turns[0].Player)
}

func TestMatchIsDeterministic(t *testing.T) {
	a := newMatchCore(t, 11)
	b := newMatchCore(t, 11)
	require.Equal(t, a.Serialize(), b.Serialize())

	NewMatch(a, false).Run(20)
	NewMatch(b, false).Run(20)
	require.Equal(t, a.Serialize(), b.Serialize())
}
