package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexwar/hex"
)

func TestRoster(t *testing.T) {
	r := NewRoster()
	a := NewUnit(Infantry, hex.Axial{Q: 0, R: 0}, 0)
	b := NewUnit(Tank, hex.Axial{Q: 1, R: 0}, 1)

	idA, err := r.Add(a)
	require.NoError(t, err)
	idB, err := r.Add(b)
	require.NoError(t, err)
	require.NotEqual(t, idA, idB)

	_, err = r.Add(NewUnit(Cavalry, hex.Axial{Q: 0, R: 0}, 1))
	require.Error(t, err, "one unit per tile")

	require.False(t, r.Move(a, b.Pos))
	require.True(t, r.Move(a, hex.Axial{Q: 0, R: 1}))
	require.Nil(t, r.At(hex.Axial{Q: 0, R: 0}))
	require.Same(t, a, r.At(hex.Axial{Q: 0, R: 1}))
	require.Equal(t, idA, a.ID, "ids survive moves")

	b.HP = 0
	dead := r.RemoveDead()
	require.Equal(t, []*Unit{b}, dead)
	require.Nil(t, r.Get(idB))
	require.False(t, r.Occupied(hex.Axial{Q: 1, R: 0}))
	require.Equal(t, []*Unit{a}, r.All())
}

func TestResetForNewTurn(t *testing.T) {
	t.Run("idle units heal", func(t *testing.T) {
		u := NewUnit(Infantry, hex.Axial{}, 0)
		u.HP = 95
		u.ResetForNewTurn()
		require.Equal(t, 100, u.HP)
	})

	t.Run("busy units only refresh", func(t *testing.T) {
		u := NewUnit(Infantry, hex.Axial{}, 0)
		u.HP = 50
		u.RemainingMovement = 1
		u.Acted = true
		u.ResetForNewTurn()
		require.Equal(t, 50, u.HP)
		require.Equal(t, 3, u.RemainingMovement)
		require.False(t, u.Acted)
	})
}

func TestRemoveDeadKeepsOrder(t *testing.T) {
	r := NewRoster()
	var units []*Unit
	for q := 0; q < 4; q++ {
		u := NewUnit(Infantry, hex.Axial{Q: q}, Player(q%2))
		_, err := r.Add(u)
		require.NoError(t, err)
		units = append(units, u)
	}
	units[0].HP = 0
	units[2].HP = -3

	require.Equal(t, []*Unit{units[0], units[2]}, r.RemoveDead())
	require.Equal(t, []*Unit{units[1], units[3]}, r.All())
	require.Equal(t, 2, r.Len())
	require.Nil(t, r.At(hex.Axial{Q: 2}))
	require.Empty(t, r.RemoveDead())

	r.Remove(units[0].ID)
	require.Equal(t, 2, r.Len(), "removing twice is a no-op")
}
