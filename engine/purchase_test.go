package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hexwar/game"
	"hexwar/hex"
)

func TestPurchase(t *testing.T) {
	c := newTestCore(t, 4, 3, nil)
	hq := place(t, c, game.MilitaryBase, 1, 1, 0)
	c.state.Balances[0] = 150

	require.True(t, c.BeginPurchase(hq.ID, game.Infantry))
	view := c.State()
	require.NotNil(t, view.Purchase)
	require.Equal(t, game.Infantry, view.Purchase.Type)
	require.Equal(t, hq.ID, view.Purchase.HQ)

	require.Equal(t, KindNone, c.SelectHex(at(2, 1)).Kind)
	view = c.State()
	require.Zero(t, view.Balances[0])
	require.Nil(t, view.Purchase)
	require.Len(t, view.Units, 2)
	bought, found := view.UnitAt(at(2, 1))
	require.True(t, found)
	require.Equal(t, game.Infantry, bought.Type)
	require.Equal(t, game.Player(0), bought.Owner)
	require.Equal(t, 100, bought.HP)

	// Broke: the click cancels the purchase and places nothing.
	require.True(t, c.BeginPurchase(hq.ID, game.Infantry))
	c.SelectHex(at(0, 1))
	view = c.State()
	require.Zero(t, view.Balances[0])
	require.Nil(t, view.Purchase)
	require.Len(t, view.Units, 2)
	_, found = view.UnitAt(at(0, 1))
	require.False(t, found)
}

func TestPurchaseRejections(t *testing.T) {
	c := newTestCore(t, 6, 3, nil)
	hq := place(t, c, game.MilitaryBase, 1, 1, 0)
	enemyHQ := place(t, c, game.MilitaryBase, 4, 1, 1)
	infantry := place(t, c, game.Infantry, 2, 1, 0)
	c.state.Balances[0] = 1000

	require.False(t, c.BeginPurchase(enemyHQ.ID, game.Infantry))
	require.False(t, c.BeginPurchase(infantry.ID, game.Infantry))
	require.False(t, c.BeginPurchase(hq.ID, game.MilitaryBase))
	require.False(t, c.BeginPurchase(hq.ID, game.UnitType(42)))
	require.False(t, c.BeginPurchase(999, game.Infantry))
	require.Nil(t, c.State().Purchase)

	t.Run("occupied tile is not charged", func(t *testing.T) {
		require.True(t, c.BeginPurchase(hq.ID, game.Tank))
		c.SelectHex(infantry.Pos)
		require.Equal(t, 1000, c.Balance(0))
		require.Equal(t, infantry.ID, c.State().SelectedUnit)
		require.Nil(t, c.State().Purchase)
	})

	t.Run("cancel", func(t *testing.T) {
		require.True(t, c.BeginPurchase(hq.ID, game.Artillery))
		c.CancelPurchase()
		require.Nil(t, c.State().Purchase)
		require.Equal(t, 1000, c.Balance(0))
	})
}

func TestEconomy(t *testing.T) {
	c := newTestCore(t, 4, 3, nil)
	c.AddBalance(1, 30)
	require.Equal(t, 30, c.Balance(1))
	require.True(t, c.CanAfford(1, 30))
	require.False(t, c.CanAfford(1, 31))
	require.False(t, c.Spend(1, 31))
	require.True(t, c.Spend(1, 30))
	require.Zero(t, c.Balance(1))

	require.Zero(t, c.Balance(game.Player(5)))
	require.False(t, c.Spend(game.Player(5), 0))
	c.AddBalance(game.Player(-1), 10)
	require.Equal(t, [2]int{0, 0}, c.state.Balances)
}

func TestPurchaseOptions(t *testing.T) {
	c := newTestCore(t, 6, 3, nil)
	hq := place(t, c, game.MilitaryBase, 1, 1, 0)
	enemyHQ := place(t, c, game.MilitaryBase, 4, 1, 1)
	c.state.Balances[0] = 200

	options := c.PurchaseOptions(hq.ID)
	require.Len(t, options, len(game.UnitTypes())-1)
	require.Equal(t, PurchaseOption{Type: game.Infantry, Price: 150, Affordable: true}, options[0])
	for _, o := range options {
		require.NotEqual(t, game.MilitaryBase, o.Type)
		require.Equal(t, o.Price <= 200, o.Affordable, o.Type.String())
	}

	require.Nil(t, c.PurchaseOptions(enemyHQ.ID))
	require.Nil(t, c.PurchaseOptions(999))
}

func TestIncomeWithFractionalMultiplier(t *testing.T) {
	c := newTestCore(t, 4, 1, map[hex.Axial]game.Field{{Q: 1, R: 0}: game.City, {Q: 2, R: 0}: game.Industry})
	seat := game.Player(1)
	c.ConfigureAI(&seat, 1.25)

	place(t, c, game.Infantry, 0, 0, 1)
	require.Equal(t, 12, c.Income(1), "10 * 1.25 truncated")

	place(t, c, game.Infantry, 1, 0, 1)
	require.Equal(t, 75, c.Income(1))

	place(t, c, game.Infantry, 2, 0, 1)
	require.Equal(t, 125, c.Income(1), "scaled once, not per source")
	require.Equal(t, 10, c.Income(0))
}
