package engine

import (
	"hexwar/game"
	"hexwar/hex"
)

// Purchase describes a pending purchase.
type Purchase struct {
	Type  game.UnitType
	Owner game.Player
	HQ    game.UnitID
}

// View is a detached copy of the game for hosts and renderers. Changing it
// has no effect on the core.
type View struct {
	Turn          int
	CurrentPlayer game.Player
	GameOver      bool
	Winner        game.Player
	SelectedHex   *hex.Axial
	SelectedUnit  game.UnitID
	Purchase      *Purchase
	Reachable     map[hex.Axial]int
	Overlay       map[hex.Axial]bool
	Tiles         []game.Tile
	Units         []game.Unit
	Balances      [2]int
	MapWidth      int
	MapHeight     int
}

func (c *Core) State() View {
	s := c.state
	v := View{
		Turn:          s.Turn,
		CurrentPlayer: s.CurrentPlayer,
		GameOver:      s.GameOver,
		Winner:        s.Winner,
		Reachable:     s.ReachableTiles().Map(),
		Overlay:       s.AttackOverlay().Map(),
		Tiles:         s.Board.Snapshot(),
		Balances:      s.Balances,
		MapWidth:      s.Board.Width,
		MapHeight:     s.Board.Height,
	}
	if s.SelectedHex != nil {
		h := *s.SelectedHex
		v.SelectedHex = &h
	}
	switch sel := s.Selection.(type) {
	case game.UnitSelected:
		v.SelectedUnit = sel.Unit
	case game.PendingPurchase:
		v.Purchase = &Purchase{Type: sel.Type, Owner: sel.Owner, HQ: sel.HQ}
	}
	for _, u := range s.Units.All() {
		cp := *u
		cp.Path = append([]hex.Axial(nil), u.Path...)
		v.Units = append(v.Units, cp)
	}
	return v
}

// UnitAt finds a unit in the view.
func (v View) UnitAt(a hex.Axial) (game.Unit, bool) {
	for _, u := range v.Units {
		if u.Pos == a {
			return u, true
		}
	}
	return game.Unit{}, false
}
