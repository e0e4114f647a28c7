package engine

import (
	"github.com/rs/zerolog/log"

	"hexwar/game"
	"hexwar/hex"
)

// Kind tells the host what a click produced.
type Kind int

const (
	KindNone Kind = iota
	// KindCombat carries an attack preview waiting for confirmation.
	KindCombat
	// KindHeadquarter means the current player clicked their own HQ.
	KindHeadquarter
)

type SelectResult struct {
	Kind        Kind
	Preview     game.Preview
	Headquarter game.UnitID
}

var none = SelectResult{Kind: KindNone}

// SelectHex handles a click on pos. The steps run in a fixed order and the
// first one that applies wins: purchase placement, deselect, heal, road
// building, friendly selection, move, attack preview, and finally clearing
// the selection while remembering the clicked hex.
func (c *Core) SelectHex(pos hex.Axial) SelectResult {
	s := c.state
	if s.GameOver {
		return none
	}
	if c.placePurchase(pos) {
		return none
	}
	if s.Tile(pos) == nil {
		s.ClearSelection(true)
		return none
	}

	clicked := pos
	s.SelectedHex = &clicked

	if u := s.SelectedUnit(); u != nil && u.Pos == pos {
		s.ClearSelection(true)
		return none
	}
	if c.tryHeal(pos) {
		return none
	}
	if c.tryBuildRoad(pos) {
		return none
	}
	if res, ok := c.selectFriendly(pos); ok {
		return res
	}
	if c.tryMove(pos) {
		return none
	}
	if p, ok := c.tryAttack(pos); ok {
		return SelectResult{Kind: KindCombat, Preview: p}
	}

	s.ClearSelection(false)
	return none
}

// selected returns the active unit selection and its unit.
func (c *Core) selected() (game.UnitSelected, *game.Unit, bool) {
	sel, ok := c.state.Selection.(game.UnitSelected)
	if !ok {
		return game.UnitSelected{}, nil, false
	}
	u := c.state.Units.Get(sel.Unit)
	if u == nil {
		return game.UnitSelected{}, nil, false
	}
	return sel, u, true
}

func (c *Core) tryHeal(pos hex.Axial) bool {
	sel, healer, ok := c.selected()
	if !ok || healer.Type != game.Medic || healer.Acted {
		return false
	}
	target := c.state.Units.At(pos)
	if target == nil || !sel.Overlay.Contains(pos) {
		return false
	}
	if !game.Heal(healer, target) {
		return false
	}
	log.Debug().Int("medic", int(healer.ID)).Int("target", int(target.ID)).Int("hp", target.HP).Msg("healed")
	c.state.ClearSelection(false)
	return true
}

func (c *Core) tryBuildRoad(pos hex.Axial) bool {
	sel, engineer, ok := c.selected()
	if !ok || engineer.Type != game.Engineer || engineer.Acted {
		return false
	}
	tile := c.state.Tile(pos)
	if tile == nil || !sel.Overlay.Contains(pos) {
		return false
	}
	if !game.BuildRoad(c.state, engineer, tile, c) {
		return false
	}
	log.Debug().Int("engineer", int(engineer.ID)).Str("at", pos.Key()).Msg("road built")
	c.state.ClearSelection(false)
	return true
}

// selectFriendly selects one of the current player's units. Overlays are
// only computed for units that can still act.
func (c *Core) selectFriendly(pos hex.Axial) (SelectResult, bool) {
	s := c.state
	u := s.Units.At(pos)
	if u == nil || u.Owner != s.CurrentPlayer {
		return none, false
	}
	if u.IsHeadquarter() {
		s.ClearSelection(false)
		return SelectResult{Kind: KindHeadquarter, Headquarter: u.ID}, true
	}

	sel := game.UnitSelected{Unit: u.ID}
	if !u.Acted {
		sel.Reachable = game.ReachableTiles(s, u, s.Neighbors)
		sel.Overlay = game.OverlayFor(s, u)
	}
	s.Selection = sel
	return none, true
}

func (c *Core) tryMove(pos hex.Axial) bool {
	sel, u, ok := c.selected()
	if !ok {
		return false
	}
	if !game.TryMove(c.state, u, pos, sel.Reachable) {
		return false
	}
	log.Debug().Int("unit", int(u.ID)).Str("to", pos.Key()).Int("movement_left", u.RemainingMovement).Msg("moved")
	c.state.ClearSelection(false)
	return true
}

func (c *Core) tryAttack(pos hex.Axial) (game.Preview, bool) {
	sel, attacker, ok := c.selected()
	if !ok || attacker.Type == game.Engineer || attacker.Acted {
		return game.Preview{}, false
	}
	defender := c.state.Units.At(pos)
	if defender == nil || defender.Owner == attacker.Owner || !sel.Overlay.Contains(pos) {
		return game.Preview{}, false
	}
	p := game.ComputePreview(c.state, attacker, defender, game.Roll(c.dice))
	c.state.ClearSelection(false)
	return p, true
}
