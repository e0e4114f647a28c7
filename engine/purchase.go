package engine

import (
	"github.com/rs/zerolog/log"

	"hexwar/game"
	"hexwar/hex"
)

// BeginPurchase starts buying a unit at one of the current player's HQs. The
// drop overlay is the reach of a hypothetical unit of that type standing on
// the HQ. Payment happens on placement.
func (c *Core) BeginPurchase(hqID game.UnitID, ut game.UnitType) bool {
	s := c.state
	if s.GameOver || !ut.Valid() || ut == game.MilitaryBase {
		return false
	}
	hq := s.Units.Get(hqID)
	if hq == nil || !hq.IsHeadquarter() || hq.Owner != s.CurrentPlayer {
		return false
	}
	s.Selection = game.PendingPurchase{
		Type:  ut,
		Owner: hq.Owner,
		HQ:    hq.ID,
		Drop:  game.ReachableFor(s, game.ProbeFor(ut, hq.Owner, hq.Pos), s.Neighbors),
	}
	return true
}

// PurchaseOption is one entry of a headquarter's buy menu.
type PurchaseOption struct {
	Type       game.UnitType
	Price      int
	Affordable bool
}

// PurchaseOptions lists the unit types the current player can order at hqID,
// in catalogue order. It returns nil when hqID is not one of their HQs.
func (c *Core) PurchaseOptions(hqID game.UnitID) []PurchaseOption {
	s := c.state
	hq := s.Units.Get(hqID)
	if s.GameOver || hq == nil || !hq.IsHeadquarter() || hq.Owner != s.CurrentPlayer {
		return nil
	}
	var options []PurchaseOption
	for _, ut := range game.UnitTypes() {
		if ut == game.MilitaryBase {
			continue
		}
		price := ut.Data().Price
		options = append(options, PurchaseOption{Type: ut, Price: price, Affordable: c.CanAfford(hq.Owner, price)})
	}
	return options
}

// CancelPurchase drops a pending purchase, if any.
func (c *Core) CancelPurchase() {
	if _, ok := c.state.Selection.(game.PendingPurchase); ok {
		c.state.Selection = game.Idle{}
	}
}

// placePurchase completes a pending purchase on pos. Clicks outside the drop
// overlay are left to the remaining click steps; failing to pay cancels it.
func (c *Core) placePurchase(pos hex.Axial) bool {
	s := c.state
	pp, ok := s.Selection.(game.PendingPurchase)
	if !ok || !pp.Drop.Contains(pos) || s.Units.Occupied(pos) {
		return false
	}
	if !c.Spend(pp.Owner, pp.Type.Data().Price) {
		c.CancelPurchase()
		return false
	}
	u := game.NewUnit(pp.Type, pos, pp.Owner)
	if _, err := s.Units.Add(u); err != nil {
		// Occupancy was checked above, so this only happens on a corrupted roster.
		log.Error().Err(err).Msg("purchase placement failed")
		c.AddBalance(pp.Owner, pp.Type.Data().Price)
		c.CancelPurchase()
		return false
	}
	log.Debug().Int("player", int(pp.Owner)).Str("type", pp.Type.String()).Str("at", pos.Key()).Msg("unit bought")

	s.Selection = game.Idle{}
	placed := pos
	s.SelectedHex = &placed
	return true
}
