package ai

import (
	"github.com/rs/zerolog/log"

	"hexwar/game"
	"hexwar/hex"
)

// purchaseOrder lists the unit types to try, best first.
func purchaseOrder(s *game.State, me game.Player) []game.UnitType {
	var order []game.UnitType
	if hasUnclaimedCapture(s) {
		order = []game.UnitType{game.Cavalry, game.Tank, game.Artillery, game.MachineGun, game.Infantry}
	} else {
		order = []game.UnitType{game.Tank, game.Artillery, game.Cavalry, game.MachineGun, game.Infantry}
	}
	if !hasType(s, me, game.Medic) {
		order = append([]game.UnitType{game.Medic}, order...)
	}
	if !hasType(s, me, game.Engineer) {
		order = append([]game.UnitType{game.Engineer}, order...)
	}
	return order
}

// purchase buys at most one unit per headquarter.
func (p *Planner) purchase(s *game.State, me game.Player, ledger Ledger) {
	order := purchaseOrder(s, me)
	for _, hq := range s.Units.Headquarters(me) {
		for _, ut := range order {
			spawn, ok := spawnTile(s, hq.Pos, ut == game.Engineer)
			if !ok {
				continue
			}
			price := ut.Data().Price
			if !ledger.CanAfford(me, price) || !ledger.Spend(me, price) {
				continue
			}
			if _, err := s.Units.Add(game.NewUnit(ut, spawn, me)); err != nil {
				log.Error().Err(err).Msg("ai spawn failed")
				continue
			}
			log.Debug().Int("player", int(me)).Str("type", ut.String()).Str("at", spawn.Key()).Msg("ai bought unit")
			break
		}
	}
}

// spawnTile returns the first free land neighbor of the headquarter.
func spawnTile(s *game.State, hq hex.Axial, avoidCaptures bool) (hex.Axial, bool) {
	for _, t := range s.Neighbors(hq) {
		if t.Field == game.Ocean {
			continue
		}
		if avoidCaptures && t.Field.Capturable() {
			continue
		}
		if s.Units.Occupied(t.Pos()) {
			continue
		}
		return t.Pos(), true
	}
	return hex.Axial{}, false
}

func hasType(s *game.State, owner game.Player, ut game.UnitType) bool {
	for _, u := range s.Units.Owned(owner) {
		if u.Type == ut {
			return true
		}
	}
	return false
}

func hasUnclaimedCapture(s *game.State) bool {
	for _, t := range s.Board.Tiles() {
		if t.Field.Capturable() && !s.Units.Occupied(t.Pos()) {
			return true
		}
	}
	return false
}
