package ai

import (
	"math"

	"hexwar/game"
	"hexwar/hex"
)

// findTarget walks the target cascade: an open capture, a tile next to an
// enemy HQ while ahead on holdings, a tile next to an enemy-held capture, and
// finally the nearest enemy unit.
func (t *turn) findTarget(u *game.Unit, allowFree bool) (hex.Axial, bool) {
	if allowFree {
		if target, ok := t.closestOpenCapture(u); ok {
			return target, true
		}
	}

	if t.s.Holdings(u.Owner) > t.s.Holdings(u.Owner.Opponent()) {
		for _, hq := range t.s.Units.Headquarters(u.Owner.Opponent()) {
			if target, ok := t.closestFreeTileInRange(u, hq.Pos); ok {
				return target, true
			}
		}
	}

	var best hex.Axial
	found := false
	bestDistance := math.MaxInt
	for _, tile := range t.s.Board.Tiles() {
		if !tile.Field.Capturable() {
			continue
		}
		occupant := t.s.Units.At(tile.Pos())
		if occupant == nil || occupant.Owner == u.Owner {
			continue
		}
		target, ok := t.closestFreeTileInRange(u, tile.Pos())
		if !ok {
			continue
		}
		if d := hex.Distance(u.Pos, target); d < bestDistance {
			bestDistance = d
			best = target
			found = true
		}
	}
	if found {
		return best, true
	}

	for _, enemy := range t.s.Units.Owned(u.Owner.Opponent()) {
		if d := hex.Distance(u.Pos, enemy.Pos); d < bestDistance {
			bestDistance = d
			best = enemy.Pos
			found = true
		}
	}
	return best, found
}

func (t *turn) closestOpenCapture(u *game.Unit) (hex.Axial, bool) {
	var best hex.Axial
	found := false
	bestDistance := math.MaxInt
	for _, tile := range t.s.Board.Tiles() {
		if !tile.Field.Capturable() || t.s.Units.Occupied(tile.Pos()) {
			continue
		}
		if d := hex.Distance(u.Pos, tile.Pos()); d < bestDistance {
			bestDistance = d
			best = tile.Pos()
			found = true
		}
	}
	return best, found
}

// closestFreeTileInRange finds a free land tile from which u could strike
// center, nearest to u first and nearest to center on ties.
func (t *turn) closestFreeTileInRange(u *game.Unit, center hex.Axial) (hex.Axial, bool) {
	var best hex.Axial
	found := false
	bestDistance, bestCenterDistance := math.MaxInt, math.MaxInt
	for _, tile := range t.s.Board.Tiles() {
		if tile.Field == game.Ocean || t.s.Units.Occupied(tile.Pos()) {
			continue
		}
		centerDistance := hex.Distance(tile.Pos(), center)
		if centerDistance > u.AttackRange {
			continue
		}
		unitDistance := hex.Distance(u.Pos, tile.Pos())
		if unitDistance < bestDistance || (unitDistance == bestDistance && centerDistance < bestCenterDistance) {
			bestDistance = unitDistance
			bestCenterDistance = centerDistance
			best = tile.Pos()
			found = true
		}
	}
	return best, found
}
