package ai

import (
	"math"

	"golang.org/x/exp/slices"

	"hexwar/game"
	"hexwar/hex"
	"hexwar/meta"
)

const retreatHP = meta.RETREAT_HP

// turn carries the facts fixed at the start of the acting phase.
type turn struct {
	s                 *game.State
	me                game.Player
	unclaimedCaptures bool
	unactedCavalry    bool
}

func newTurn(s *game.State, me game.Player) *turn {
	t := &turn{s: s, me: me, unclaimedCaptures: hasUnclaimedCapture(s)}
	for _, u := range s.Units.Owned(me) {
		if u.Type == game.Cavalry && !u.Acted {
			t.unactedCavalry = true
			break
		}
	}
	return t
}

// actingOrder lists the seat's non-HQ units. While captures are open, Cavalry
// go first and the rest follow by q then r.
func (t *turn) actingOrder() []*game.Unit {
	var units []*game.Unit
	for _, u := range t.s.Units.Owned(t.me) {
		if !u.IsHeadquarter() {
			units = append(units, u)
		}
	}
	if !t.unclaimedCaptures {
		return units
	}
	slices.SortStableFunc(units, func(a, b *game.Unit) int {
		if pa, pb := cavalryRank(a), cavalryRank(b); pa != pb {
			return pa - pb
		}
		if a.Pos.Q != b.Pos.Q {
			return a.Pos.Q - b.Pos.Q
		}
		return a.Pos.R - b.Pos.R
	})
	return units
}

func cavalryRank(u *game.Unit) int {
	if u.Type == game.Cavalry {
		return 0
	}
	return 1
}

func (t *turn) heal(medic *game.Unit) bool {
	var best *game.Unit
	lowest := 1.0
	for _, u := range t.s.Units.Owned(medic.Owner) {
		if u.ID == medic.ID || u.HP >= u.MaxHP {
			continue
		}
		if hex.Distance(medic.Pos, u.Pos) > medic.AttackRange {
			continue
		}
		if ratio := hpRatio(u); ratio < lowest {
			lowest = ratio
			best = u
		}
	}
	if best == nil {
		return false
	}
	return game.Heal(medic, best)
}

func (t *turn) moveToInjured(medic *game.Unit) bool {
	var target *hex.Axial
	lowest := 1.0
	bestDistance := math.MaxInt
	for _, u := range t.s.Units.Owned(medic.Owner) {
		if u.ID == medic.ID || u.HP >= u.MaxHP {
			continue
		}
		ratio := hpRatio(u)
		distance := hex.Distance(medic.Pos, u.Pos)
		if ratio < lowest || (ratio == lowest && distance < bestDistance) {
			lowest = ratio
			bestDistance = distance
			pos := u.Pos
			target = &pos
		}
	}
	if target == nil {
		return false
	}
	return t.stepToward(medic, *target, true)
}

func hpRatio(u *game.Unit) float64 {
	return float64(u.HP) / float64(u.MaxHP)
}

// buildRoad lays a road on the overlay tile that deviates least from the
// straight line between the nearest own and enemy headquarters.
func (t *turn) buildRoad(engineer *game.Unit, ledger Ledger) bool {
	if engineer.Acted {
		return false
	}
	own := t.closestHeadquarter(engineer.Owner, engineer.Pos)
	enemy := t.closestHeadquarter(engineer.Owner.Opponent(), engineer.Pos)
	if own == nil || enemy == nil {
		return false
	}

	span := hex.Distance(own.Pos, enemy.Pos)
	var best *game.Tile
	bestAlignment, bestEnemyDistance := math.MaxInt, math.MaxInt
	for _, pos := range game.RoadOverlay(t.s, engineer).Tiles() {
		tile := t.s.Tile(pos)
		if tile == nil || tile.Field.Capturable() {
			continue
		}
		toEnemy := hex.Distance(pos, enemy.Pos)
		toOwn := hex.Distance(pos, own.Pos)
		alignment := abs(toOwn + toEnemy - span)
		if alignment < bestAlignment || (alignment == bestAlignment && toEnemy < bestEnemyDistance) {
			bestAlignment = alignment
			bestEnemyDistance = toEnemy
			best = tile
		}
	}
	if best == nil {
		return false
	}
	return game.BuildRoad(t.s, engineer, best, ledger)
}

func (t *turn) moveEngineer(engineer *game.Unit) bool {
	enemy := t.closestHeadquarter(engineer.Owner.Opponent(), engineer.Pos)
	if enemy == nil {
		return false
	}
	return t.stepToward(engineer, enemy.Pos, true)
}

// retreat heads for the nearest friendly Medic, or the nearest own HQ when
// there is none.
func (t *turn) retreat(u *game.Unit) bool {
	var target *hex.Axial
	bestDistance := math.MaxInt
	for _, ally := range t.s.Units.Owned(u.Owner) {
		if ally.Type != game.Medic {
			continue
		}
		if d := hex.Distance(u.Pos, ally.Pos); d < bestDistance {
			bestDistance = d
			pos := ally.Pos
			target = &pos
		}
	}
	if target == nil {
		if hq := t.closestHeadquarter(u.Owner, u.Pos); hq != nil {
			pos := hq.Pos
			target = &pos
		}
	}
	if target == nil {
		return false
	}
	return t.stepToward(u, *target, false)
}

// attack previews a strike on the nearest enemy in range. It does not mark
// the attacker; that happens when the preview is applied.
func (t *turn) attack(attacker *game.Unit, dice game.Dice) (CombatEntry, bool) {
	if attacker.Type == game.Engineer || attacker.Acted {
		return CombatEntry{}, false
	}
	var target *game.Unit
	bestDistance := math.MaxInt
	for _, u := range t.s.Units.All() {
		if u.Owner == attacker.Owner {
			continue
		}
		d := hex.Distance(attacker.Pos, u.Pos)
		if d > attacker.AttackRange {
			continue
		}
		if d < bestDistance {
			bestDistance = d
			target = u
		}
	}
	if target == nil {
		return CombatEntry{}, false
	}
	return CombatEntry{
		Preview:  game.ComputePreview(t.s, attacker, target, game.Roll(dice)),
		Attacker: game.SnapshotUnit(attacker),
		Defender: game.SnapshotUnit(target),
	}, true
}

// move advances a combat unit toward the target cascade. Units already
// holding a City or Industry stay put.
func (t *turn) move(u *game.Unit) bool {
	if u.Acted || u.RemainingMovement <= 0 {
		return false
	}
	if tile := t.s.Tile(u.Pos); tile != nil && tile.Field.Capturable() {
		return false
	}
	reserve := t.unclaimedCaptures && u.Type != game.Cavalry && t.unactedCavalry
	target, ok := t.findTarget(u, !reserve)
	if !ok {
		return false
	}
	return t.stepToward(u, target, false)
}

// stepToward moves u to the reachable tile closest to target, first found
// wins on ties.
func (t *turn) stepToward(u *game.Unit, target hex.Axial, skipCaptures bool) bool {
	if u.Acted || u.RemainingMovement <= 0 {
		return false
	}
	reach := game.ReachableTiles(t.s, u, t.s.Neighbors)

	var best *hex.Axial
	bestDistance := math.MaxInt
	for _, pos := range reach.Tiles() {
		if skipCaptures {
			if tile := t.s.Tile(pos); tile != nil && tile.Field.Capturable() {
				continue
			}
		}
		if d := hex.Distance(pos, target); d < bestDistance {
			bestDistance = d
			p := pos
			best = &p
		}
	}
	if best == nil {
		return false
	}

	path := game.PathTo(t.s, u, *best, t.s.Neighbors)
	if path == nil {
		return false
	}
	if !game.TryMove(t.s, u, *best, reach) {
		return false
	}
	u.Acted = true
	u.Path = path
	return true
}

func (t *turn) closestHeadquarter(owner game.Player, from hex.Axial) *game.Unit {
	var best *game.Unit
	bestDistance := math.MaxInt
	for _, hq := range t.s.Units.Headquarters(owner) {
		if d := hex.Distance(from, hq.Pos); d < bestDistance {
			bestDistance = d
			best = hq
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
