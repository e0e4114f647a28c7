package game

import (
	"math"

	"github.com/rs/zerolog/log"

	"hexwar/hex"
	"hexwar/meta"
)

// Dice is the uniform random source combat draws from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Dice interface {
	Intn(n int) int
}

// Rolls are the three random draws of one attack.
type Rolls struct {
	Attacker int // 0..99
	Defender int // 0..99
	Damage   int // 1..5
}

// Roll draws a fresh set of combat rolls.
func Roll(d Dice) Rolls {
	return Rolls{
		Attacker: d.Intn(100),
		Defender: d.Intn(100),
		Damage:   d.Intn(5) + 1,
	}
}

// Preview is a resolved but unapplied attack.
type Preview struct {
	AttackerID    UnitID
	DefenderID    UnitID
	AttackerPos   hex.Axial
	DefenderPos   hex.Axial
	AttackerOwner Player

	AttackBase  int
	DefenseBase int

	MinAttacker    float64
	MaxAttacker    float64
	RandomAttacker int
	AttackPower    int

	MinDefender    float64
	MaxDefender    float64
	RandomDefender int
	DefensePower   int

	Distance           int
	DefenderCanCounter bool

	Result       int
	RandomDamage int

	DamageDefender int
	DamageAttacker int
}

// TerrainDefense returns the defense bonus of the tile at a, or 0 off the board.
func TerrainDefense(s *State, a hex.Axial) int {
	t := s.Tile(a)
	if t == nil {
		return 0
	}
	return t.Field.Def().Defense
}

// ComputePreview resolves an attack for the given rolls without mutating anything.
func ComputePreview(s *State, attacker, defender *Unit, rolls Rolls) Preview {
	attackBase := attacker.EffectiveOffense()
	defenseBase := defender.EffectiveDefense() + TerrainDefense(s, defender.Pos)

	distance := hex.Distance(attacker.Pos, defender.Pos)
	canCounter := distance <= defender.AttackRange

	minAttacker := float64(attackBase) - float64(attackBase)*0.25
	maxAttacker := float64(attackBase) + float64(attackBase)*0.5
	attackPower := int(math.Floor(minAttacker + (maxAttacker-minAttacker)*(float64(rolls.Attacker)/100.0)))

	minDefender := float64(defenseBase) - float64(defenseBase)*0.1
	maxDefender := float64(defenseBase) + float64(defenseBase)*0.1
	defensePower := int(math.Floor(minDefender + (maxDefender-minDefender)*(float64(rolls.Defender)/100.0)))

	result := attackPower - defensePower

	damageDefender := rolls.Damage
	if result >= 5 {
		damageDefender = result + rolls.Damage
	}

	damageAttacker := 0
	if canCounter {
		if result < 0 {
			damageAttacker = -result + rolls.Damage
		} else {
			damageAttacker = rolls.Damage
		}
	}

	return Preview{
		AttackerID:    attacker.ID,
		DefenderID:    defender.ID,
		AttackerPos:   attacker.Pos,
		DefenderPos:   defender.Pos,
		AttackerOwner: attacker.Owner,

		AttackBase:  attackBase,
		DefenseBase: defenseBase,

		MinAttacker:    minAttacker,
		MaxAttacker:    maxAttacker,
		RandomAttacker: rolls.Attacker,
		AttackPower:    attackPower,

		MinDefender:    minDefender,
		MaxDefender:    maxDefender,
		RandomDefender: rolls.Defender,
		DefensePower:   defensePower,

		Distance:           distance,
		DefenderCanCounter: canCounter,

		Result:       result,
		RandomDamage: rolls.Damage,

		DamageDefender: damageDefender,
		DamageAttacker: damageAttacker,
	}
}

// ApplyCombat commits a preview on behalf of actor. Both units are looked up
// again by their recorded positions; the attack is refused if either is gone
// or replaced, if the attacker does not belong to actor, or if it already
// acted. Dead units are removed and returned.
func ApplyCombat(s *State, p Preview, actor Player) ([]*Unit, bool) {
	attacker := s.Units.At(p.AttackerPos)
	defender := s.Units.At(p.DefenderPos)
	if attacker == nil || defender == nil {
		return nil, false
	}
	if attacker.ID != p.AttackerID || defender.ID != p.DefenderID {
		return nil, false
	}
	if attacker.Owner != actor || attacker.Acted {
		return nil, false
	}

	defender.HP = max(0, defender.HP-p.DamageDefender)
	attacker.HP = max(0, attacker.HP-p.DamageAttacker)
	attacker.GainExperience()
	attacker.Acted = true

	dead := s.Units.RemoveDead()

	log.Debug().
		Int("attacker", int(attacker.ID)).
		Int("defender", int(defender.ID)).
		Int("damage_defender", p.DamageDefender).
		Int("damage_attacker", p.DamageAttacker).
		Int("destroyed", len(dead)).
		Msg("combat applied")

	return dead, true
}

// AttackOverlay marks enemy units within u's attack range, in roster order.
func AttackOverlay(s *State, u *Unit) *Overlay {
	o := newOverlay()
	for _, other := range s.Units.All() {
		if other.Owner == u.Owner {
			continue
		}
		if hex.Distance(u.Pos, other.Pos) <= u.AttackRange {
			o.add(other.Pos)
		}
	}
	return o
}

// HealOverlay marks friendly units, other than the healer, within its range.
func HealOverlay(s *State, healer *Unit) *Overlay {
	o := newOverlay()
	for _, other := range s.Units.All() {
		if other.Owner != healer.Owner || other.ID == healer.ID {
			continue
		}
		if hex.Distance(healer.Pos, other.Pos) <= healer.AttackRange {
			o.add(other.Pos)
		}
	}
	return o
}

// RoadOverlay marks tiles within the engineer's range where a road can be built.
func RoadOverlay(s *State, engineer *Unit) *Overlay {
	o := newOverlay()
	for _, t := range s.Board.Tiles() {
		if !RoadBuildable(s, t) {
			continue
		}
		if hex.Distance(engineer.Pos, t.Pos()) <= engineer.AttackRange {
			o.add(t.Pos())
		}
	}
	return o
}

// OverlayFor picks the overlay matching u's role.
func OverlayFor(s *State, u *Unit) *Overlay {
	switch u.Type {
	case Medic:
		return HealOverlay(s, u)
	case Engineer:
		return RoadOverlay(s, u)
	}
	return AttackOverlay(s, u)
}

// RoadBuildable reports whether t is land without a road and free of units.
func RoadBuildable(s *State, t *Tile) bool {
	if t.Field == Ocean || t.HasRoad {
		return false
	}
	return !s.Units.Occupied(t.Pos())
}

// Heal restores target's HP from healer. Healing a unit at full health is refused.
func Heal(healer, target *Unit) bool {
	if healer.Type != Medic || healer.Acted {
		return false
	}
	if target.Owner != healer.Owner || target.ID == healer.ID {
		return false
	}
	healed := min(target.MaxHP, target.HP+meta.HEAL_AMOUNT)
	if healed == target.HP {
		return false
	}
	target.HP = healed
	healer.GainExperience()
	healer.Acted = true
	return true
}

// Spender charges a player; it reports false when funds are insufficient.
type Spender interface {
	Spend(player Player, cost int) bool
}

// BuildRoad lays a road on t for the engineer's owner, charging meta.ROAD_COST.
func BuildRoad(s *State, engineer *Unit, t *Tile, ledger Spender) bool {
	if engineer.Type != Engineer || engineer.Acted {
		return false
	}
	if !RoadBuildable(s, t) {
		return false
	}
	if !ledger.Spend(engineer.Owner, meta.ROAD_COST) {
		return false
	}
	t.HasRoad = true
	engineer.Acted = true
	return true
}
