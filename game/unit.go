package game

import (
	"hexwar/hex"
	"hexwar/meta"
)

// Player identifies a seat. Only 0 and 1 are valid.
type Player int

// NoPlayer marks the absence of a winner.
const NoPlayer Player = -1

func (p Player) Opponent() Player {
	if p == 0 {
		return 1
	}
	return 0
}

func (p Player) Valid() bool {
	return p == 0 || p == 1
}

// UnitID is a stable arena-allocated identity. Positions change, ids do not.
type UnitID int

// Unit is a piece on the board. Pos is authoritative and must only be changed
// through Roster.Move so the position index stays in sync.
type Unit struct {
	ID                UnitID
	Type              UnitType
	Pos               hex.Axial
	Owner             Player
	HP                int
	MaxHP             int
	Offense           int
	Defense           int
	AttackRange       int
	Experience        int
	RemainingMovement int
	Acted             bool

	// Anim is the interpolated position used by renderers; Path holds the
	// remaining steps of the last AI move.
	Anim hex.Point
	Path []hex.Axial
}

// NewUnit creates a fresh unit of type t with catalogue stats.
func NewUnit(t UnitType, pos hex.Axial, owner Player) *Unit {
	data := t.Data()
	return &Unit{
		Type:              t,
		Pos:               pos,
		Owner:             owner,
		HP:                data.MaxHP,
		MaxHP:             data.MaxHP,
		Offense:           data.Offense,
		Defense:           data.Defense,
		AttackRange:       data.AttackRange,
		RemainingMovement: data.MaxMovement,
		Anim:              pos.Point(),
	}
}

func (u *Unit) Data() UnitTypeData {
	return u.Type.Data()
}

func (u *Unit) IsHeadquarter() bool {
	return u.Type == MilitaryBase
}

// Moved reports whether the unit spent movement this turn.
func (u *Unit) Moved() bool {
	return u.RemainingMovement < u.Data().MaxMovement
}

// ResetForNewTurn restores movement and clears the acted flag. Units that
// neither moved nor acted heal a little.
func (u *Unit) ResetForNewTurn() {
	if !u.Moved() && !u.Acted {
		u.HP = min(u.MaxHP, u.HP+meta.PASSIVE_HEAL)
	}
	u.RemainingMovement = u.Data().MaxMovement
	u.Acted = false
}

// GainExperience adds one point, saturating at the cap.
func (u *Unit) GainExperience() {
	u.Experience = min(meta.MAX_EXPERIENCE, u.Experience+1)
}

// EffectiveOffense includes the experience bonus.
func (u *Unit) EffectiveOffense() int {
	return u.Offense + u.Experience*meta.EXPERIENCE_BONUS
}

// EffectiveDefense includes the experience bonus but not terrain.
func (u *Unit) EffectiveDefense() int {
	return u.Defense + u.Experience*meta.EXPERIENCE_BONUS
}
