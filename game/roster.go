package game

import (
	"fmt"

	"hexwar/hex"
)

// Roster owns all units. It hands out stable ids and keeps a position index
// in sync on every spawn, move and removal. Iteration follows insertion order.
type Roster struct {
	nextID UnitID
	units  map[UnitID]*Unit
	order  []UnitID
	byPos  map[hex.Axial]UnitID
}

func NewRoster() *Roster {
	return &Roster{
		nextID: 1,
		units:  make(map[UnitID]*Unit),
		byPos:  make(map[hex.Axial]UnitID),
	}
}

// Add assigns u a fresh id and places it. It fails if the tile is taken.
func (r *Roster) Add(u *Unit) (UnitID, error) {
	if _, taken := r.byPos[u.Pos]; taken {
		return 0, fmt.Errorf("cannot add %s: %s is occupied", u.Type, u.Pos)
	}
	u.ID = r.nextID
	r.nextID++
	r.units[u.ID] = u
	r.order = append(r.order, u.ID)
	r.byPos[u.Pos] = u.ID
	return u.ID, nil
}

// Get returns the unit with the given id, or nil.
func (r *Roster) Get(id UnitID) *Unit {
	return r.units[id]
}

// At returns the unit standing on a, or nil.
func (r *Roster) At(a hex.Axial) *Unit {
	id, ok := r.byPos[a]
	if !ok {
		return nil
	}
	return r.units[id]
}

func (r *Roster) Occupied(a hex.Axial) bool {
	_, ok := r.byPos[a]
	return ok
}

// Move relocates u to the free tile to. It returns false when the tile is occupied.
func (r *Roster) Move(u *Unit, to hex.Axial) bool {
	if r.units[u.ID] != u {
		return false
	}
	if u.Pos == to {
		return true
	}
	if r.Occupied(to) {
		return false
	}
	delete(r.byPos, u.Pos)
	u.Pos = to
	r.byPos[to] = u.ID
	return true
}

// Remove deletes the unit with the given id.
func (r *Roster) Remove(id UnitID) {
	u, ok := r.units[id]
	if !ok {
		return
	}
	delete(r.units, id)
	if r.byPos[u.Pos] == id {
		delete(r.byPos, u.Pos)
	}
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// RemoveDead removes every unit with HP <= 0 and returns them.
func (r *Roster) RemoveDead() []*Unit {
	var dead []*Unit
	for _, id := range r.order {
		if u := r.units[id]; u.HP <= 0 {
			dead = append(dead, u)
		}
	}
	for _, u := range dead {
		r.Remove(u.ID)
	}
	return dead
}

// All returns the units in insertion order.
func (r *Roster) All() []*Unit {
	out := make([]*Unit, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.units[id])
	}
	return out
}

// Owned returns the units of one player in insertion order.
func (r *Roster) Owned(p Player) []*Unit {
	var out []*Unit
	for _, id := range r.order {
		if u := r.units[id]; u.Owner == p {
			out = append(out, u)
		}
	}
	return out
}

// Headquarters returns the MilitaryBase units of one player.
func (r *Roster) Headquarters(p Player) []*Unit {
	var out []*Unit
	for _, u := range r.Owned(p) {
		if u.IsHeadquarter() {
			out = append(out, u)
		}
	}
	return out
}

func (r *Roster) Len() int {
	return len(r.order)
}
