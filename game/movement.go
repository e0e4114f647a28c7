package game

import "hexwar/hex"

// Probe describes a hypothetical unit for read-only reachability queries,
// such as previewing the drop tiles of a purchase.
type Probe struct {
	Type     UnitType
	Owner    Player
	Pos      hex.Axial
	Movement int
}

// ProbeFor describes a freshly bought unit of type t standing at pos.
func ProbeFor(t UnitType, owner Player, pos hex.Axial) Probe {
	return Probe{Type: t, Owner: owner, Pos: pos, Movement: t.Data().MaxMovement}
}

func (u *Unit) probe() Probe {
	return Probe{Type: u.Type, Owner: u.Owner, Pos: u.Pos, Movement: u.RemainingMovement}
}

type frontierEntry struct {
	pos  hex.Axial
	cost int
}

type searchResult struct {
	dist   *Reachable
	parent map[hex.Axial]hex.Axial
}

// search is a uniform-cost search bounded by the probe's movement. The
// frontier is a plain slice scanned linearly for the cheapest entry; on equal
// costs the earliest entry wins.
func search(s *State, p Probe, neighbors NeighborsFunc) searchResult {
	res := searchResult{
		dist:   newReachable(),
		parent: make(map[hex.Axial]hex.Axial),
	}
	start := p.Pos
	res.dist.set(start, 0)
	open := []frontierEntry{{pos: start, cost: 0}}

	for len(open) > 0 {
		bestIdx := 0
		for i := 1; i < len(open); i++ {
			if open[i].cost < open[bestIdx].cost {
				bestIdx = i
			}
		}
		current := open[bestIdx]
		open = append(open[:bestIdx], open[bestIdx+1:]...)

		if best, _ := res.dist.Cost(current.pos); current.cost != best {
			// outdated entry
			continue
		}

		for _, n := range neighbors(current.pos) {
			if !passable(n) {
				continue
			}
			np := n.Pos()
			if np != start && s.Units.Occupied(np) {
				continue
			}
			next := current.cost + n.MovementCost()
			if next > p.Movement {
				continue
			}
			if old, seen := res.dist.Cost(np); !seen || next < old {
				res.dist.set(np, next)
				res.parent[np] = current.pos
				open = append(open, frontierEntry{pos: np, cost: next})
			}
		}
	}
	return res
}

func passable(t *Tile) bool {
	return t.Field != Ocean
}

// ReachableTiles returns every tile u can end its move on with its remaining
// movement, mapped to the cumulative cost. The start tile is never included.
func ReachableTiles(s *State, u *Unit, neighbors NeighborsFunc) *Reachable {
	return ReachableFor(s, u.probe(), neighbors)
}

// ReachableFor runs the reachability search for a hypothetical unit without
// touching the roster.
func ReachableFor(s *State, p Probe, neighbors NeighborsFunc) *Reachable {
	return search(s, p, neighbors).dist.without(p.Pos)
}

// TryMove moves u to target if target is in reach and still free, spending the
// recorded cost. On any rejection nothing changes.
func TryMove(s *State, u *Unit, target hex.Axial, reach *Reachable) bool {
	cost, ok := reach.Cost(target)
	if !ok {
		return false
	}
	if cost > u.RemainingMovement {
		return false
	}
	if s.Units.Occupied(target) {
		return false
	}
	if !s.Units.Move(u, target) {
		return false
	}
	u.RemainingMovement -= cost
	return true
}

// PathTo re-derives the step sequence from u's position to target, start
// excluded and target included. It returns nil when target is out of reach.
func PathTo(s *State, u *Unit, target hex.Axial, neighbors NeighborsFunc) []hex.Axial {
	if target == u.Pos {
		return nil
	}
	res := search(s, u.probe(), neighbors)
	if !res.dist.Contains(target) {
		return nil
	}
	var reversed []hex.Axial
	for at := target; at != u.Pos; at = res.parent[at] {
		reversed = append(reversed, at)
	}
	path := make([]hex.Axial, len(reversed))
	for i, step := range reversed {
		path[len(reversed)-1-i] = step
	}
	return path
}
