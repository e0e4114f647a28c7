package game

import "hexwar/hex"

// Reachable maps reachable coordinates to their cumulative movement cost.
// Order records first discovery so scans reproduce the search's tie-breaking.
type Reachable struct {
	costs map[hex.Axial]int
	order []hex.Axial
}

func newReachable() *Reachable {
	return &Reachable{costs: make(map[hex.Axial]int)}
}

func (r *Reachable) set(a hex.Axial, cost int) {
	if _, seen := r.costs[a]; !seen {
		r.order = append(r.order, a)
	}
	r.costs[a] = cost
}

func (r *Reachable) without(a hex.Axial) *Reachable {
	out := newReachable()
	for _, t := range r.order {
		if t != a {
			out.set(t, r.costs[t])
		}
	}
	return out
}

// Cost returns the cumulative cost of reaching a.
func (r *Reachable) Cost(a hex.Axial) (int, bool) {
	if r == nil {
		return 0, false
	}
	c, ok := r.costs[a]
	return c, ok
}

func (r *Reachable) Contains(a hex.Axial) bool {
	_, ok := r.Cost(a)
	return ok
}

// Tiles returns the reachable coordinates in discovery order.
func (r *Reachable) Tiles() []hex.Axial {
	if r == nil {
		return nil
	}
	return r.order
}

func (r *Reachable) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Map copies the costs into a plain map.
func (r *Reachable) Map() map[hex.Axial]int {
	out := make(map[hex.Axial]int, r.Len())
	for _, a := range r.Tiles() {
		out[a] = r.costs[a]
	}
	return out
}

// Overlay is an ordered set of highlighted coordinates.
type Overlay struct {
	set   map[hex.Axial]struct{}
	order []hex.Axial
}

func newOverlay() *Overlay {
	return &Overlay{set: make(map[hex.Axial]struct{})}
}

func (o *Overlay) add(a hex.Axial) {
	if _, ok := o.set[a]; ok {
		return
	}
	o.set[a] = struct{}{}
	o.order = append(o.order, a)
}

func (o *Overlay) Contains(a hex.Axial) bool {
	if o == nil {
		return false
	}
	_, ok := o.set[a]
	return ok
}

// Tiles returns the highlighted coordinates in scan order.
func (o *Overlay) Tiles() []hex.Axial {
	if o == nil {
		return nil
	}
	return o.order
}

func (o *Overlay) Len() int {
	if o == nil {
		return 0
	}
	return len(o.order)
}

// Map copies the overlay into a plain set.
func (o *Overlay) Map() map[hex.Axial]bool {
	out := make(map[hex.Axial]bool, o.Len())
	for _, a := range o.Tiles() {
		out[a] = true
	}
	return out
}
