package game

import (
	"math"

	"hexwar/hex"
)

// DefaultAnimationSpeed is the interpolation speed in hexes per second.
const DefaultAnimationSpeed = 2.0

const animationEpsilon = 0.001

func atTarget(u *Unit) bool {
	return math.Abs(u.Anim.Q-float64(u.Pos.Q)) <= animationEpsilon &&
		math.Abs(u.Anim.R-float64(u.Pos.R)) <= animationEpsilon
}

// HasActiveAnimations reports whether any unit is still travelling.
func HasActiveAnimations(units []*Unit) bool {
	for _, u := range units {
		if len(u.Path) > 0 || !atTarget(u) {
			return true
		}
	}
	return false
}

// AdvanceAnimations moves every unit's Anim along its Path, or straight
// towards Pos when it has no path, by speed*dt. It reports whether anything moved.
func AdvanceAnimations(units []*Unit, dt, speed float64) bool {
	if dt <= 0 {
		return false
	}
	updated := false
	for _, u := range units {
		budget := speed * dt
		for budget > 0 && len(u.Path) > 0 {
			next := u.Path[0].Point()
			dist := pointDistance(u.Anim, next)
			if dist <= animationEpsilon || budget >= dist {
				u.Anim = next
				u.Path = u.Path[1:]
				budget -= dist
				updated = true
				continue
			}
			u.Anim = stepTowards(u.Anim, next, budget, dist)
			budget = 0
			updated = true
		}
		if budget <= 0 || atTarget(u) {
			continue
		}
		target := u.Pos.Point()
		dist := pointDistance(u.Anim, target)
		if dist <= animationEpsilon || budget >= dist {
			u.Anim = target
		} else {
			u.Anim = stepTowards(u.Anim, target, budget, dist)
		}
		updated = true
	}
	return updated
}

// FinishAnimations snaps every unit to its position and drops pending paths.
func FinishAnimations(units []*Unit) bool {
	updated := false
	for _, u := range units {
		if len(u.Path) > 0 || !atTarget(u) {
			u.Anim = u.Pos.Point()
			u.Path = nil
			updated = true
		}
	}
	return updated
}

func pointDistance(a, b hex.Point) float64 {
	dq := b.Q - a.Q
	dr := b.R - a.R
	return math.Sqrt(dq*dq + dr*dr)
}

func stepTowards(from, to hex.Point, step, dist float64) hex.Point {
	return hex.Point{
		Q: from.Q + (to.Q-from.Q)/dist*step,
		R: from.R + (to.R-from.R)/dist*step,
	}
}
