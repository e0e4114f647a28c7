package hex

import (
	"fmt"
	"math"
)

// Axial is a hex grid coordinate. The third cube coordinate s = -q-r is derived, never stored.
type Axial struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Point is a fractional axial position, used for animation.
type Point struct {
	Q float64 `json:"q"`
	R float64 `json:"r"`
}

// Directions lists the six neighbor offsets. Neighbor enumeration always follows this order.
var Directions = [6]Axial{
	{Q: 1, R: 0}, {Q: -1, R: 0},
	{Q: 0, R: 1}, {Q: 0, R: -1},
	{Q: 1, R: -1}, {Q: -1, R: 1},
}

func (a Axial) S() int {
	return -a.Q - a.R
}

func (a Axial) Add(b Axial) Axial {
	return Axial{Q: a.Q + b.Q, R: a.R + b.R}
}

// Key renders the coordinate as "q,r".
func (a Axial) Key() string {
	return fmt.Sprintf("%d,%d", a.Q, a.R)
}

func (a Axial) String() string {
	return a.Key()
}

// Point returns the coordinate as a fractional position.
func (a Axial) Point() Point {
	return Point{Q: float64(a.Q), R: float64(a.R)}
}

// Neighbors returns the six adjacent coordinates in Directions order.
func (a Axial) Neighbors() []Axial {
	out := make([]Axial, 0, len(Directions))
	for _, d := range Directions {
		out = append(out, a.Add(d))
	}
	return out
}

// Distance is the hex distance between a and b, computed in cube coordinates.
func Distance(a, b Axial) int {
	dx := abs(a.Q - b.Q)
	dz := abs(a.R - b.R)
	dy := abs(a.S() - b.S())
	return (dx + dy + dz) / 2
}

// ToPixel converts a coordinate to the pixel center of a pointy-top hex of the given size.
func ToPixel(a Axial, size float64) (x, y float64) {
	x = size * (math.Sqrt(3)*float64(a.Q) + math.Sqrt(3)/2*float64(a.R))
	y = size * (3.0 / 2.0 * float64(a.R))
	return x, y
}

// FromPixel converts a pixel position back to the hex containing it.
func FromPixel(x, y, size float64) Axial {
	q := (math.Sqrt(3)/3*x - 1.0/3*y) / size
	r := (2.0 / 3 * y) / size
	return Round(Point{Q: q, R: r})
}

// Round snaps a fractional coordinate to the nearest hex. The cube component
// with the largest rounding residual is recomputed from the other two.
func Round(p Point) Axial {
	x := p.Q
	z := p.R
	y := -x - z

	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	xDiff := math.Abs(rx - x)
	yDiff := math.Abs(ry - y)
	zDiff := math.Abs(rz - z)

	if xDiff > yDiff && xDiff > zDiff {
		rx = -ry - rz
	} else if yDiff > zDiff {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}

	return Axial{Q: int(rx), R: int(rz)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
