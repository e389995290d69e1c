// Package layout places the error bubbles with a spiral circle packing and ranks
// error entries onto the intensity palette.
package layout

import (
	"math"
	"sort"
)

const (
	// MaxAttempts bounds the spiral search for a single circle.
	MaxAttempts = 5000

	angleStep    = 0.5
	distanceStep = 0.5
)

// Circle is one item to place.
type Circle struct {
	ID     int
	Label  string
	Radius float64
}

// Placement is a placed circle. Capped reports that the search ran out of attempts and
// the last candidate position was kept even though it may overlap.
type Placement struct {
	Circle
	X      float64
	Y      float64
	Capped bool
}

// Pack sorts circles by radius, largest first, and places each one on an outward spiral
// around the first until it no longer overlaps anything already placed. Touching circles
// do not count as overlapping. The result is in placement order.
func Pack(circles []Circle) []Placement {
	items := make([]Circle, len(circles))
	copy(items, circles)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Radius > items[j].Radius })

	placed := make([]Placement, 0, len(items))
	for i, c := range items {
		if i == 0 {
			placed = append(placed, Placement{Circle: c})
			continue
		}
		placed = append(placed, place(c, placed))
	}
	return placed
}

func place(c Circle, placed []Placement) Placement {
	angle := 0.0
	distance := c.Radius + placed[0].Radius
	var x, y float64
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		x = math.Cos(angle) * distance
		y = math.Sin(angle) * distance
		if !collides(x, y, c.Radius, placed) {
			return Placement{Circle: c, X: x, Y: y}
		}
		angle += angleStep
		distance += distanceStep
	}
	return Placement{Circle: c, X: x, Y: y, Capped: true}
}

func collides(x, y, r float64, placed []Placement) bool {
	for _, p := range placed {
		if math.Hypot(x-p.X, y-p.Y) < r+p.Radius {
			return true
		}
	}
	return false
}

// Overlaps reports whether any two placements intersect.
func Overlaps(placements []Placement) bool {
	for i := range placements {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			if math.Hypot(a.X-b.X, a.Y-b.Y) < a.Radius+b.Radius {
				return true
			}
		}
	}
	return false
}
