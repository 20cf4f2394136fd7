// layout.go
package render

import (
	"math"

	"identicon/internal/dot"
)

// Point is a dot center in pixels.
type Point struct {
	X, Y float64
}

// Layout returns the dot centers for a square canvas of the given size.
// Index i receives icon.Colors[i]; the last entry is the canvas center.
func Layout(size int) [dot.Dots]Point {
	c := float64(size) / 2
	r := c / 4 * 3
	var (
		rroot3o2 = r * math.Sqrt(3) / 2
		ro2      = r / 2
		rroot3o4 = r * math.Sqrt(3) / 4
		ro4      = r / 4
		r3o4     = r * 3 / 4
	)
	return [dot.Dots]Point{
		{c, c - r},
		{c, c - ro2},
		{c - rroot3o4, c - r3o4},
		{c - rroot3o2, c - ro2},
		{c - rroot3o4, c - ro4},
		{c - rroot3o2, c},
		{c - rroot3o2, c + ro2},
		{c - rroot3o4, c + ro4},
		{c - rroot3o4, c + r3o4},
		{c, c + r},
		{c, c + ro2},
		{c + rroot3o4, c + r3o4},
		{c + rroot3o2, c + ro2},
		{c + rroot3o4, c + ro4},
		{c + rroot3o2, c},
		{c + rroot3o2, c - ro2},
		{c + rroot3o4, c - ro4},
		{c + rroot3o4, c - r3o4},
		{c, c},
	}
}

// DotRadius is the radius of each of the 19 dots.
func DotRadius(size int) float64 {
	return float64(size) / 64 * 5
}
