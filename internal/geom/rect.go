// Package geom provides the axis-aligned rectangle type used for all
// spatial logic in the engine. It contains no external dependencies to
// keep entity and collision code pure and testable.
package geom

// Rect is an axis-aligned rectangle in logical pixels.
// W and H are never negative.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains returns true if other lies fully inside this rectangle.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X &&
		other.Y >= r.Y &&
		other.Right() <= r.Right() &&
		other.Bottom() <= r.Bottom()
}

// MoveInside translates the rectangle (position only, never size) so that
// it lies fully inside bound, clamping each axis independently. It reports
// false if the rectangle is wider or taller than bound and cannot fit.
func (r Rect) MoveInside(bound Rect) (Rect, bool) {
	if r.W > bound.W || r.H > bound.H {
		return Rect{}, false
	}

	moved := r
	moved.X = clamp(moved.X, bound.X, bound.Right()-moved.W)
	moved.Y = clamp(moved.Y, bound.Y, bound.Bottom()-moved.H)
	return moved, true
}

// clamp restricts a value to be within [min, max].
func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
