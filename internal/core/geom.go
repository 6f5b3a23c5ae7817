// Package core provides fundamental types shared by the SkillQuest front-end:
// colors, a character screen buffer, layout rectangles and the fixed-step
// clock. It has no external dependencies (especially no Bubble Tea) so the
// drawing and timing logic stays pure and testable.
package core

// Rect is an axis-aligned region of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
// The result never has negative dimensions.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(0, r.W-2*n),
		H: max(0, r.H-2*n),
	}
}

// SplitH cuts the rectangle vertically at the given fraction of its width.
// The left part gets floor(W*frac) columns, the right part the rest.
func (r Rect) SplitH(frac float64) (Rect, Rect) {
	lw := int(float64(r.W) * ClampF(frac, 0, 1))
	left := Rect{X: r.X, Y: r.Y, W: lw, H: r.H}
	right := Rect{X: r.X + lw, Y: r.Y, W: r.W - lw, H: r.H}
	return left, right
}

// SplitV cuts the rectangle horizontally, giving the top part h rows.
func (r Rect) SplitV(h int) (Rect, Rect) {
	h = Clamp(h, 0, r.H)
	top := Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	bottom := Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	return top, bottom
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
