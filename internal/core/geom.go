// Package core holds the small value types shared by the game and its
// hosts: colours, rectangles, touch events, the runtime configuration a host
// hands a session and the terminal cell buffer. It imports no UI library.
package core

// Rect is an axis-aligned box in terminal cells. The right and bottom edges
// are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies in r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h box centred in r. Boxes larger than r overhang it
// evenly on both sides.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
