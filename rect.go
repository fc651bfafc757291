package easel

// Rect is an axis-aligned integer pixel rectangle.
// The zero value is the empty rectangle.
type Rect struct {
	X, Y, W, H int
}

// RectOf is a convenience function to create a Rect.
func RectOf(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Union returns the smallest rectangle containing both r and s.
// Union with an empty rectangle returns the other rectangle unchanged.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0 := min(r.X, s.X)
	y0 := min(r.Y, s.Y)
	x1 := max(r.X+r.W, s.X+s.W)
	y1 := max(r.Y+r.H, s.Y+s.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the largest rectangle contained in both r and s.
// Returns the zero Rect when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.W, s.X+s.W)
	y1 := min(r.Y+r.H, s.Y+s.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp returns the rectangle clipped to a w×h buffer at origin.
func (r Rect) Clamp(w, h int) Rect {
	return r.Intersect(Rect{W: w, H: h})
}

// Size holds floating-point width and height, used for text layer bounds.
type Size struct {
	W, H float64
}
