package easel

import "testing"

// TestRectEmpty verifies the zero value and degenerate shapes count as
// empty.
func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{}, true},
		{RectOf(5, 5, 0, 10), true},
		{RectOf(5, 5, 10, -1), true},
		{RectOf(-5, -5, 1, 1), false},
		{RectOf(0, 0, 10, 10), false},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

// TestRectContains checks the half-open pixel bounds.
func TestRectContains(t *testing.T) {
	r := RectOf(10, 20, 5, 5)
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 20, true},
		{14, 24, true},
		{15, 24, false}, // right edge exclusive
		{14, 25, false}, // bottom edge exclusive
		{9, 20, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// TestRectUnion verifies covering behavior and the empty identity.
func TestRectUnion(t *testing.T) {
	a := RectOf(0, 0, 10, 10)
	b := RectOf(20, 5, 10, 10)

	if got, want := a.Union(b), RectOf(0, 0, 30, 15); got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %+v, want %+v", got, b)
	}
}

// TestRectIntersect covers overlap, containment, and disjoint cases.
func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", RectOf(0, 0, 10, 10), RectOf(5, 5, 10, 10), RectOf(5, 5, 5, 5)},
		{"contained", RectOf(0, 0, 20, 20), RectOf(4, 4, 2, 2), RectOf(4, 4, 2, 2)},
		{"disjoint", RectOf(0, 0, 5, 5), RectOf(10, 10, 5, 5), Rect{}},
		{"touching edges", RectOf(0, 0, 5, 5), RectOf(5, 0, 5, 5), Rect{}},
	}
	for _, tt := range tests {
		if got := tt.a.Intersect(tt.b); got != tt.want {
			t.Errorf("%s: Intersect = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

// TestRectClamp verifies clipping against a buffer at origin.
func TestRectClamp(t *testing.T) {
	if got, want := RectOf(-5, -5, 20, 20).Clamp(10, 10), RectOf(0, 0, 10, 10); got != want {
		t.Errorf("Clamp = %+v, want %+v", got, want)
	}
	if got := RectOf(50, 50, 10, 10).Clamp(20, 20); !got.Empty() {
		t.Errorf("Clamp fully outside = %+v, want empty", got)
	}
}
