package easel

import "testing"

// Verify at compile time that every variant implements Layer.
var (
	_ Layer = (*GroupLayer)(nil)
	_ Layer = (*RasterLayer)(nil)
	_ Layer = (*TextLayer)(nil)
)

func TestNewLayerID_Unique(t *testing.T) {
	seen := make(map[LayerID]bool)
	for i := 0; i < 100; i++ {
		id := NewLayerID()
		if id == NoLayer {
			t.Fatal("NewLayerID returned the empty ID")
		}
		if seen[id] {
			t.Fatalf("duplicate ID %q", id)
		}
		seen[id] = true
	}
}

func TestLayerDefaults(t *testing.T) {
	g := NewGroupLayer("g")
	if !g.Visible || g.Opacity != 1 || g.Blend != BlendNormal {
		t.Errorf("group defaults = (%v, %v, %v)", g.Visible, g.Opacity, g.Blend)
	}
	if !g.Expanded {
		t.Error("new group is collapsed")
	}
	if g.Kind() != KindGroup {
		t.Errorf("Kind() = %v, want Group", g.Kind())
	}

	r := NewRasterLayer("r", 32, 16)
	if r.Kind() != KindRaster {
		t.Errorf("Kind() = %v, want Raster", r.Kind())
	}
	if r.Image.Width() != 32 || r.Image.Height() != 16 {
		t.Errorf("buffer = %dx%d, want 32x16", r.Image.Width(), r.Image.Height())
	}
	if r.BufferBounds != RectOf(0, 0, 32, 16) {
		t.Errorf("BufferBounds = %+v", r.BufferBounds)
	}

	e := NewEmptyRasterLayer("e")
	if e.Image != nil {
		t.Error("empty raster layer allocated a buffer")
	}

	tl := NewTextLayer("t", "hi")
	if tl.Kind() != KindText {
		t.Errorf("Kind() = %v, want Text", tl.Kind())
	}
	if tl.FontSize != 16 || tl.LineHeight != 1.2 || tl.Color != Black {
		t.Errorf("text defaults = (%v, %v, %v)", tl.FontSize, tl.LineHeight, tl.Color)
	}
	if tl.TextBounds != nil {
		t.Error("new text layer has measured bounds")
	}
}

func TestRasterLayer_SetImage(t *testing.T) {
	r := NewRasterLayer("r", 10, 10)
	r.SetImage(NewPixmap(20, 5))

	if r.BufferBounds.W != 20 || r.BufferBounds.H != 5 {
		t.Errorf("BufferBounds after SetImage = %+v, want 20x5", r.BufferBounds)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{KindGroup.String(), "Group"},
		{KindText.String(), "Text"},
		{LayerKind(99).String(), "Unknown"},
		{BlendMultiply.String(), "Multiply"},
		{BlendMode(99).String(), "Unknown"},
		{ColorGrayscale.String(), "Grayscale"},
		{AlignCenter.String(), "Center"},
		{WritingVertical.String(), "Vertical"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
