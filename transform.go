package easel

import (
	"image"
	"log/slog"
	"math"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
)

// ResizeImage rescales the whole document to w×h: every non-group
// layer's position is scaled, raster buffers are resampled and text
// layers get their font size and bounds scaled by the geometric mean of
// the axis factors. Returns false, leaving the document untouched, for
// dimensions outside [1, MaxCanvasSide].
//
// This is a structural edit, not a command: callers that want it undone
// reload the document. It still marks the document dirty like any other
// mutation.
func (d *Document) ResizeImage(w, h int) bool {
	if !validDims(w, h) {
		Logger().Warn("resize rejected",
			slog.Int("width", w), slog.Int("height", h))
		return false
	}

	sx := float64(w) / float64(d.Width)
	sy := float64(h) / float64(d.Height)
	fontScale := math.Sqrt(sx * sy)

	for _, l := range d.Flatten(false) {
		b := l.Base()
		b.Position.X *= sx
		b.Position.Y *= sy

		switch t := l.(type) {
		case *RasterLayer:
			if t.Image != nil {
				nw := scaleDim(t.BufferBounds.W, sx)
				nh := scaleDim(t.BufferBounds.H, sy)
				t.SetImage(resamplePixmap(t.Image, nw, nh))
			}
			t.BufferBounds.X = int(math.Round(float64(t.BufferBounds.X) * sx))
			t.BufferBounds.Y = int(math.Round(float64(t.BufferBounds.Y) * sy))
		case *TextLayer:
			t.FontSize *= fontScale
			if t.TextBounds != nil {
				t.TextBounds = &Size{W: t.TextBounds.W * sx, H: t.TextBounds.H * sy}
			}
		}
	}

	d.Width = w
	d.Height = h
	d.MarkDirty()
	return true
}

// ResizeCanvas changes the canvas dimensions without scaling any layer
// content; layers keep their positions and may end up partly outside the
// new canvas. Returns false for dimensions outside [1, MaxCanvasSide].
func (d *Document) ResizeCanvas(w, h int) bool {
	if !validDims(w, h) {
		return false
	}
	d.Width = w
	d.Height = h
	d.MarkDirty()
	return true
}

// FlipHorizontal mirrors the document around its vertical axis: raster
// pixels are flipped and every non-group layer is repositioned.
func (d *Document) FlipHorizontal() {
	for _, l := range d.Flatten(false) {
		b := l.Base()
		b.Position.X = float64(d.Width) - (b.Position.X + d.layerExtentW(l))

		if t, ok := l.(*RasterLayer); ok && t.Image != nil {
			t.SetImage(fromRGBA(transform.FlipH(t.Image.ToImage())))
		}
	}
	d.MarkDirty()
}

// FlipVertical mirrors the document around its horizontal axis.
func (d *Document) FlipVertical() {
	for _, l := range d.Flatten(false) {
		b := l.Base()
		b.Position.Y = float64(d.Height) - (b.Position.Y + d.layerExtentH(l))

		if t, ok := l.(*RasterLayer); ok && t.Image != nil {
			t.SetImage(fromRGBA(transform.FlipV(t.Image.ToImage())))
		}
	}
	d.MarkDirty()
}

// RotateCanvas rotates the whole document clockwise by deg, which must be
// 90, 180 or 270. The canvas dimensions swap for quarter turns. Returns
// false, leaving the document untouched, for any other angle.
func (d *Document) RotateCanvas(deg int) bool {
	if deg != 90 && deg != 180 && deg != 270 {
		return false
	}

	oldW := float64(d.Width)
	oldH := float64(d.Height)

	for _, l := range d.Flatten(false) {
		b := l.Base()
		w := d.layerExtentW(l)
		h := d.layerExtentH(l)

		switch deg {
		case 90:
			b.Position.X, b.Position.Y = oldH-(b.Position.Y+h), b.Position.X
		case 180:
			b.Position.X = oldW - (b.Position.X + w)
			b.Position.Y = oldH - (b.Position.Y + h)
		case 270:
			b.Position.X, b.Position.Y = b.Position.Y, oldW-(b.Position.X+w)
		}

		if t, ok := l.(*RasterLayer); ok && t.Image != nil {
			switch deg {
			case 90:
				t.SetImage(rotatePixmap90(t.Image))
			case 270:
				t.SetImage(rotatePixmap270(t.Image))
			default:
				rotated := transform.Rotate(t.Image.ToImage(), 180,
					&transform.RotationOptions{ResizeBounds: true})
				t.SetImage(fromRGBA(rotated))
			}
		}
		if t, ok := l.(*TextLayer); ok && t.TextBounds != nil && deg != 180 {
			t.TextBounds = &Size{W: t.TextBounds.H, H: t.TextBounds.W}
		}
	}

	if deg != 180 {
		d.Width, d.Height = d.Height, d.Width
	}
	d.MarkDirty()
	return true
}

// layerExtentW returns the pixel width a layer occupies, used when
// mirroring positions. Unmeasured text layers count as zero width.
func (d *Document) layerExtentW(l Layer) float64 {
	switch t := l.(type) {
	case *RasterLayer:
		return float64(t.BufferBounds.W)
	case *TextLayer:
		if t.TextBounds != nil {
			return t.TextBounds.W
		}
	}
	return 0
}

func (d *Document) layerExtentH(l Layer) float64 {
	switch t := l.(type) {
	case *RasterLayer:
		return float64(t.BufferBounds.H)
	case *TextLayer:
		if t.TextBounds != nil {
			return t.TextBounds.H
		}
	}
	return 0
}

func validDims(w, h int) bool {
	return w >= 1 && h >= 1 && w <= MaxCanvasSide && h <= MaxCanvasSide
}

func scaleDim(v int, s float64) int {
	n := int(math.Round(float64(v) * s))
	if n < 1 {
		return 1
	}
	return n
}

// rotatePixmap90 returns the pixmap rotated a quarter turn clockwise.
// Quarter turns are pure index permutations: an interpolating rotation
// would blur or drop pixels on buffers whose width and height differ in
// parity.
func rotatePixmap90(src *Pixmap) *Pixmap {
	w, h := src.width, src.height
	dst := NewPixmap(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := (y*w + x) * 4
			di := (x*h + (h - 1 - y)) * 4
			copy(dst.data[di:di+4], src.data[si:si+4])
		}
	}
	return dst
}

// rotatePixmap270 returns the pixmap rotated a quarter turn
// counter-clockwise.
func rotatePixmap270(src *Pixmap) *Pixmap {
	w, h := src.width, src.height
	dst := NewPixmap(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := (y*w + x) * 4
			di := ((w-1-x)*h + y) * 4
			copy(dst.data[di:di+4], src.data[si:si+4])
		}
	}
	return dst
}

// resamplePixmap scales a pixmap to w×h with Catmull-Rom filtering.
func resamplePixmap(src *Pixmap, w, h int) *Pixmap {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src.ToImage(), src.Bounds(), xdraw.Src, nil)
	return fromRGBA(dst)
}

// fromRGBA wraps an image.RGBA's pixels in a Pixmap without copying when
// the stride is tight.
func fromRGBA(img *image.RGBA) *Pixmap {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if img.Stride == w*4 {
		return &Pixmap{width: w, height: h, data: img.Pix[:w*h*4]}
	}
	pm := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		src := y * img.Stride
		dst := y * w * 4
		copy(pm.data[dst:dst+w*4], img.Pix[src:src+w*4])
	}
	return pm
}
