package easel

import "github.com/google/uuid"

// LayerID uniquely identifies a layer within a document.
// IDs are stable for the lifetime of the document; commands capture
// LayerIDs rather than layer pointers.
type LayerID string

// NoLayer is the zero LayerID, meaning "no layer".
const NoLayer LayerID = ""

// NewLayerID returns a fresh unique layer ID.
func NewLayerID() LayerID {
	return LayerID(uuid.NewString())
}

// LayerKind discriminates the layer variants.
type LayerKind int

const (
	// KindGroup is a container layer holding an ordered stack of children.
	KindGroup LayerKind = iota
	// KindRaster is a pixel layer backed by a Pixmap.
	KindRaster
	// KindText is a vector text layer rendered by an external compositor.
	KindText
)

// String returns a string representation of the layer kind.
func (k LayerKind) String() string {
	switch k {
	case KindGroup:
		return "Group"
	case KindRaster:
		return "Raster"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// BlendMode selects how a layer composites over the content below it.
// The compositor interprets these; the document model only stores them.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendDifference
)

// String returns a string representation of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendDarken:
		return "Darken"
	case BlendLighten:
		return "Lighten"
	case BlendDifference:
		return "Difference"
	default:
		return "Unknown"
	}
}

// EffectKind discriminates layer effect variants.
type EffectKind int

const (
	EffectDropShadow EffectKind = iota
	EffectOuterGlow
	EffectStroke
)

// LayerEffect is a non-destructive effect attached to a layer.
// Effects are stored data only; rendering them is the compositor's job.
type LayerEffect struct {
	Kind    EffectKind
	Enabled bool
	Color   RGBA
	Size    float64
	Opacity float64
}

// Layer is the tagged union of layer variants.
// This is a sealed interface - only types in this package implement it.
//
// Supported layer kinds:
//   - GroupLayer: a container with an ordered stack of child layers
//   - RasterLayer: a pixel layer backed by a Pixmap
//   - TextLayer: editable text with typographic attributes
//
// All variants embed LayerBase and expose it via Base().
type Layer interface {
	// layerMarker is an unexported method that seals this interface.
	// Only types in this package can implement Layer.
	layerMarker()

	// Base returns the fields shared by every layer kind.
	Base() *LayerBase

	// Kind returns the variant tag.
	Kind() LayerKind
}

// LayerBase holds the fields shared by every layer kind.
type LayerBase struct {
	ID       LayerID
	Name     string
	Visible  bool
	Opacity  float64 // [0, 1]
	Blend    BlendMode
	Position Point // offset of the layer's local origin in canvas space
	Locked   bool
	Effects  []LayerEffect

	// Parent is the ID of the owning group, or NoLayer for the root group.
	// Kept in sync with the owning group's Children list on every move.
	Parent LayerID
}

func newLayerBase(name string) LayerBase {
	return LayerBase{
		ID:      NewLayerID(),
		Name:    name,
		Visible: true,
		Opacity: 1,
		Blend:   BlendNormal,
	}
}

// GroupLayer is a container holding an ordered stack of child layers.
// Children are stored bottom-to-top: index 0 composites first.
type GroupLayer struct {
	LayerBase
	Children []LayerID
	Expanded bool
}

func (*GroupLayer) layerMarker() {}

// Base implements Layer.
func (g *GroupLayer) Base() *LayerBase { return &g.LayerBase }

// Kind implements Layer.
func (g *GroupLayer) Kind() LayerKind { return KindGroup }

// NewGroupLayer creates an empty, expanded group.
func NewGroupLayer(name string) *GroupLayer {
	return &GroupLayer{
		LayerBase: newLayerBase(name),
		Expanded:  true,
	}
}

// RasterLayer is a pixel layer backed by a Pixmap.
type RasterLayer struct {
	LayerBase

	// Image holds the layer's pixels, or nil for an empty layer.
	Image *Pixmap

	// BufferBounds is the image buffer rectangle in layer-local space.
	// When Image is non-nil its dimensions always match BufferBounds.
	BufferBounds Rect
}

func (*RasterLayer) layerMarker() {}

// Base implements Layer.
func (r *RasterLayer) Base() *LayerBase { return &r.LayerBase }

// Kind implements Layer.
func (r *RasterLayer) Kind() LayerKind { return KindRaster }

// NewRasterLayer creates a raster layer with a transparent w×h buffer.
func NewRasterLayer(name string, w, h int) *RasterLayer {
	return &RasterLayer{
		LayerBase:    newLayerBase(name),
		Image:        NewPixmap(w, h),
		BufferBounds: Rect{W: w, H: h},
	}
}

// NewEmptyRasterLayer creates a raster layer with no pixel buffer.
func NewEmptyRasterLayer(name string) *RasterLayer {
	return &RasterLayer{LayerBase: newLayerBase(name)}
}

// SetImage replaces the pixel buffer, keeping BufferBounds in sync.
// The buffer origin is preserved.
func (r *RasterLayer) SetImage(img *Pixmap) {
	r.Image = img
	if img == nil {
		r.BufferBounds = Rect{X: r.BufferBounds.X, Y: r.BufferBounds.Y}
		return
	}
	r.BufferBounds.W = img.Width()
	r.BufferBounds.H = img.Height()
}

// Alignment selects horizontal text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns a string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// WritingMode selects horizontal or vertical text flow.
type WritingMode int

const (
	WritingHorizontal WritingMode = iota
	WritingVertical
)

// String returns a string representation of the writing mode.
func (m WritingMode) String() string {
	switch m {
	case WritingHorizontal:
		return "Horizontal"
	case WritingVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// TextLayer is an editable text layer. The document model stores the text
// and its typographic attributes; rasterizing glyphs is the compositor's
// job. TextBounds caches the measured extent, nil until first measured.
type TextLayer struct {
	LayerBase

	Text          string
	FontFamily    string
	FontSize      float64
	Color         RGBA
	Bold          bool
	Italic        bool
	Alignment     Alignment
	LineHeight    float64 // multiplier, 0 means the font's natural line height
	LetterSpacing float64 // extra advance per glyph in pixels
	WritingMode   WritingMode
	Underline     bool
	Strikethrough bool
	TextBounds    *Size
}

func (*TextLayer) layerMarker() {}

// Base implements Layer.
func (t *TextLayer) Base() *LayerBase { return &t.LayerBase }

// Kind implements Layer.
func (t *TextLayer) Kind() LayerKind { return KindText }

// NewTextLayer creates a text layer with editor defaults.
func NewTextLayer(name, text string) *TextLayer {
	return &TextLayer{
		LayerBase:  newLayerBase(name),
		Text:       text,
		FontFamily: "sans-serif",
		FontSize:   16,
		Color:      Black,
		LineHeight: 1.2,
	}
}
