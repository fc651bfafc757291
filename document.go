package easel

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// MaxCanvasSide is the largest accepted canvas dimension in pixels.
// Larger requests are rejected before any mutation happens. This is a
// sanity bound against runaway allocations, not an algorithmic limit.
const MaxCanvasSide = 32768

// ColorMode is the color space a document is edited in.
type ColorMode int

const (
	ColorRGB ColorMode = iota
	ColorGrayscale
)

// String returns a string representation of the color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorRGB:
		return "RGB"
	case ColorGrayscale:
		return "Grayscale"
	default:
		return "Unknown"
	}
}

// Document is the aggregate root of an editing session: canvas metadata,
// the layer arena, and the undo history. A document belongs to exactly one
// editing session and is not safe for concurrent use.
//
// Layers are stored in an arena keyed by LayerID; groups reference children
// by ID, never by pointer. Commands therefore capture IDs and resolve them
// against the document when they run.
type Document struct {
	ID        string
	Name      string
	Width     int
	Height    int
	DPI       float64
	ColorMode ColorMode
	BitDepth  int

	// FilePath is where the document was last saved, empty if never saved.
	FilePath string

	// SelectedLayer is the layer targeted by tools, NoLayer if none.
	SelectedLayer LayerID

	root    LayerID
	layers  map[LayerID]Layer
	history *History

	dirty      bool
	createdAt  time.Time
	modifiedAt time.Time
	revision   uint64
}

// DocumentOption configures a Document during creation.
type DocumentOption func(*documentOptions)

type documentOptions struct {
	dpi        float64
	colorMode  ColorMode
	bitDepth   int
	background RGBA
}

func defaultDocumentOptions() documentOptions {
	return documentOptions{
		dpi:        72,
		colorMode:  ColorRGB,
		bitDepth:   8,
		background: White,
	}
}

// WithDPI sets the document resolution in dots per inch.
func WithDPI(dpi float64) DocumentOption {
	return func(o *documentOptions) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithColorMode sets the document color mode.
func WithColorMode(m ColorMode) DocumentOption {
	return func(o *documentOptions) {
		o.colorMode = m
	}
}

// WithBitDepth sets the bits per channel (8 or 16).
func WithBitDepth(bits int) DocumentOption {
	return func(o *documentOptions) {
		if bits == 8 || bits == 16 {
			o.bitDepth = bits
		}
	}
}

// WithBackground sets the fill color of the initial background layer.
// Use Transparent for a transparent canvas.
func WithBackground(c RGBA) DocumentOption {
	return func(o *documentOptions) {
		o.background = c
	}
}

// NewDocument creates a document with a root group containing a single
// background raster layer filled with the background color. Dimensions are
// clamped to [1, MaxCanvasSide].
func NewDocument(name string, width, height int, opts ...DocumentOption) *Document {
	o := defaultDocumentOptions()
	for _, opt := range opts {
		opt(&o)
	}

	width = clampDim(width)
	height = clampDim(height)

	now := time.Now()
	doc := &Document{
		ID:         uuid.NewString(),
		Name:       name,
		Width:      width,
		Height:     height,
		DPI:        o.dpi,
		ColorMode:  o.colorMode,
		BitDepth:   o.bitDepth,
		layers:     make(map[LayerID]Layer),
		history:    &History{},
		createdAt:  now,
		modifiedAt: now,
	}

	root := NewGroupLayer("root")
	doc.layers[root.ID] = root
	doc.root = root.ID

	bg := NewRasterLayer("Background", width, height)
	bg.Image.Clear(o.background)
	bg.Parent = root.ID
	root.Children = append(root.Children, bg.ID)
	doc.layers[bg.ID] = bg
	doc.SelectedLayer = bg.ID

	Logger().Debug("document created",
		slog.String("id", doc.ID),
		slog.Int("width", width),
		slog.Int("height", height))
	return doc
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxCanvasSide {
		return MaxCanvasSide
	}
	return v
}

// Root returns the document's root group.
func (d *Document) Root() *GroupLayer {
	g, _ := d.layers[d.root].(*GroupLayer)
	return g
}

// History returns the document's command history.
func (d *Document) History() *History {
	return d.history
}

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool {
	return d.dirty
}

// Revision returns a counter that increases on every committed mutation.
// Host applications watch it to know when to re-render.
func (d *Document) Revision() uint64 {
	return d.revision
}

// CreatedAt returns the creation time of the document.
func (d *Document) CreatedAt() time.Time {
	return d.createdAt
}

// ModifiedAt returns the time of the last committed mutation.
func (d *Document) ModifiedAt() time.Time {
	return d.modifiedAt
}

// MarkDirty records a committed mutation: sets the dirty flag, refreshes
// the modification time and bumps the revision counter. Every mutation
// path (commands, undo/redo, canvas transforms) funnels through here.
func (d *Document) MarkDirty() {
	d.dirty = true
	d.modifiedAt = time.Now()
	d.revision++
}

// MarkSaved clears the dirty flag after a successful save to path.
func (d *Document) MarkSaved(path string) {
	d.FilePath = path
	d.dirty = false
}

// Apply executes cmd through the history and marks the document dirty.
// A command whose targets no longer resolve against the document is
// dropped without touching the history or the dirty state; Apply reports
// whether the command was committed.
func (d *Document) Apply(cmd Command) bool {
	if r, ok := cmd.(interface{ resolved() bool }); ok && !r.resolved() {
		Logger().Warn("command dropped, target missing")
		return false
	}
	d.history.Execute(cmd)
	d.MarkDirty()
	return true
}

// Undo reverts the most recent command. Returns false when there is
// nothing to undo.
func (d *Document) Undo() bool {
	if !d.history.Undo() {
		return false
	}
	d.MarkDirty()
	return true
}

// Redo reapplies the most recently undone command. Returns false when
// there is nothing to redo.
func (d *Document) Redo() bool {
	if !d.history.Redo() {
		return false
	}
	d.MarkDirty()
	return true
}
