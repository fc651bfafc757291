package easel

import "testing"

// TestNewDocument verifies the initial tree, selection, and metadata.
func TestNewDocument(t *testing.T) {
	doc := NewDocument("untitled", 640, 480)

	if doc.ID == "" {
		t.Error("document has no ID")
	}
	if doc.Width != 640 || doc.Height != 480 {
		t.Errorf("canvas = %dx%d, want 640x480", doc.Width, doc.Height)
	}
	if doc.DPI != 72 || doc.ColorMode != ColorRGB || doc.BitDepth != 8 {
		t.Errorf("defaults = (%v, %v, %v), want (72, RGB, 8)",
			doc.DPI, doc.ColorMode, doc.BitDepth)
	}
	if doc.Dirty() {
		t.Error("new document is dirty")
	}

	root := doc.Root()
	if root == nil {
		t.Fatal("no root group")
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}
	bg, ok := doc.Layer(root.Children[0]).(*RasterLayer)
	if !ok {
		t.Fatal("background is not a raster layer")
	}
	if bg.Name != "Background" {
		t.Errorf("background name = %q", bg.Name)
	}
	if got := bg.Image.GetPixel(0, 0); got != White {
		t.Errorf("background pixel = %v, want white", got)
	}
	if doc.SelectedLayer != bg.ID {
		t.Error("background is not selected")
	}
}

// TestNewDocument_Options exercises the functional options.
func TestNewDocument_Options(t *testing.T) {
	doc := NewDocument("opts", 10, 10,
		WithDPI(300),
		WithColorMode(ColorGrayscale),
		WithBitDepth(16),
		WithBackground(Transparent),
	)

	if doc.DPI != 300 {
		t.Errorf("DPI = %v, want 300", doc.DPI)
	}
	if doc.ColorMode != ColorGrayscale {
		t.Errorf("color mode = %v, want Grayscale", doc.ColorMode)
	}
	if doc.BitDepth != 16 {
		t.Errorf("bit depth = %d, want 16", doc.BitDepth)
	}
	bg, _ := doc.Layer(doc.Root().Children[0]).(*RasterLayer)
	if got := bg.Image.GetPixel(0, 0); got.A != 0 {
		t.Errorf("background alpha = %v, want 0", got.A)
	}

	// Invalid option values fall back to the defaults.
	doc = NewDocument("bad", 10, 10, WithDPI(-5), WithBitDepth(12))
	if doc.DPI != 72 || doc.BitDepth != 8 {
		t.Errorf("invalid options applied: DPI=%v bits=%d", doc.DPI, doc.BitDepth)
	}
}

// TestNewDocument_ClampsDimensions verifies the canvas bounds guard.
func TestNewDocument_ClampsDimensions(t *testing.T) {
	doc := NewDocument("tiny", 0, -5)
	if doc.Width != 1 || doc.Height != 1 {
		t.Errorf("canvas = %dx%d, want 1x1", doc.Width, doc.Height)
	}

	doc = NewDocument("huge", MaxCanvasSide+1, 10)
	if doc.Width != MaxCanvasSide {
		t.Errorf("width = %d, want %d", doc.Width, MaxCanvasSide)
	}
}

// TestDocument_DirtyTracking verifies the dirty flag and revision counter
// across the mutate/save cycle.
func TestDocument_DirtyTracking(t *testing.T) {
	doc, sketch, _, _, _ := buildTestDoc(t)
	rev := doc.Revision()

	doc.Apply(NewSetPropertyCommand(doc, sketch.ID, PropName, "Rough"))
	if !doc.Dirty() {
		t.Error("document not dirty after a command")
	}
	if doc.Revision() != rev+1 {
		t.Errorf("revision = %d, want %d", doc.Revision(), rev+1)
	}

	doc.MarkSaved("/tmp/test.easel")
	if doc.Dirty() {
		t.Error("document dirty after save")
	}
	if doc.FilePath != "/tmp/test.easel" {
		t.Errorf("file path = %q", doc.FilePath)
	}

	// Undo after a save makes the document dirty again.
	doc.Undo()
	if !doc.Dirty() {
		t.Error("undo did not mark the document dirty")
	}
	if doc.Revision() != rev+2 {
		t.Errorf("revision = %d, want %d", doc.Revision(), rev+2)
	}

	// Failed undo/redo must not touch the state.
	doc.History().Clear()
	saved := doc.Revision()
	if doc.Undo() || doc.Redo() {
		t.Error("undo/redo succeeded on an empty history")
	}
	if doc.Revision() != saved {
		t.Error("failed undo/redo bumped the revision")
	}
}

// TestApply_DropsUnresolvedCommands verifies commands whose targets have
// disappeared never reach the history or touch the dirty state.
func TestApply_DropsUnresolvedCommands(t *testing.T) {
	doc, sketch, inks, lines, title := buildTestDoc(t)
	doc.RemoveLayer(inks.ID) // takes lines and title with it
	doc.MarkSaved("/tmp/test.easel")

	wantLen := doc.History().Len()
	wantRev := doc.Revision()

	dropped := []Command{
		NewSetPropertyCommand(doc, lines.ID, PropName, "x"),
		NewRemoveLayerCommand(doc, title.ID),
		NewRemoveLayerCommand(doc, doc.Root().ID),
		NewMoveLayerCommand(doc, sketch.ID, inks.ID, 0),
		NewResizeTextLayerCommand(doc, title.ID, Size{W: 10, H: 10}),
		NewAddLayerCommand(doc, inks.ID, 0, NewRasterLayer("x", 4, 4)),
		NewAddLayerCommand(doc, doc.Root().ID, 0, sketch), // duplicate ID
	}
	for i, cmd := range dropped {
		if doc.Apply(cmd) {
			t.Errorf("command %d committed against a missing target", i)
		}
	}

	if doc.History().Len() != wantLen {
		t.Errorf("history length = %d, want %d", doc.History().Len(), wantLen)
	}
	if doc.Revision() != wantRev {
		t.Error("dropped commands bumped the revision")
	}
	if doc.Dirty() {
		t.Error("dropped commands marked the document dirty")
	}

	// A nil stroke diff yields a typed-nil command that is also dropped.
	if doc.Apply(NewModifyPixelsCommand(doc, sketch.ID, nil)) {
		t.Error("nil pixel command committed")
	}

	// A live target still commits.
	if !doc.Apply(NewSetPropertyCommand(doc, sketch.ID, PropName, "Rough")) {
		t.Error("command against a live layer was dropped")
	}
	if sketch.Name != "Rough" {
		t.Errorf("name = %q, want %q", sketch.Name, "Rough")
	}
}
