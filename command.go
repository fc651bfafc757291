package easel

import "math"

// SetPropertyCommand sets a single layer property, remembering the prior
// value for undo. The old value is captured at construction time, so build
// the command before mutating anything.
type SetPropertyCommand struct {
	doc      *Document
	layer    LayerID
	prop     LayerProperty
	oldValue any
	newValue any
}

// NewSetPropertyCommand builds a property edit for the given layer.
// The layer's current value is captured as the undo value.
func NewSetPropertyCommand(doc *Document, layer LayerID, prop LayerProperty, value any) *SetPropertyCommand {
	return &SetPropertyCommand{
		doc:      doc,
		layer:    layer,
		prop:     prop,
		oldValue: propertyValue(doc.Layer(layer), prop),
		newValue: value,
	}
}

// Description implements Command.
func (c *SetPropertyCommand) Description() string {
	return "Set " + c.prop.String()
}

// Execute implements Command.
func (c *SetPropertyCommand) Execute() {
	setProperty(c.doc.Layer(c.layer), c.prop, c.newValue)
}

// Undo implements Command.
func (c *SetPropertyCommand) Undo() {
	setProperty(c.doc.Layer(c.layer), c.prop, c.oldValue)
}

// resolved reports whether the target layer still exists. Document.Apply
// drops commands that would only ever execute as no-ops.
func (c *SetPropertyCommand) resolved() bool {
	return c.doc.Layer(c.layer) != nil
}

// AddLayerCommand inserts a layer (possibly a group carrying a detached
// subtree) under a parent group at a stack index.
type AddLayerCommand struct {
	doc     *Document
	parent  LayerID
	index   int
	layer   Layer
	subtree []Layer
}

// NewAddLayerCommand builds an insertion of layer under parent at index.
// Index 0 is the bottom of the stack; pass the parent's child count to
// add on top.
func NewAddLayerCommand(doc *Document, parent LayerID, index int, layer Layer) *AddLayerCommand {
	return &AddLayerCommand{doc: doc, parent: parent, index: index, layer: layer}
}

// Description implements Command.
func (c *AddLayerCommand) Description() string {
	return "Add " + c.layer.Base().Name
}

// Execute implements Command.
func (c *AddLayerCommand) Execute() {
	c.doc.insertSubtree(c.parent, c.index, c.layer, c.subtree)
}

// Undo implements Command.
func (c *AddLayerCommand) Undo() {
	_, subtree, ok := c.doc.RemoveLayer(c.layer.Base().ID)
	if ok {
		// Keep the detached descendants alive for a later redo.
		c.subtree = subtree
	}
}

func (c *AddLayerCommand) resolved() bool {
	_, ok := c.doc.Layer(c.parent).(*GroupLayer)
	return ok && c.doc.Layer(c.layer.Base().ID) == nil
}

// RemoveLayerCommand removes a layer and its subtree from the document.
// The removed objects stay captured inside the command so undo can splice
// them back at the exact position they came from.
type RemoveLayerCommand struct {
	doc   *Document
	layer LayerID

	removed      Layer
	parent       LayerID
	index        int
	subtree      []Layer
	prevSelected LayerID
}

// NewRemoveLayerCommand builds a removal of the given layer.
func NewRemoveLayerCommand(doc *Document, layer LayerID) *RemoveLayerCommand {
	return &RemoveLayerCommand{doc: doc, layer: layer}
}

// Description implements Command.
func (c *RemoveLayerCommand) Description() string {
	if c.removed != nil {
		return "Remove " + c.removed.Base().Name
	}
	return "Remove layer"
}

// Execute implements Command.
func (c *RemoveLayerCommand) Execute() {
	parent := c.doc.ParentOf(c.layer)
	if parent == nil {
		return
	}
	c.parent = parent.ID
	c.index = c.doc.LayerIndex(c.layer)
	c.prevSelected = c.doc.SelectedLayer

	removed, subtree, ok := c.doc.RemoveLayer(c.layer)
	if !ok {
		return
	}
	c.removed = removed
	c.subtree = subtree
}

// Undo implements Command.
func (c *RemoveLayerCommand) Undo() {
	if c.removed == nil {
		return
	}
	if c.doc.insertSubtree(c.parent, c.index, c.removed, c.subtree) {
		c.doc.SelectedLayer = c.prevSelected
	}
}

func (c *RemoveLayerCommand) resolved() bool {
	return c.doc.Layer(c.layer) != nil && c.doc.ParentOf(c.layer) != nil
}

// MoveLayerCommand moves a layer to a new parent and/or stack index.
// Reordering within one group is a move with the same parent.
type MoveLayerCommand struct {
	doc       *Document
	layer     LayerID
	oldParent LayerID
	oldIndex  int
	newParent LayerID
	newIndex  int
}

// NewMoveLayerCommand builds a move of layer to newParent at newIndex,
// capturing the current parent and index for undo.
func NewMoveLayerCommand(doc *Document, layer, newParent LayerID, newIndex int) *MoveLayerCommand {
	c := &MoveLayerCommand{
		doc:       doc,
		layer:     layer,
		newParent: newParent,
		newIndex:  newIndex,
		oldIndex:  doc.LayerIndex(layer),
	}
	if p := doc.ParentOf(layer); p != nil {
		c.oldParent = p.ID
	}
	return c
}

// Description implements Command.
func (c *MoveLayerCommand) Description() string {
	return "Move layer"
}

// Execute implements Command.
func (c *MoveLayerCommand) Execute() {
	c.doc.MoveLayer(c.layer, c.newParent, c.newIndex)
}

// Undo implements Command.
func (c *MoveLayerCommand) Undo() {
	if c.oldParent == NoLayer {
		return
	}
	c.doc.MoveLayer(c.layer, c.oldParent, c.oldIndex)
}

func (c *MoveLayerCommand) resolved() bool {
	if c.doc.Layer(c.layer) == nil || c.doc.ParentOf(c.layer) == nil {
		return false
	}
	if _, ok := c.doc.Layer(c.newParent).(*GroupLayer); !ok {
		return false
	}
	return !c.doc.isAncestorOrSelf(c.layer, c.newParent)
}

// ModifyPixelsCommand replays a pixel-region diff against a raster layer.
// This is how brush strokes enter the history: the engine's StrokeDiff
// carries the before/after bytes of just the dirty region.
type ModifyPixelsCommand struct {
	doc    *Document
	layer  LayerID
	region Rect
	oldPix []uint8
	newPix []uint8
	desc   string
}

// NewModifyPixelsCommand builds a pixel edit from a stroke diff.
// Returns nil when diff is nil, so callers can push the result through
// the history unconditionally after checking for nil.
func NewModifyPixelsCommand(doc *Document, layer LayerID, diff *StrokeDiff) *ModifyPixelsCommand {
	if diff == nil {
		return nil
	}
	desc := "Brush stroke"
	if diff.Eraser {
		desc = "Eraser stroke"
	}
	return &ModifyPixelsCommand{
		doc:    doc,
		layer:  layer,
		region: diff.Region,
		oldPix: diff.OldPixels,
		newPix: diff.NewPixels,
		desc:   desc,
	}
}

// Description implements Command.
func (c *ModifyPixelsCommand) Description() string {
	return c.desc
}

// Execute implements Command.
func (c *ModifyPixelsCommand) Execute() {
	c.write(c.newPix)
}

// Undo implements Command.
func (c *ModifyPixelsCommand) Undo() {
	c.write(c.oldPix)
}

func (c *ModifyPixelsCommand) resolved() bool {
	if c == nil {
		return false
	}
	raster, ok := c.doc.Layer(c.layer).(*RasterLayer)
	return ok && raster.Image != nil
}

func (c *ModifyPixelsCommand) write(pix []uint8) {
	raster, ok := c.doc.Layer(c.layer).(*RasterLayer)
	if !ok || raster.Image == nil {
		return
	}
	raster.Image.WriteRegion(c.region, pix)
}

// ResizeTextLayerCommand rescales a text layer's bounds, scaling the font
// size by the geometric mean of the horizontal and vertical factors so
// non-uniform drags still produce a sensible size.
type ResizeTextLayerCommand struct {
	doc   *Document
	layer LayerID

	oldBounds   *Size
	newBounds   Size
	oldFontSize float64
	newFontSize float64
}

// NewResizeTextLayerCommand builds a resize of the layer's text bounds to
// newBounds. The font size scales with the geometric mean of the width and
// height factors; when the layer has no measured bounds yet the font size
// is left unchanged.
func NewResizeTextLayerCommand(doc *Document, layer LayerID, newBounds Size) *ResizeTextLayerCommand {
	c := &ResizeTextLayerCommand{doc: doc, layer: layer, newBounds: newBounds}

	t, ok := doc.Layer(layer).(*TextLayer)
	if !ok {
		return c
	}
	c.oldBounds = t.TextBounds
	c.oldFontSize = t.FontSize
	c.newFontSize = t.FontSize

	if t.TextBounds != nil && t.TextBounds.W > 0 && t.TextBounds.H > 0 &&
		newBounds.W > 0 && newBounds.H > 0 {
		scale := math.Sqrt((newBounds.W / t.TextBounds.W) * (newBounds.H / t.TextBounds.H))
		c.newFontSize = t.FontSize * scale
	}
	return c
}

// Description implements Command.
func (c *ResizeTextLayerCommand) Description() string {
	return "Resize text layer"
}

// Execute implements Command.
func (c *ResizeTextLayerCommand) Execute() {
	t, ok := c.doc.Layer(c.layer).(*TextLayer)
	if !ok {
		return
	}
	bounds := c.newBounds
	t.TextBounds = &bounds
	t.FontSize = c.newFontSize
}

// Undo implements Command.
func (c *ResizeTextLayerCommand) Undo() {
	t, ok := c.doc.Layer(c.layer).(*TextLayer)
	if !ok {
		return
	}
	t.TextBounds = c.oldBounds
	t.FontSize = c.oldFontSize
}

func (c *ResizeTextLayerCommand) resolved() bool {
	_, ok := c.doc.Layer(c.layer).(*TextLayer)
	return ok
}
