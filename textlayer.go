package easel

import "github.com/gogpu/easel/text"

// MeasureTextLayer refreshes a text layer's cached TextBounds by shaping
// its content with a face built from source at the layer's font size.
// Returns false, leaving the layer untouched, when id is not a text layer
// or source is nil.
//
// Measurement is not a command: it computes a derived value. Callers that
// want the bounds change to be undoable wrap it in a SetPropertyCommand
// with PropTextBounds.
func (d *Document) MeasureTextLayer(id LayerID, source *text.FontSource) bool {
	t, ok := d.Layer(id).(*TextLayer)
	if !ok || source == nil {
		return false
	}

	face := source.Face(t.FontSize)
	w, h := text.Measure(face, t.Text, text.Options{
		LineHeight:    t.LineHeight,
		LetterSpacing: t.LetterSpacing,
		Vertical:      t.WritingMode == WritingVertical,
	})
	t.TextBounds = &Size{W: w, H: h}
	return true
}
