// Package easel provides the document mutation engine for a raster image
// editor.
//
// # Overview
//
// easel is a Pure Go library holding the three pieces every raster editor is
// built around: the layer-tree document model, an undoable command history
// that every mutation flows through, and a brush engine that rasterizes
// pointer strokes into pixel buffers with undo-safe dirty-region extraction.
//
// It deliberately contains no rendering, no file-format codecs and no UI:
// a compositor, a PSD importer or an application shell consume the Document
// and Command types defined here.
//
// # Quick Start
//
//	import "github.com/gogpu/easel"
//
//	// Create a 800x600 document with a white background layer.
//	doc := easel.NewDocument("untitled", 800, 600)
//
//	// Paint a stroke onto the background layer.
//	raster, _ := doc.Layer(doc.SelectedLayer).(*easel.RasterLayer)
//	eng := easel.NewEngine()
//	eng.StartStroke(raster.Image, easel.StrokePoint{X: 10, Y: 50, Pressure: 1},
//		easel.BrushOptions{Size: 12, Hardness: 0.8, Opacity: 1, Color: easel.Red})
//	eng.ContinueStroke(easel.StrokePoint{X: 90, Y: 50, Pressure: 1})
//	if diff := eng.EndStroke(); diff != nil {
//		doc.Apply(easel.NewModifyPixelsCommand(doc, raster.ID, diff))
//	}
//
//	// Undo / redo.
//	doc.Undo()
//	doc.Redo()
//
// # Architecture
//
// The library is organized into:
//   - Document model: Document, Layer (group / raster / text), Pixmap
//   - Mutation: Command variants, History
//   - Painting: Engine, BrushOptions, BrushVariant, StrokeDiff
//   - text/: font metrics and text measurement for text layers
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Pixel buffers are non-premultiplied RGBA, 8 bits per channel.
//
// # Concurrency
//
// A Document and its History belong to a single editing session and are not
// safe for concurrent use. The brush Engine serializes dab placement
// internally because an airbrush-style accumulation ticker may re-enter it
// while a stroke is active; everything else is plain single-threaded code.
package easel
