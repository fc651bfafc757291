// Package text provides font loading and text measurement for text
// layers.
//
// The document model stores a text layer's string and typographic
// attributes; this package turns those into pixel extents (TextBounds)
// using HarfBuzz shaping via go-text/typesetting. Glyph rasterization is
// out of scope: that belongs to the compositor consuming the document.
//
// # Quick Start
//
//	source, err := text.NewFontSource(fontBytes)
//	if err != nil { ... }
//	face := source.Face(16)
//	w, h := text.Measure(face, "Hello\nWorld", text.Options{})
//
// FontSource is heavyweight and should be shared; Face is a lightweight
// (source, size) pair.
package text
