package text

// Face is a font face at a specific size in pixels. It is a lightweight
// (source, size) pair; create one per text layer configuration.
type Face struct {
	source *FontSource
	size   float64
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Metrics holds font metrics at a specific size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// font, stored as a positive value.
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// LineHeight returns the natural line height (ascent + descent + gap),
// the recommended vertical distance between consecutive baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Metrics returns the font metrics at this face's size. The values come
// from the shaper's line bounds so they agree exactly with Measure.
func (f *Face) Metrics() Metrics {
	_, bounds := shapeLine(f, "x")
	descent := bounds.Descent
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:  bounds.Ascent,
		Descent: descent,
		LineGap: bounds.Gap,
	}
}

// Advance returns the shaped advance width of a single line of text in
// pixels, kerning and ligatures included. Newlines are not handled here;
// use Measure for multi-line text.
func (f *Face) Advance(line string) float64 {
	advance, _ := shapeLine(f, line)
	return advance
}
