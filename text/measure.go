package text

import (
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Options adjusts how Measure converts a string into pixel extents.
// The zero value measures plain horizontal text at the font's natural
// line height.
type Options struct {
	// LineHeight is a multiplier on the font's natural line height.
	// Zero means 1.
	LineHeight float64

	// LetterSpacing is extra advance between characters in pixels.
	LetterSpacing float64

	// Vertical lays the text out top-to-bottom: the returned extents
	// have their axes swapped.
	Vertical bool
}

// Measure returns the pixel extent of content rendered with face.
// Lines are split on '\n'; the width is the widest shaped line and the
// height is the line count times the effective line height. Returns
// (0, 0) for a nil face or empty content.
func Measure(f *Face, content string, opts Options) (w, h float64) {
	if f == nil || content == "" {
		return 0, 0
	}

	lineH := f.Metrics().LineHeight()
	if opts.LineHeight > 0 {
		lineH *= opts.LineHeight
	}

	lines := strings.Split(content, "\n")
	maxW := 0.0
	for _, line := range lines {
		adv, _ := shapeLine(f, line)
		if n := utf8.RuneCountInString(line); n > 1 && opts.LetterSpacing != 0 {
			adv += opts.LetterSpacing * float64(n-1)
		}
		if adv > maxW {
			maxW = adv
		}
	}

	w = maxW
	h = float64(len(lines)) * lineH
	if opts.Vertical {
		w, h = h, w
	}
	return w, h
}

// lineBounds is the font's vertical extent around one line's baseline,
// in pixels. Descent keeps the shaper's sign (negative below baseline).
type lineBounds struct {
	Ascent  float64
	Descent float64
	Gap     float64
}

// shapeLine shapes one line through HarfBuzz and returns its advance and
// the font's line bounds at the face size.
func shapeLine(f *Face, line string) (float64, lineBounds) {
	runes := []rune(line)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: detectDirection(line),
		Face:      f.source.newFace(),
		Size:      fixed.Int26_6(f.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	shaperPool.Put(shaper)

	adv := fixedToFloat(out.Advance)
	if adv < 0 {
		adv = -adv
	}
	return adv, lineBounds{
		Ascent:  fixedToFloat(out.LineBounds.Ascent),
		Descent: fixedToFloat(out.LineBounds.Descent),
		Gap:     fixedToFloat(out.LineBounds.Gap),
	}
}

func newShaper() *shaping.HarfbuzzShaper {
	return &shaping.HarfbuzzShaper{}
}

// detectDirection resolves the paragraph direction of one line using the
// Unicode bidi algorithm. Mixed-direction runs inside the line are
// handled by the shaper; only the principal direction matters here.
func detectDirection(line string) di.Direction {
	if line == "" {
		return di.DirectionLTR
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(line); err != nil {
		return di.DirectionLTR
	}
	if p.IsLeftToRight() {
		return di.DirectionLTR
	}
	return di.DirectionRTL
}

// detectScript returns the script of the first non-space rune, a simple
// heuristic that covers single-script lines.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
