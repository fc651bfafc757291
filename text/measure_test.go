package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) *Face {
	t.Helper()
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	return src.Face(size)
}

func TestMeasure_Empty(t *testing.T) {
	f := testFace(t, 16)

	if w, h := Measure(f, "", Options{}); w != 0 || h != 0 {
		t.Errorf("Measure(empty) = (%v, %v), want (0, 0)", w, h)
	}
	if w, h := Measure(nil, "hello", Options{}); w != 0 || h != 0 {
		t.Errorf("Measure(nil face) = (%v, %v), want (0, 0)", w, h)
	}
}

func TestMeasure_SingleLine(t *testing.T) {
	f := testFace(t, 16)

	w, h := Measure(f, "Hello, world", Options{})
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure = (%v, %v), want positive extents", w, h)
	}
	if want := f.Metrics().LineHeight(); h != want {
		t.Errorf("height = %v, want one line height %v", h, want)
	}
	if adv := f.Advance("Hello, world"); w != adv {
		t.Errorf("width = %v, want the shaped advance %v", w, adv)
	}

	// A longer string is wider.
	w2, _ := Measure(f, "Hello, wider world", Options{})
	if w2 <= w {
		t.Errorf("longer text width = %v, want > %v", w2, w)
	}
}

func TestMeasure_MultiLine(t *testing.T) {
	f := testFace(t, 16)

	w1, h1 := Measure(f, "wide wide line", Options{})
	w3, h3 := Measure(f, "wide wide line\nshort\n", Options{})

	if h3 != 3*h1 {
		t.Errorf("three-line height = %v, want %v", h3, 3*h1)
	}
	// Width follows the widest line, trailing newline included as an
	// empty third line.
	if w3 != w1 {
		t.Errorf("multi-line width = %v, want widest line %v", w3, w1)
	}
}

func TestMeasure_LineHeightMultiplier(t *testing.T) {
	f := testFace(t, 16)

	_, natural := Measure(f, "x", Options{})
	_, doubled := Measure(f, "x", Options{LineHeight: 2})
	if doubled != 2*natural {
		t.Errorf("doubled line height = %v, want %v", doubled, 2*natural)
	}
}

func TestMeasure_LetterSpacing(t *testing.T) {
	f := testFace(t, 16)

	plain, _ := Measure(f, "abcd", Options{})
	spaced, _ := Measure(f, "abcd", Options{LetterSpacing: 3})
	if want := plain + 3*3; spaced != want {
		t.Errorf("spaced width = %v, want %v", spaced, want)
	}

	// A single character has no gaps to widen.
	one, _ := Measure(f, "a", Options{})
	oneSpaced, _ := Measure(f, "a", Options{LetterSpacing: 3})
	if one != oneSpaced {
		t.Errorf("single char with spacing = %v, want %v", oneSpaced, one)
	}
}

func TestMeasure_Vertical(t *testing.T) {
	f := testFace(t, 16)

	w, h := Measure(f, "vertical", Options{})
	vw, vh := Measure(f, "vertical", Options{Vertical: true})
	if vw != h || vh != w {
		t.Errorf("vertical = (%v, %v), want axes swapped from (%v, %v)", vw, vh, w, h)
	}
}

func TestMeasure_ScalesWithFontSize(t *testing.T) {
	small, _ := Measure(testFace(t, 12), "scaling", Options{})
	large, _ := Measure(testFace(t, 24), "scaling", Options{})

	ratio := large / small
	if ratio < 1.9 || ratio > 2.1 {
		t.Errorf("24px/12px width ratio = %v, want about 2", ratio)
	}
}

func TestAdvance_Kerning(t *testing.T) {
	f := testFace(t, 32)

	// "AV" kerns tighter than the two advances summed.
	av := f.Advance("AV")
	sum := f.Advance("A") + f.Advance("V")
	if av > sum {
		t.Errorf("Advance(AV) = %v, want <= %v (kerning applied)", av, sum)
	}
}
