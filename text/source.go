package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
)

// ErrEmptyFontData is returned when a font source is created from an
// empty byte slice.
var ErrEmptyFontData = errors.New("text: empty font data")

// FontSource is a parsed font file. One FontSource can create multiple
// Face instances at different sizes and should be shared across the
// application.
//
// FontSource is safe for concurrent use: the parsed font.Font is
// read-only, and the per-call font.Face instances are created fresh
// because they are not concurrent-safe.
type FontSource struct {
	data   []byte
	parsed *font.Font
}

// NewFontSource creates a FontSource from TTF or OTF font data.
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	return &FontSource{
		data:   dataCopy,
		parsed: face.Font,
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the user intentionally
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewFontSource(data)
}

// Face creates a Face at the specified size in pixels. Sizes that are
// zero or negative are clamped to 1.
func (s *FontSource) Face(size float64) *Face {
	if size <= 0 {
		size = 1
	}
	return &Face{source: s, size: size}
}

// newFace creates a fresh go-text font.Face for one shaping call.
// font.Face is cheap to create and NOT safe for concurrent use, so it is
// never shared.
func (s *FontSource) newFace() *font.Face {
	return font.NewFace(s.parsed)
}

// shaperPool pools HarfbuzzShaper instances: they carry internal mutable
// buffers and are not safe for concurrent use, but reusing one across
// sequential calls avoids reallocation.
var shaperPool = sync.Pool{
	New: func() any { return newShaper() },
}
