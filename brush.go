package easel

import "time"

// DefaultSpacing is the dab spacing used when BrushOptions.Spacing is
// unset: dabs are placed every quarter of the brush diameter.
const DefaultSpacing = 0.25

// DefaultAccumulateEvery is the re-application interval for accumulating
// (airbrush-style) brush variants.
const DefaultAccumulateEvery = 50 * time.Millisecond

// BrushOptions describes one stroke's brush. Options are value types;
// the engine normalizes a copy at StartStroke, so mutating the caller's
// struct mid-stroke has no effect.
type BrushOptions struct {
	// Size is the brush diameter in pixels. Must be > 0 to paint.
	Size float64

	// Hardness in [0, 1] controls the edge falloff: 1 is a hard-edged
	// disc, 0 fades linearly from the center to the edge.
	Hardness float64

	// Opacity in [0, 1] is the base alpha of every dab.
	Opacity float64

	// Color is the paint color. Ignored in eraser mode.
	Color RGBA

	// Spacing in (0, 1] is the dab spacing as a fraction of Size.
	// Zero selects DefaultSpacing.
	Spacing float64

	// Eraser subtracts alpha from the destination instead of painting.
	Eraser bool

	// Variant optionally tweaks the brush behavior. Nil means the plain
	// round brush.
	Variant *BrushVariant
}

// BrushVariant adjusts how a brush responds to pressure, edges and time.
// The zero value changes nothing.
type BrushVariant struct {
	// Name identifies the variant in UI and logs.
	Name string

	// Hardness, when non-nil, overrides BrushOptions.Hardness.
	Hardness *float64

	// NoAntialias disables the edge falloff entirely: every pixel inside
	// the radius gets the full dab alpha (pixel-art pencils).
	NoAntialias bool

	// NoPressureSize keeps the dab radius at full size regardless of
	// pen pressure.
	NoPressureSize bool

	// NoPressureOpacity keeps the dab alpha at full opacity regardless
	// of pen pressure.
	NoPressureOpacity bool

	// Accumulate re-applies the last dab at a fixed interval while the
	// pointer is stationary, like an airbrush pooling paint.
	Accumulate bool

	// AccumulateEvery is the accumulation interval. Zero selects
	// DefaultAccumulateEvery.
	AccumulateEvery time.Duration
}

// PencilVariant returns a hard, aliased variant for pixel-exact drawing.
func PencilVariant() *BrushVariant {
	h := 1.0
	return &BrushVariant{
		Name:           "pencil",
		Hardness:       &h,
		NoAntialias:    true,
		NoPressureSize: true,
	}
}

// AirbrushVariant returns a soft accumulating variant.
func AirbrushVariant() *BrushVariant {
	h := 0.0
	return &BrushVariant{
		Name:       "airbrush",
		Hardness:   &h,
		Accumulate: true,
	}
}

// MarkerVariant returns a variant that ignores pen pressure entirely,
// giving flat, even coverage.
func MarkerVariant() *BrushVariant {
	return &BrushVariant{
		Name:              "marker",
		NoPressureSize:    true,
		NoPressureOpacity: true,
	}
}

// normalized clamps every option to its domain and resolves variant
// overrides, so the engine never has to re-validate during a stroke.
func (o BrushOptions) normalized() BrushOptions {
	if o.Size < 0 {
		o.Size = 0
	}
	o.Hardness = clamp01(o.Hardness)
	o.Opacity = clamp01(o.Opacity)
	o.Color = o.Color.Clamp()
	if o.Spacing <= 0 {
		o.Spacing = DefaultSpacing
	} else if o.Spacing > 1 {
		o.Spacing = 1
	}
	if o.Variant != nil && o.Variant.Hardness != nil {
		o.Hardness = clamp01(*o.Variant.Hardness)
	}
	return o
}

// variant returns the variant settings, or the neutral zero value when
// no variant is set.
func (o BrushOptions) variant() BrushVariant {
	if o.Variant != nil {
		return *o.Variant
	}
	return BrushVariant{}
}

// accumulateEvery returns the effective accumulation interval.
func (v BrushVariant) accumulateEvery() time.Duration {
	if v.AccumulateEvery > 0 {
		return v.AccumulateEvery
	}
	return DefaultAccumulateEvery
}
