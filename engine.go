package easel

import (
	"log/slog"
	"math"
	"sync"
	"time"
)

// StrokePoint is one pointer sample. Pressure is the pen pressure in
// (0, 1]; zero means the device reported none and is treated as full
// pressure.
type StrokePoint struct {
	X, Y     float64
	Pressure float64
}

// StrokeDiff is the undo-ready result of a finished stroke: the minimal
// rectangle covering every dab, with the bytes of that region before and
// after the stroke. Both slices are exactly Region.W*Region.H*4 bytes.
type StrokeDiff struct {
	Region    Rect
	OldPixels []uint8
	NewPixels []uint8

	// Eraser records the stroke mode, for command labeling.
	Eraser bool
}

// Engine rasterizes pointer strokes into a pixel buffer. Between
// StartStroke and EndStroke it owns the target buffer exclusively and
// holds a full-buffer snapshot so EndStroke can extract an exact
// before/after diff of just the dirty region.
//
// The engine is driven from a single event thread. The mutex exists for
// one reason: an accumulating variant runs a ticker goroutine that
// re-applies the last dab while the pointer rests, and that goroutine
// must not interleave with dab placement from the caller. The ticker is
// torn down synchronously before EndStroke touches the session, so no
// dab can land after the diff is taken.
type Engine struct {
	mu sync.Mutex

	target   *Pixmap
	opts     BrushOptions
	last     StrokePoint
	carry    float64 // arc length accumulated since the last dab
	dirty    Rect
	snapshot []uint8
	active   bool
	modified bool

	// Accumulation ticker state. Touched only by the event thread.
	ticker    *time.Ticker
	stopAccum chan struct{}
	accumDone sync.WaitGroup
}

// NewEngine returns an idle brush engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Active reports whether a stroke session is in progress.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// StartStroke begins a stroke session on target and places the first dab
// at pt. Any stale session that was never ended is discarded first. The
// engine keeps a full copy of the buffer for diffing; the caller must not
// write to target until EndStroke or CancelStroke returns.
func (e *Engine) StartStroke(target *Pixmap, pt StrokePoint, opts BrushOptions) {
	if target == nil {
		return
	}
	e.stopAccumulation()

	e.mu.Lock()
	e.target = target
	e.opts = opts.normalized()
	e.last = pt
	e.carry = 0
	e.dirty = Rect{}
	e.modified = false
	e.active = true
	e.snapshot = make([]uint8, len(target.data))
	copy(e.snapshot, target.data)
	e.placeDab(pt)
	e.mu.Unlock()

	if v := e.opts.variant(); v.Accumulate {
		e.startAccumulation(v.accumulateEvery())
	}

	Logger().Debug("stroke started",
		slog.Float64("size", e.opts.Size),
		slog.Bool("eraser", e.opts.Eraser))
}

// ContinueStroke extends the stroke to pt, placing dabs at fixed arc
// length spacing along the segment from the previous sample. Leftover
// sub-spacing distance carries across calls, so dab density is uniform
// no matter how irregularly the pointer is sampled. No-op without an
// active session.
func (e *Engine) ContinueStroke(pt StrokePoint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		return
	}

	from := e.last
	dx := pt.X - from.X
	dy := pt.Y - from.Y
	dist := math.Hypot(dx, dy)

	spacing := e.opts.Spacing * e.opts.Size
	if spacing < 1 {
		spacing = 1
	}

	if e.carry+dist < spacing {
		e.carry += dist
		e.last = pt
		return
	}

	placed := 0.0
	for d := spacing - e.carry; d <= dist; d += spacing {
		t := d / dist
		e.placeDab(StrokePoint{
			X:        from.X + dx*t,
			Y:        from.Y + dy*t,
			Pressure: from.Pressure + (pt.Pressure-from.Pressure)*t,
		})
		placed = d
	}
	e.carry = dist - placed
	e.last = pt
}

// EndStroke finalizes the session and returns the dirty-region diff, or
// nil when no dab modified a pixel (zero-size brush, stroke entirely off
// canvas). Session state is always cleared, active or not, and the
// accumulation ticker is stopped before the diff is taken.
func (e *Engine) EndStroke() *StrokeDiff {
	e.stopAccumulation()

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		e.resetSession()
		return nil
	}

	region := e.dirty.Clamp(e.target.width, e.target.height)
	if region.Empty() || !e.modified {
		e.resetSession()
		return nil
	}

	before := &Pixmap{width: e.target.width, height: e.target.height, data: e.snapshot}
	diff := &StrokeDiff{
		Region:    region,
		OldPixels: before.CopyRegion(region),
		NewPixels: e.target.CopyRegion(region),
		Eraser:    e.opts.Eraser,
	}
	e.resetSession()

	Logger().Debug("stroke ended",
		slog.Int("x", diff.Region.X),
		slog.Int("y", diff.Region.Y),
		slog.Int("w", diff.Region.W),
		slog.Int("h", diff.Region.H))
	return diff
}

// CancelStroke abandons the session, restoring the buffer to its
// pre-stroke contents. Nothing reaches the command history.
func (e *Engine) CancelStroke() {
	e.stopAccumulation()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active && e.modified {
		copy(e.target.data, e.snapshot)
	}
	e.resetSession()
}

// resetSession clears all per-stroke state. Callers hold e.mu.
func (e *Engine) resetSession() {
	e.target = nil
	e.snapshot = nil
	e.dirty = Rect{}
	e.carry = 0
	e.active = false
	e.modified = false
}

// startAccumulation launches the ticker goroutine that re-applies the
// last dab while the pointer is stationary.
func (e *Engine) startAccumulation(interval time.Duration) {
	e.ticker = time.NewTicker(interval)
	e.stopAccum = make(chan struct{})
	e.accumDone.Add(1)
	go func() {
		defer e.accumDone.Done()
		for {
			select {
			case <-e.stopAccum:
				return
			case <-e.ticker.C:
				e.accumTick()
			}
		}
	}()
}

// stopAccumulation tears the ticker down and waits for the goroutine to
// exit, guaranteeing no dab lands after the session is finalized. Must be
// called without e.mu held: the ticker goroutine takes the mutex.
func (e *Engine) stopAccumulation() {
	if e.stopAccum == nil {
		return
	}
	close(e.stopAccum)
	e.accumDone.Wait()
	e.ticker.Stop()
	e.ticker = nil
	e.stopAccum = nil
}

func (e *Engine) accumTick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		return
	}
	e.placeDab(e.last)
}

// placeDab stamps one brush dab centered at pt. Callers hold e.mu.
func (e *Engine) placeDab(pt StrokePoint) {
	v := e.opts.variant()

	pressure := pt.Pressure
	if pressure <= 0 {
		pressure = 1
	}

	sizeFactor := pressure
	if v.NoPressureSize {
		sizeFactor = 1
	}
	radius := e.opts.Size * sizeFactor / 2
	if radius < 0.5 {
		return
	}

	opacityFactor := pressure
	if v.NoPressureOpacity {
		opacityFactor = 1
	}
	baseAlpha := e.opts.Opacity * opacityFactor
	if baseAlpha <= 0 {
		return
	}

	x0 := int(math.Floor(pt.X - radius))
	y0 := int(math.Floor(pt.Y - radius))
	x1 := int(math.Ceil(pt.X + radius))
	y1 := int(math.Ceil(pt.Y + radius))

	hardRadius := e.opts.Hardness * radius
	wrote := false

	for y := y0; y <= y1; y++ {
		if y < 0 || y >= e.target.height {
			continue
		}
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= e.target.width {
				continue
			}
			dist := math.Hypot(float64(x)-pt.X, float64(y)-pt.Y)
			if dist > radius {
				continue
			}

			alpha := baseAlpha
			if !v.NoAntialias && dist > hardRadius {
				// Linear falloff from the hardness ring to the rim.
				// hardness 1 puts the ring on the rim itself, leaving
				// a binary edge.
				alpha *= 1 - (dist-hardRadius)/(radius-hardRadius)
			}
			contribution := alpha
			if !e.opts.Eraser {
				contribution = alpha * e.opts.Color.A
			}
			if contribution < 1.0/255 {
				continue
			}

			if e.compositePixel(x, y, alpha) {
				wrote = true
			}
		}
	}

	if wrote {
		e.modified = true
		dabRect := Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
		e.dirty = e.dirty.Union(dabRect.Clamp(e.target.width, e.target.height))
	}
}

// compositePixel applies a dab contribution with the given alpha to one
// pixel, in non-premultiplied space. Eraser mode subtracts alpha from the
// destination alpha channel and never touches RGB. Reports whether the
// pixel bytes actually changed.
func (e *Engine) compositePixel(x, y int, alpha float64) bool {
	i := (y*e.target.width + x) * 4
	d := e.target.data

	if e.opts.Eraser {
		oldA := d[i+3]
		newA := uint8(clamp255(float64(oldA) - alpha*255))
		if newA == oldA {
			return false
		}
		d[i+3] = newA
		return true
	}

	srcA := alpha * e.opts.Color.A
	dstA := float64(d[i+3]) / 255
	outA := srcA + dstA*(1-srcA)

	var outR, outG, outB float64
	if outA > 0 {
		dstR := float64(d[i+0]) / 255
		dstG := float64(d[i+1]) / 255
		dstB := float64(d[i+2]) / 255
		outR = (e.opts.Color.R*srcA + dstR*dstA*(1-srcA)) / outA
		outG = (e.opts.Color.G*srcA + dstG*dstA*(1-srcA)) / outA
		outB = (e.opts.Color.B*srcA + dstB*dstA*(1-srcA)) / outA
	}

	nr := uint8(clamp255(outR*255 + 0.5))
	ng := uint8(clamp255(outG*255 + 0.5))
	nb := uint8(clamp255(outB*255 + 0.5))
	na := uint8(clamp255(outA*255 + 0.5))

	if nr == d[i+0] && ng == d[i+1] && nb == d[i+2] && na == d[i+3] {
		return false
	}
	d[i+0] = nr
	d[i+1] = ng
	d[i+2] = nb
	d[i+3] = na
	return true
}
