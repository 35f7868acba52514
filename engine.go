package sketch

import "math"

// State is the gesture state of a StrokeEngine.
type State uint8

const (
	// Idle means no pointer is down.
	Idle State = iota
	// Tracking means a stroke is in progress.
	Tracking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Tracking:
		return "Tracking"
	default:
		return "Unknown"
	}
}

// Transition describes the effect of one pointer event.
type Transition struct {
	From, To State

	// Registered is true when the event added a point to the active segment.
	Registered bool

	// Committed is true when the event rasterized a stroke into the buffer.
	Committed bool
}

// StrokeEngine turns pointer samples into strokes and commits them into a
// persistent RasterBuffer.
//
// Pointer positions are quantized to a grid of PixelSize device pixels.
// Moves that stay inside the same grid cell are dropped. Registered samples
// extend a live preview path with midpoint-smoothed quadratic curves, and
// the whole preview is rasterized in one draw call on pointer-up.
//
// StrokeEngine is not safe for concurrent use.
type StrokeEngine struct {
	width, height int
	scale         float64

	paint      Paint
	background Color
	paper      Color
	invalidate func()

	buffer  *RasterBuffer
	preview *Path
	segment *Segment
	last    GridPoint
	state   State
}

// NewStrokeEngine creates an engine for a canvas of width x height device
// pixels. The raster buffer is allocated at the scaled size.
func NewStrokeEngine(width, height int, opts ...Option) (*StrokeEngine, error) {
	if width <= 0 || height <= 0 {
		return nil, &InvalidInputError{Op: "NewStrokeEngine", Reason: "canvas size must be positive"}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &StrokeEngine{
		width:      width,
		height:     height,
		scale:      o.scale,
		paint:      NewPaint(o.color).WithStroke(o.stroke),
		background: o.background,
		paper:      o.paper,
		invalidate: o.invalidate,
		preview:    NewPath(),
	}
	e.buffer = e.newBuffer()
	return e, nil
}

func (e *StrokeEngine) newBuffer() *RasterBuffer {
	w := int(math.Round(float64(e.width) * e.scale))
	h := int(math.Round(float64(e.height) * e.scale))
	return NewRasterBuffer(w, h)
}

// PointerDown starts a stroke at (x, y). A stroke already in progress is
// abandoned without being committed.
func (e *StrokeEngine) PointerDown(x, y float64) Transition {
	t := Transition{From: e.state, To: Tracking, Registered: true}

	e.last = Quantize(Pt(x, y))
	e.segment = NewSegment(e.paint.Color)
	e.segment.AddPoint(e.last)
	e.preview.Reset()
	e.preview.MoveTo(x, y)
	e.state = Tracking

	Logger().Debug("stroke started",
		"segment", e.segment.ID,
		"x", e.last.X, "y", e.last.Y,
		"color", e.segment.Color)
	e.notify()
	return t
}

// PointerMove extends the stroke when the pointer has left the grid cell of
// the last registered point. It is ignored while Idle.
func (e *StrokeEngine) PointerMove(x, y float64) Transition {
	t := Transition{From: e.state, To: e.state}
	if e.state != Tracking {
		return t
	}

	g := Quantize(Pt(x, y))
	dx, dy := g.Delta(e.last)
	if dx < 1 && dy < 1 {
		return t
	}

	e.preview.smoothTo(e.last, g, PixelSize)
	e.last = g
	e.segment.AddPoint(g)

	t.Registered = true
	e.notify()
	return t
}

// PointerUp finishes the stroke and rasterizes it into the buffer with the
// current paint. It is ignored while Idle.
func (e *StrokeEngine) PointerUp() Transition {
	t := Transition{From: e.state, To: Idle}
	if e.state != Tracking {
		return t
	}

	e.preview.finishSmooth(e.last, PixelSize)
	e.buffer.DrawPath(e.preview, e.paint)
	t.Committed = true

	Logger().Debug("stroke committed",
		"segment", e.segment.ID,
		"points", e.segment.Len(),
		"color", e.paint.Color)

	e.preview.Reset()
	e.segment = nil
	e.state = Idle
	e.notify()
	return t
}

// HandlePointerEvent dispatches ev to PointerDown, PointerMove or PointerUp.
func (e *StrokeEngine) HandlePointerEvent(ev PointerEvent) Transition {
	switch ev.Kind {
	case PointerDown:
		return e.PointerDown(ev.Position.X, ev.Position.Y)
	case PointerMove:
		return e.PointerMove(ev.Position.X, ev.Position.Y)
	case PointerUp:
		return e.PointerUp()
	default:
		return Transition{From: e.state, To: e.state}
	}
}

// SetColor sets the stroke color. The paint is read when a stroke is
// committed, so changing it mid-stroke recolors the whole pending stroke.
func (e *StrokeEngine) SetColor(c Color) {
	e.paint = e.paint.WithColor(c)
	e.notify()
}

// Color returns the current stroke color.
func (e *StrokeEngine) Color() Color {
	return e.paint.Color
}

// SetStroke replaces the pen.
func (e *StrokeEngine) SetStroke(s Stroke) {
	e.paint = e.paint.WithStroke(s)
	e.notify()
}

// Stroke returns the current pen.
func (e *StrokeEngine) Stroke() Stroke {
	return e.paint.Stroke
}

// Clear discards all committed strokes and any stroke in progress.
// The buffer keeps its size.
func (e *StrokeEngine) Clear() {
	e.buffer = NewRasterBuffer(e.buffer.Width(), e.buffer.Height())
	e.reset()
	Logger().Debug("canvas cleared", "width", e.buffer.Width(), "height", e.buffer.Height())
	e.notify()
}

// Resize reallocates the buffer for a canvas of width x height device
// pixels. Committed content is lost.
func (e *StrokeEngine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		Logger().Warn("resize to empty canvas", "width", width, "height", height)
	}
	e.width = max(width, 0)
	e.height = max(height, 0)
	e.buffer = e.newBuffer()
	e.reset()
	Logger().Debug("canvas resized",
		"width", e.buffer.Width(), "height", e.buffer.Height(),
		"scale", e.scale)
	e.notify()
}

func (e *StrokeEngine) reset() {
	e.preview.Reset()
	e.segment = nil
	e.state = Idle
}

// Render draws a frame into dst: background, paper, committed strokes,
// and the stroke in progress on top. It does not change the engine.
func (e *StrokeEngine) Render(dst *RasterBuffer) {
	dst.Fill(e.background)
	dst.FillRect(e.buffer.Bounds(), e.paper)
	dst.Composite(e.buffer, 0, 0)
	if e.state == Tracking {
		dst.DrawPath(e.preview, e.paint)
	}
}

// State returns the gesture state.
func (e *StrokeEngine) State() State {
	return e.state
}

// Segment returns the stroke in progress, or nil while Idle.
func (e *StrokeEngine) Segment() *Segment {
	return e.segment
}

// Preview returns a copy of the live preview path.
func (e *StrokeEngine) Preview() *Path {
	return e.preview.Clone()
}

// Buffer returns the persistent raster buffer. It is replaced by Clear and
// Resize, so callers should not hold on to it.
func (e *StrokeEngine) Buffer() *RasterBuffer {
	return e.buffer
}

// Scale returns the device scale factor.
func (e *StrokeEngine) Scale() float64 {
	return e.scale
}

func (e *StrokeEngine) notify() {
	if e.invalidate != nil {
		e.invalidate()
	}
}
