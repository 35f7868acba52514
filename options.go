package sketch

// Option configures a StrokeEngine during creation.
//
// Example:
//
//	e, err := sketch.NewStrokeEngine(480, 800,
//	    sketch.WithScale(2),
//	    sketch.WithColor(sketch.Blue),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for StrokeEngine creation.
type engineOptions struct {
	scale      float64
	stroke     Stroke
	color      Color
	background Color
	paper      Color
	invalidate func()
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		scale:      1,
		stroke:     DefaultStroke(),
		color:      Red,
		background: DarkGray,
		paper:      White,
	}
}

// WithScale sets the device scale factor. The raster buffer is allocated at
// round(width*scale) x round(height*scale). Non-positive values are ignored.
func WithScale(scale float64) Option {
	return func(o *engineOptions) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// WithStroke sets the pen used for the preview and for committed strokes.
func WithStroke(s Stroke) Option {
	return func(o *engineOptions) {
		o.stroke = s
	}
}

// WithColor sets the initial stroke color. The default is opaque red.
func WithColor(c Color) Option {
	return func(o *engineOptions) {
		o.color = c
	}
}

// WithBackground sets the color drawn behind the paper by Render.
func WithBackground(c Color) Option {
	return func(o *engineOptions) {
		o.background = c
	}
}

// WithPaper sets the color of the rectangle drawn under the raster buffer.
func WithPaper(c Color) Option {
	return func(o *engineOptions) {
		o.paper = c
	}
}

// WithInvalidate registers a callback invoked whenever the rendered frame
// would change. Hosts use it to schedule a redraw instead of polling.
func WithInvalidate(fn func()) Option {
	return func(o *engineOptions) {
		o.invalidate = fn
	}
}
