package colorwheel

import "github.com/gogpu/sketch"

// Option configures a Picker during creation.
type Option func(*pickerOptions)

type pickerOptions struct {
	center       sketch.Point
	centerRadius float64
	ringWidth    float64
	stops        []sketch.Color
	initial      sketch.Color
	listener     func(sketch.Color)
}

func defaultOptions() pickerOptions {
	return pickerOptions{
		center:       sketch.Pt(100, 100),
		centerRadius: 32,
		ringWidth:    32,
		stops:        DefaultStops,
		initial:      sketch.Red,
	}
}

// WithCenter sets the center of the wheel. The picker occupies a
// 2*x by 2*y box and the ring touches its left edge.
func WithCenter(x, y float64) Option {
	return func(o *pickerOptions) {
		o.center = sketch.Pt(x, y)
	}
}

// WithCenterRadius sets the radius of the center disc. Presses within it
// track the swatch instead of picking a hue.
func WithCenterRadius(r float64) Option {
	return func(o *pickerOptions) {
		if r > 0 {
			o.centerRadius = r
		}
	}
}

// WithRingWidth sets the stroke width of the hue ring.
func WithRingWidth(w float64) Option {
	return func(o *pickerOptions) {
		if w > 0 {
			o.ringWidth = w
		}
	}
}

// WithStops replaces the gradient stops. Fewer than two stops are ignored.
func WithStops(stops []sketch.Color) Option {
	return func(o *pickerOptions) {
		if len(stops) >= 2 {
			o.stops = append([]sketch.Color(nil), stops...)
		}
	}
}

// WithInitialColor sets the swatch shown before any hue is picked.
func WithInitialColor(c sketch.Color) Option {
	return func(o *pickerOptions) {
		o.initial = c
	}
}

// WithListener registers fn to receive committed colors.
func WithListener(fn func(sketch.Color)) Option {
	return func(o *pickerOptions) {
		o.listener = fn
	}
}
