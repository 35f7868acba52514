package colorwheel

import (
	"math"

	"github.com/gogpu/sketch"
)

// State is the gesture state of a Picker.
type State uint8

const (
	// Idle means no pointer is down.
	Idle State = iota
	// TrackingCenter means the gesture started inside the center disc.
	TrackingCenter
	// TrackingRing means the gesture started outside the center disc.
	TrackingRing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case TrackingCenter:
		return "TrackingCenter"
	case TrackingRing:
		return "TrackingRing"
	default:
		return "Unknown"
	}
}

// Transition describes the effect of one pointer event on a Picker.
type Transition struct {
	From, To State

	// Changed is true when the picker needs to be redrawn.
	Changed bool

	// Committed is true when the swatch color was sent to the listener.
	Committed bool
}

const highlightWidth = 5

// Picker is the pointer state machine of the color wheel.
//
// Any press outside the center disc picks the hue under the pointer and
// keeps following it. A press inside the disc highlights it, and releasing
// inside the disc commits the swatch color to the listener.
//
// Picker is not safe for concurrent use.
type Picker struct {
	center       sketch.Point
	centerRadius float64
	ringWidth    float64
	stops        []sketch.Color
	listener     func(sketch.Color)

	swatch    sketch.Color
	highlight bool
	state     State
}

// NewPicker creates a picker with the given options.
func NewPicker(opts ...Option) *Picker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Picker{
		center:       o.center,
		centerRadius: o.centerRadius,
		ringWidth:    o.ringWidth,
		stops:        o.stops,
		listener:     o.listener,
		swatch:       o.initial,
	}
}

// HandlePointerEvent advances the gesture. Up events are hit-tested at
// their Position.
func (p *Picker) HandlePointerEvent(ev sketch.PointerEvent) Transition {
	t := Transition{From: p.state}
	inCenter := p.inCenter(ev.Position)

	switch ev.Kind {
	case sketch.PointerDown:
		if inCenter {
			p.state = TrackingCenter
			p.highlight = true
		} else {
			p.state = TrackingRing
			p.pick(ev.Position)
		}
		t.Changed = true

	case sketch.PointerMove:
		if p.state == TrackingCenter {
			if p.highlight != inCenter {
				p.highlight = inCenter
				t.Changed = true
			}
		} else {
			t.Changed = p.pick(ev.Position)
		}

	case sketch.PointerUp:
		if p.state == TrackingCenter {
			if inCenter {
				t.Committed = true
			}
			t.Changed = true
		}
		p.state = Idle
		p.highlight = false
	}

	t.To = p.state
	if t.Committed {
		sketch.Logger().Debug("color picked", "color", p.swatch)
		if p.listener != nil {
			p.listener(p.swatch)
		}
	}
	return t
}

// pick sets the swatch to the color under pos and reports whether it
// changed.
func (p *Picker) pick(pos sketch.Point) bool {
	c := Interpolate(p.stops, Unit(pos.Sub(p.center).Angle()))
	if c == p.swatch {
		return false
	}
	p.swatch = c
	return true
}

func (p *Picker) inCenter(pos sketch.Point) bool {
	return pos.Distance(p.center) <= p.centerRadius
}

// Swatch returns the color shown in the center disc.
func (p *Picker) Swatch() sketch.Color {
	return p.swatch
}

// Highlighted reports whether the center disc is drawn highlighted.
func (p *Picker) Highlighted() bool {
	return p.state == TrackingCenter && p.highlight
}

// State returns the gesture state.
func (p *Picker) State() State {
	return p.state
}

// Size returns the width and height of the box the picker draws into.
func (p *Picker) Size() (width, height int) {
	return int(math.Ceil(2 * p.center.X)), int(math.Ceil(2 * p.center.Y))
}

// RingRadius returns the radius of the center line of the hue ring.
func (p *Picker) RingRadius() float64 {
	return p.center.X - p.ringWidth/2
}

// Render draws the ring, the swatch and, while the center is tracked,
// the highlight ring around the swatch.
func (p *Picker) Render(dst *sketch.RasterBuffer) {
	cx, cy := p.center.X, p.center.Y

	ring := sketch.NewPath()
	ring.Circle(cx, cy, p.RingRadius())
	dst.DrawPath(ring, sketch.Paint{
		Shader: NewSweep(cx, cy, p.stops),
		Stroke: sketch.DefaultStroke().WithWidth(p.ringWidth),
		Style:  sketch.StyleStroke,
	})

	disc := sketch.NewPath()
	disc.Circle(cx, cy, p.centerRadius)
	dst.DrawPath(disc, sketch.NewPaint(p.swatch).WithStyle(sketch.StyleFill))

	if p.state != TrackingCenter {
		return
	}
	alpha := uint8(0x80)
	if p.highlight {
		alpha = 0xFF
	}
	halo := sketch.NewPath()
	halo.Circle(cx, cy, p.centerRadius+highlightWidth)
	dst.DrawPath(halo, sketch.NewPaint(p.swatch.WithAlpha(alpha)).
		WithStroke(sketch.DefaultStroke().WithWidth(highlightWidth)))
}
