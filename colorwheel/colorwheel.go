// Package colorwheel implements a hue ring color picker.
//
// The ring maps the angle of a pointer around its center onto a closed loop
// of gradient stops (red, magenta, blue, cyan, green, yellow and back to
// red). Pressing and releasing inside the center disc commits the color
// shown there.
//
// # Angles
//
// Angles are in radians, measured from the positive x axis with y growing
// downward, exactly as returned by math.Atan2(dy, dx) for screen
// coordinates. Negative angles wrap into [0, 2*Pi).
//
// # Usage
//
//	p := colorwheel.NewPicker(
//	    colorwheel.WithInitialColor(engine.Color()),
//	    colorwheel.WithListener(engine.SetColor),
//	)
//	p.HandlePointerEvent(sketch.Down(180, 100))
//	p.HandlePointerEvent(sketch.Move(100, 100))
//	p.HandlePointerEvent(sketch.UpAt(100, 100))
package colorwheel

import (
	"math"

	"github.com/gogpu/sketch"
)

// DefaultStops is the hue loop of the wheel. The first and last stops are
// the same color so the ring has no seam.
var DefaultStops = []sketch.Color{
	sketch.FromARGB(0xFFFF0000),
	sketch.FromARGB(0xFFFF00FF),
	sketch.FromARGB(0xFF0000FF),
	sketch.FromARGB(0xFF00FFFF),
	sketch.FromARGB(0xFF00FF00),
	sketch.FromARGB(0xFFFFFF00),
	sketch.FromARGB(0xFFFF0000),
}

// ColorAt returns the DefaultStops color at angle.
func ColorAt(angle float64) sketch.Color {
	return Interpolate(DefaultStops, Unit(angle))
}

// Unit converts an angle in radians to a fraction of a full turn.
// Negative angles are wrapped once, so results lie in [0, 1] for angles
// in [-2*Pi, 2*Pi].
func Unit(angle float64) float64 {
	u := angle / (2 * math.Pi)
	if u < 0 {
		u++
	}
	return u
}

// Interpolate returns the color at fraction unit along evenly spaced stops.
// unit is clamped to [0, 1]. Each channel, alpha included, is interpolated
// linearly and rounded to the nearest integer.
func Interpolate(stops []sketch.Color, unit float64) sketch.Color {
	switch {
	case len(stops) == 0:
		return sketch.Transparent
	case unit <= 0 || math.IsNaN(unit):
		return stops[0]
	case unit >= 1:
		return stops[len(stops)-1]
	}

	p := unit * float64(len(stops)-1)
	i := int(p)
	p -= float64(i)

	c0, c1 := stops[i], stops[i+1]
	return sketch.Color{
		R: ave(c0.R, c1.R, p),
		G: ave(c0.G, c1.G, p),
		B: ave(c0.B, c1.B, p),
		A: ave(c0.A, c1.A, p),
	}
}

// ave moves from s toward d by fraction p, rounding half up.
func ave(s, d uint8, p float64) uint8 {
	v := int(s) + int(math.Floor(p*float64(int(d)-int(s))+0.5))
	return clampByte(v)
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
