package colorwheel

import (
	"math"

	"github.com/gogpu/sketch"
)

// Sweep is an angular gradient around a center point. It implements
// sketch.Shader and paints the picker ring.
//
// Stops are spaced evenly over a full turn starting at the positive x axis
// and running clockwise on screen, so Sweep agrees with ColorAt for the
// same stops.
type Sweep struct {
	Center sketch.Point
	Stops  []sketch.Color
}

// NewSweep creates a sweep gradient centered at (cx, cy).
func NewSweep(cx, cy float64, stops []sketch.Color) *Sweep {
	return &Sweep{Center: sketch.Pt(cx, cy), Stops: stops}
}

// ColorAt implements sketch.Shader.
func (s *Sweep) ColorAt(x, y float64) sketch.Color {
	dx := x - s.Center.X
	dy := y - s.Center.Y
	if dx == 0 && dy == 0 {
		return Interpolate(s.Stops, 0)
	}
	return Interpolate(s.Stops, Unit(math.Atan2(dy, dx)))
}
