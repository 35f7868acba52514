package sketch

import "math"

// Point represents a position in device pixels.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Angle returns the angle of the vector from the origin, in radians.
// The result is in [-Pi, Pi] with y growing downward, as in screen space.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// GridPoint is a position on the stroke grid. One unit is PixelSize
// device pixels.
type GridPoint struct {
	X, Y int
}

// Quantize maps a device-pixel position onto the grid cell containing it.
func Quantize(p Point) GridPoint {
	return GridPoint{
		X: int(math.Floor(p.X / PixelSize)),
		Y: int(math.Floor(p.Y / PixelSize)),
	}
}

// Scale converts the grid point to device pixels using unit pixels per cell.
func (g GridPoint) Scale(unit float64) Point {
	return Point{X: float64(g.X) * unit, Y: float64(g.Y) * unit}
}

// Mid returns the midpoint between g and h scaled by unit.
// The sum is formed on the grid before scaling, so the result is exact
// for integer units.
func (g GridPoint) Mid(h GridPoint, unit float64) Point {
	return Point{
		X: float64(g.X+h.X) * unit / 2,
		Y: float64(g.Y+h.Y) * unit / 2,
	}
}

// Delta returns the absolute per-axis distance between two grid points.
func (g GridPoint) Delta(h GridPoint) (dx, dy int) {
	dx, dy = h.X-g.X, h.Y-g.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx, dy
}
