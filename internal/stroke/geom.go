package stroke

import "math"

// Point is a 2D point or vector. It mirrors the public point type to avoid
// an import cycle.
type Point struct {
	X, Y float64
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns the vector scaled by s.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Neg returns the negated vector.
func (p Point) Neg() Point { return Point{X: -p.X, Y: -p.Y} }

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the 3D cross product.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the length of the vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Perp returns the vector rotated by +90 degrees.
func (p Point) Perp() Point { return Point{X: -p.Y, Y: p.X} }

// Rotate returns the vector rotated by angle radians.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Verb identifies the kind of an Element.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbCubic
	VerbClose
)

// Element is one path command. Pts holds, in order, the control points
// followed by the end point; unused slots are zero.
type Element struct {
	Verb Verb
	Pts  [3]Point
}

// Move returns a move-to element.
func Move(p Point) Element { return Element{Verb: VerbMove, Pts: [3]Point{p}} }

// Line returns a line-to element.
func Line(p Point) Element { return Element{Verb: VerbLine, Pts: [3]Point{p}} }

// Quad returns a quadratic curve element.
func Quad(c, p Point) Element { return Element{Verb: VerbQuad, Pts: [3]Point{c, p}} }

// Cubic returns a cubic curve element.
func Cubic(c1, c2, p Point) Element { return Element{Verb: VerbCubic, Pts: [3]Point{c1, c2, p}} }

// ClosePath returns a close element.
func ClosePath() Element { return Element{Verb: VerbClose} }

// End returns the point the element finishes at. Close has no point of its
// own and returns the zero point.
func (e Element) End() Point {
	switch e.Verb {
	case VerbMove, VerbLine:
		return e.Pts[0]
	case VerbQuad:
		return e.Pts[1]
	case VerbCubic:
		return e.Pts[2]
	}
	return Point{}
}
