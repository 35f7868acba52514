package stroke

import "math"

// Cap specifies the shape of stroke endpoints.
type Cap uint8

const (
	// CapButt ends the stroke flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a semicircle of radius Width/2.
	CapRound
	// CapSquare extends the stroke Width/2 beyond the endpoint.
	CapSquare
)

// Join specifies the shape of corners between segments.
type Join uint8

const (
	// JoinMiter extends the outer edges until they meet, up to MiterLimit.
	JoinMiter Join = iota
	// JoinRound fills the corner with a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

// Style describes the stroke to expand.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

const (
	defaultTolerance  = 0.25
	defaultMiterLimit = 4.0
	maxFlattenDepth   = 16
	zeroLength        = 1e-9
)

// Expander converts stroked paths to fill outlines. An Expander may be
// reused for several paths but not concurrently.
type Expander struct {
	style      Style
	tolerance  float64
	joinThresh float64

	out      []Element
	forward  []Element
	backward []Element

	start     Point
	startTan  Point
	startNorm Point
	last      Point
	lastTan   Point
	lastNorm  Point

	open bool // the current subpath has a start point
	dot  bool // the current subpath contained zero-length segments
}

// NewExpander creates an expander for style. A non-positive MiterLimit is
// replaced by 4.
func NewExpander(style Style) *Expander {
	if style.MiterLimit <= 0 {
		style.MiterLimit = defaultMiterLimit
	}
	return &Expander{style: style, tolerance: defaultTolerance}
}

// SetTolerance sets the maximum distance between a curve and its flattened
// approximation. Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the fill outline of path stroked with the expander's style.
// The returned slice is freshly allocated.
func (e *Expander) Expand(path []Element) []Element {
	e.out = nil
	if e.style.Width <= 0 {
		return nil
	}
	e.joinThresh = 2 * e.tolerance / e.style.Width
	e.resetSubpath()
	e.start, e.last = Point{}, Point{}

	for _, el := range path {
		switch el.Verb {
		case VerbMove:
			e.finish()
			e.start, e.last = el.Pts[0], el.Pts[0]
			e.open = true
		case VerbLine:
			e.lineTo(el.Pts[0])
		case VerbQuad:
			e.flattenQuad(e.last, el.Pts[0], el.Pts[1], 0)
		case VerbCubic:
			e.flattenCubic(e.last, el.Pts[0], el.Pts[1], el.Pts[2], 0)
		case VerbClose:
			if e.last != e.start {
				e.lineTo(e.start)
			}
			e.finishClosed()
		}
	}
	e.finish()
	return e.out
}

func (e *Expander) resetSubpath() {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
	e.open = false
	e.dot = false
}

// lineTo offsets one straight segment from e.last to p.
func (e *Expander) lineTo(p Point) {
	e.open = true
	tan := p.Sub(e.last)
	l := tan.Len()
	if l < zeroLength {
		e.dot = true
		return
	}
	norm := tan.Perp().Scale(0.5 * e.style.Width / l)

	if len(e.forward) == 0 {
		e.forward = append(e.forward, Move(e.last.Add(norm)))
		e.backward = append(e.backward, Move(e.last.Sub(norm)))
		e.startTan, e.startNorm = tan, norm
	} else {
		e.join(e.last, tan, norm)
	}

	e.forward = append(e.forward, Line(p.Add(norm)))
	e.backward = append(e.backward, Line(p.Sub(norm)))
	e.last, e.lastTan, e.lastNorm = p, tan, norm
}

// join connects the previous segment to one leaving p0 along tan.
func (e *Expander) join(p0, tan, norm Point) {
	cross := e.lastTan.Cross(tan)
	dot := e.lastTan.Dot(tan)
	hypot := math.Hypot(cross, dot)

	// Nearly collinear: connect without a visible corner.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward = append(e.forward, Line(p0.Add(norm)))
		e.backward = append(e.backward, Line(p0.Sub(norm)))
		return
	}

	// The side away from the turn gets the join, the other side is routed
	// through the centre so the outline keeps a consistent winding.
	outer, inner, sign := &e.backward, &e.forward, -1.0
	if cross < 0 {
		outer, inner, sign = &e.forward, &e.backward, 1.0
	}
	from := e.lastNorm.Scale(sign)
	to := norm.Scale(sign)
	*inner = append(*inner, Line(p0), Line(p0.Sub(to)))

	switch e.style.Join {
	case JoinRound:
		*outer = appendArc(*outer, p0, from, math.Atan2(cross, dot))
		return
	case JoinMiter:
		r2 := 0.25 * e.style.Width * e.style.Width
		cosTheta := e.lastNorm.Dot(norm) / r2
		limit := e.style.MiterLimit
		if 1+cosTheta > zeroLength && (1+cosTheta)/2 >= 1/(limit*limit) {
			miter := from.Add(to).Scale(1 / (1 + cosTheta))
			*outer = append(*outer, Line(p0.Add(miter)))
		}
	}
	*outer = append(*outer, Line(p0.Add(to)))
}

// finish closes an open subpath with caps.
func (e *Expander) finish() {
	defer e.resetSubpath()
	if len(e.forward) == 0 {
		if e.open && e.dot {
			e.emitDot(e.start)
		}
		return
	}

	e.out = append(e.out, e.forward...)
	e.emitCap(e.last, e.lastNorm)
	e.appendReversed(e.backward)
	e.emitCap(e.start, e.startNorm.Neg())
	e.out = append(e.out, ClosePath())
}

// finishClosed emits a closed subpath as two rings.
func (e *Expander) finishClosed() {
	defer e.resetSubpath()
	if len(e.forward) == 0 {
		if e.dot {
			e.emitDot(e.start)
		}
		return
	}

	e.join(e.start, e.startTan, e.startNorm)
	e.out = append(e.out, e.forward...)
	e.out = append(e.out, ClosePath())

	e.out = append(e.out, Move(e.backward[len(e.backward)-1].End()))
	e.appendReversed(e.backward)
	e.out = append(e.out, ClosePath())
}

// emitCap draws a cap around center starting at center+n and ending at
// center-n, bulging outward from the stroke.
func (e *Expander) emitCap(center, n Point) {
	switch e.style.Cap {
	case CapRound:
		e.out = appendArc(e.out, center, n, -math.Pi)
	case CapSquare:
		o := Point{X: n.Y, Y: -n.X}
		e.out = append(e.out,
			Line(center.Add(n).Add(o)),
			Line(center.Sub(n).Add(o)),
			Line(center.Sub(n)),
		)
	default:
		e.out = append(e.out, Line(center.Sub(n)))
	}
}

// emitDot paints the cap shape of a zero-length subpath.
func (e *Expander) emitDot(c Point) {
	r := e.style.Width / 2
	switch e.style.Cap {
	case CapRound:
		n := Point{X: r}
		e.out = append(e.out, Move(c.Add(n)))
		e.out = appendArc(e.out, c, n, 2*math.Pi)
		e.out = append(e.out, ClosePath())
	case CapSquare:
		e.out = append(e.out,
			Move(Point{X: c.X - r, Y: c.Y - r}),
			Line(Point{X: c.X + r, Y: c.Y - r}),
			Line(Point{X: c.X + r, Y: c.Y + r}),
			Line(Point{X: c.X - r, Y: c.Y + r}),
			ClosePath(),
		)
	}
}

// appendReversed walks an offset path backwards. Offset paths only hold
// moves, lines and cubic arcs.
func (e *Expander) appendReversed(path []Element) {
	for i := len(path) - 1; i >= 1; i-- {
		to := path[i-1].End()
		switch el := path[i]; el.Verb {
		case VerbLine:
			e.out = append(e.out, Line(to))
		case VerbCubic:
			e.out = append(e.out, Cubic(el.Pts[1], el.Pts[0], to))
		}
	}
}

// appendArc appends a circular arc around c, starting at c+v and turning by
// angle radians, as cubic Beziers of at most 90 degrees each.
func appendArc(dst []Element, c, v Point, angle float64) []Element {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if n < 1 {
		return dst
	}
	step := angle / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	for i := 0; i < n; i++ {
		w := v.Rotate(step)
		p0 := c.Add(v)
		p3 := c.Add(w)
		dst = append(dst, Cubic(
			p0.Add(v.Perp().Scale(k)),
			p3.Sub(w.Perp().Scale(k)),
			p3,
		))
		v = w
	}
	return dst
}

func (e *Expander) flattenQuad(p0, p1, p2 Point, depth int) {
	if depth >= maxFlattenDepth || distanceToSegment(p1, p0, p2) <= e.tolerance {
		e.lineTo(p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	m := q0.Lerp(q1, 0.5)
	e.flattenQuad(p0, q0, m, depth+1)
	e.flattenQuad(m, q1, p2, depth+1)
}

func (e *Expander) flattenCubic(p0, p1, p2, p3 Point, depth int) {
	d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxFlattenDepth || d <= e.tolerance {
		e.lineTo(p3)
		return
	}
	// de Casteljau split at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	e.flattenCubic(p0, q0, r0, s, depth+1)
	e.flattenCubic(s, r1, q2, p3, depth+1)
}

// distanceToSegment returns the distance from p to the segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < zeroLength {
		return p.Sub(a).Len()
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(a.Add(ab.Scale(t))).Len()
}
