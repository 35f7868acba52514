package sketch

import "github.com/gogpu/sketch/internal/stroke"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in pixels.
	Width float64

	// Cap is the shape of line endpoints.
	Cap LineCap

	// Join is the shape of line joins.
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	MiterLimit float64
}

// DefaultStroke returns the freehand pen: 10 pixels wide with round caps and
// joins, so a tap leaves a dot and sharp turns stay smooth.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      10,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 4,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

func (s Stroke) style() stroke.Style {
	st := stroke.Style{Width: s.Width, MiterLimit: s.MiterLimit}
	switch s.Cap {
	case LineCapRound:
		st.Cap = stroke.CapRound
	case LineCapSquare:
		st.Cap = stroke.CapSquare
	default:
		st.Cap = stroke.CapButt
	}
	switch s.Join {
	case LineJoinRound:
		st.Join = stroke.JoinRound
	case LineJoinBevel:
		st.Join = stroke.JoinBevel
	default:
		st.Join = stroke.JoinMiter
	}
	return st
}
