package sketch

import "github.com/google/uuid"

// Segment is one continuous stroke from pointer-down to pointer-up: the
// grid points it visited and the color it was started with.
type Segment struct {
	ID     uuid.UUID
	Color  Color
	points []GridPoint
}

// NewSegment starts an empty segment with a fresh ID.
func NewSegment(c Color) *Segment {
	return &Segment{
		ID:     uuid.New(),
		Color:  c,
		points: make([]GridPoint, 0, 32),
	}
}

// AddPoint appends a grid point.
func (s *Segment) AddPoint(p GridPoint) {
	s.points = append(s.points, p)
}

// Points returns the recorded grid points. The slice must not be modified.
func (s *Segment) Points() []GridPoint {
	return s.points
}

// Len returns the number of recorded points.
func (s *Segment) Len() int {
	return len(s.points)
}

// Last returns the most recent point. ok is false for an empty segment.
func (s *Segment) Last() (p GridPoint, ok bool) {
	if len(s.points) == 0 {
		return GridPoint{}, false
	}
	return s.points[len(s.points)-1], true
}

// Path returns the smoothed curve through the segment's points at scale.
func (s *Segment) Path(scale float64) (*Path, error) {
	return SmoothPath(s.points, scale)
}
