package sketch

// SmoothPath builds the stroke curve for a sequence of grid points.
//
// The path starts at the first point. Every following point adds a quadratic
// curve whose control point is the previous grid point and whose end point is
// the midpoint between the two, and a final line reaches the last point.
// Coordinates are multiplied by scale*PixelSize.
//
// A single point yields a lone MoveTo. An empty sequence is rejected with an
// *InvalidInputError.
func SmoothPath(points []GridPoint, scale float64) (*Path, error) {
	if len(points) == 0 {
		return nil, &InvalidInputError{Op: "SmoothPath", Reason: "no points"}
	}

	unit := scale * PixelSize
	path := NewPath()

	cur := points[0].Scale(unit)
	path.MoveTo(cur.X, cur.Y)
	if len(points) == 1 {
		return path, nil
	}

	for i := 1; i < len(points); i++ {
		path.smoothTo(points[i-1], points[i], unit)
	}
	path.finishSmooth(points[len(points)-1], unit)
	return path, nil
}

// smoothTo appends the curve from prev towards next: prev is the control
// point and the midpoint of the two is the end point.
func (p *Path) smoothTo(prev, next GridPoint, unit float64) {
	ctrl := prev.Scale(unit)
	mid := prev.Mid(next, unit)
	p.QuadraticTo(ctrl.X, ctrl.Y, mid.X, mid.Y)
}

// finishSmooth closes the gap between the last midpoint and the last point.
func (p *Path) finishSmooth(last GridPoint, unit float64) {
	end := last.Scale(unit)
	p.LineTo(end.X, end.Y)
}
