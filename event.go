package sketch

// PointerKind is the kind of a pointer event.
type PointerKind uint8

const (
	// PointerDown starts a gesture.
	PointerDown PointerKind = iota
	// PointerMove reports a new position during a gesture.
	PointerMove
	// PointerUp ends a gesture. Its position is ignored by the stroke engine.
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a single pointer sample in device pixels.
type PointerEvent struct {
	Kind     PointerKind
	Position Point
}

// Down returns a PointerDown event at (x, y).
func Down(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerDown, Position: Pt(x, y)}
}

// Move returns a PointerMove event at (x, y).
func Move(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerMove, Position: Pt(x, y)}
}

// Up returns a PointerUp event.
func Up() PointerEvent {
	return PointerEvent{Kind: PointerUp}
}

// UpAt returns a PointerUp event carrying the release position, for
// consumers such as the color picker that hit-test on release.
func UpAt(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerUp, Position: Pt(x, y)}
}
