package sketch

// Style selects whether a path is stroked or filled.
type Style int

const (
	// StyleStroke paints the outline of the path with the paint's Stroke.
	StyleStroke Style = iota
	// StyleFill paints the interior of the path with the nonzero rule.
	StyleFill
)

// Shader computes a color per pixel. Coordinates are pixel centres in
// target space.
type Shader interface {
	ColorAt(x, y float64) Color
}

// Paint is the complete styling of one draw call. It is a value: modifiers
// return copies and a Paint is never changed behind the caller's back.
type Paint struct {
	// Color is used when Shader is nil.
	Color Color

	// Shader, when set, overrides Color.
	Shader Shader

	// Stroke applies when Style is StyleStroke.
	Stroke Stroke

	// Style selects stroking or filling.
	Style Style
}

// NewPaint returns a stroking paint with the default pen.
func NewPaint(c Color) Paint {
	return Paint{
		Color:  c,
		Stroke: DefaultStroke(),
		Style:  StyleStroke,
	}
}

// WithColor returns a copy of the Paint with a solid color and no shader.
func (p Paint) WithColor(c Color) Paint {
	p.Color = c
	p.Shader = nil
	return p
}

// WithShader returns a copy of the Paint using sh for its colors.
func (p Paint) WithShader(sh Shader) Paint {
	p.Shader = sh
	return p
}

// WithStroke returns a copy of the Paint with the given stroke style.
func (p Paint) WithStroke(s Stroke) Paint {
	p.Stroke = s
	return p
}

// WithStyle returns a copy of the Paint with the given style.
func (p Paint) WithStyle(s Style) Paint {
	p.Style = s
	return p
}

// colorAt returns the paint color at a pixel centre.
func (p Paint) colorAt(x, y float64) Color {
	if p.Shader != nil {
		return p.Shader.ColorAt(x, y)
	}
	return p.Color
}
