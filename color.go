package sketch

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha color with 8-bit channels.
// It packs to and from the 0xAARRGGBB layout used by touch toolkits.
type Color struct {
	R, G, B, A uint8
}

// ARGB creates a color from alpha, red, green and blue channels.
func ARGB(a, r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ARGB packs the color as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// WithAlpha returns a copy of the color with alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA implements color.Color. The returned values are premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", c.ARGB())
}

// premultiplied returns the channels multiplied by alpha, rounded.
func (c Color) premultiplied() (r, g, b, a uint8) {
	if c.A == 0xFF {
		return c.R, c.G, c.B, c.A
	}
	return mul255(c.R, c.A), mul255(c.G, c.A), mul255(c.B, c.A), c.A
}

func mul255(x, y uint8) uint8 {
	return uint8((uint16(x)*uint16(y) + 127) / 255)
}

// HSV creates an opaque color from hue in degrees [0, 360) and saturation
// and value in [0, 1].
func HSV(h, s, v float64) Color {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGB(r, g, b)
}

// HSV returns hue in degrees and saturation and value in [0, 1].
// Alpha is ignored.
func (c Color) HSV() (h, s, v float64) {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
}

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional.
func ParseHex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var ch [4]uint8
	ch[3] = 0xFF

	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			v, ok := hexNibble(s[i])
			if !ok {
				return Color{}, fmt.Errorf("sketch: bad hex color %q", hex)
			}
			ch[i] = v * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexNibble(s[i])
			lo, ok2 := hexNibble(s[i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("sketch: bad hex color %q", hex)
			}
			ch[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("sketch: bad hex color %q", hex)
	}

	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(0xFF, 0xFF, 0xFF)
	DarkGray    = RGB(0x44, 0x44, 0x44)
	Red         = RGB(0xFF, 0, 0)
	Green       = RGB(0, 0xFF, 0)
	Blue        = RGB(0, 0, 0xFF)
	Yellow      = RGB(0xFF, 0xFF, 0)
	Cyan        = RGB(0, 0xFF, 0xFF)
	Magenta     = RGB(0xFF, 0, 0xFF)
	Transparent = Color{}
)
