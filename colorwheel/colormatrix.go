package colorwheel

import (
	"math"

	"github.com/gogpu/sketch"
)

// ColorMatrix is a 4x5 color transformation matrix in row-major order.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// Channel values are in [0, 255] during the transformation.
// The zero value is the all-zero matrix; call Reset for identity.
type ColorMatrix [20]float32

// NewColorMatrix returns the identity matrix.
func NewColorMatrix() *ColorMatrix {
	m := &ColorMatrix{}
	m.Reset()
	return m
}

// Reset sets m to identity.
func (m *ColorMatrix) Reset() {
	*m = ColorMatrix{}
	m[0], m[6], m[12], m[18] = 1, 1, 1, 1
}

// SetRGB2YUV sets m to convert RGB to YUV (JPEG coefficients).
func (m *ColorMatrix) SetRGB2YUV() {
	m.Reset()
	m[0], m[1], m[2] = 0.299, 0.587, 0.114
	m[5], m[6], m[7] = -0.16874, -0.33126, 0.5
	m[10], m[11], m[12] = 0.5, -0.41869, -0.08131
}

// SetYUV2RGB sets m to convert YUV back to RGB.
func (m *ColorMatrix) SetYUV2RGB() {
	m.Reset()
	m[0], m[1], m[2] = 1, 0, 1.402
	m[5], m[6], m[7] = 1, -0.34414, -0.71414
	m[10], m[11], m[12] = 1, 1.772, 0
}

// SetRotate sets m to a rotation of degrees around one color axis:
// 0 for red, 1 for green, 2 for blue. In YUV space axis 0 is luma, so the
// rotation turns the hue. Unknown axes leave m at identity.
func (m *ColorMatrix) SetRotate(axis int, degrees float32) {
	m.Reset()
	rad := float64(degrees) * math.Pi / 180
	c := float32(math.Cos(rad))
	s := float32(math.Sin(rad))
	switch axis {
	case 0:
		m[6], m[12] = c, c
		m[7], m[11] = s, -s
	case 1:
		m[0], m[12] = c, c
		m[2], m[10] = -s, s
	case 2:
		m[0], m[6] = c, c
		m[1], m[5] = s, -s
	}
}

// SetConcat sets m to a * b, so that applying m equals applying b then a.
// m may alias a or b.
func (m *ColorMatrix) SetConcat(a, b *ColorMatrix) {
	var tmp ColorMatrix
	idx := 0
	for j := 0; j < 20; j += 5 {
		for i := 0; i < 4; i++ {
			tmp[idx] = a[j]*b[i] + a[j+1]*b[i+5] + a[j+2]*b[i+10] + a[j+3]*b[i+15]
			idx++
		}
		tmp[idx] = a[j]*b[4] + a[j+1]*b[9] + a[j+2]*b[14] + a[j+3]*b[19] + a[j+4]
		idx++
	}
	*m = tmp
}

// PostConcat appends post to m: the result applies m first, then post.
func (m *ColorMatrix) PostConcat(post *ColorMatrix) {
	m.SetConcat(post, m)
}

// Apply transforms the color channels of c with the first three rows of m.
// Results are rounded half up and clamped; alpha is copied unchanged.
func (m *ColorMatrix) Apply(c sketch.Color) sketch.Color {
	r, g, b, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	row := func(i int) uint8 {
		v := m[i]*r + m[i+1]*g + m[i+2]*b + m[i+3]*a + m[i+4]
		return clampByte(int(math.Floor(float64(v) + 0.5)))
	}
	return sketch.Color{R: row(0), G: row(5), B: row(10), A: c.A}
}
