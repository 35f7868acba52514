package sketch

import (
	"image"
	"image/color"

	"github.com/gogpu/sketch/internal/blend"
)

// RasterBuffer is a rectangular premultiplied RGBA8 pixel surface.
// Its size is fixed for its lifetime; resizing means allocating a new one.
type RasterBuffer struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel
}

// NewRasterBuffer creates a fully transparent buffer.
// Negative dimensions are treated as zero.
func NewRasterBuffer(width, height int) *RasterBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &RasterBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the buffer in pixels.
func (b *RasterBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *RasterBuffer) Height() int {
	return b.height
}

// Data returns the raw premultiplied RGBA bytes.
func (b *RasterBuffer) Data() []uint8 {
	return b.data
}

// Pixel returns the straight-alpha color of a pixel.
// Out-of-bounds coordinates return Transparent.
func (b *RasterBuffer) Pixel(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := (y*b.width + x) * 4
	return FromColor(color.RGBA{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]})
}

// SetPixel replaces a single pixel. Out-of-bounds coordinates are ignored.
func (b *RasterBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i+0], b.data[i+1], b.data[i+2], b.data[i+3] = c.premultiplied()
}

// Fill replaces every pixel with c.
func (b *RasterBuffer) Fill(c Color) {
	r, g, bl, a := c.premultiplied()
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = r
		b.data[i+1] = g
		b.data[i+2] = bl
		b.data[i+3] = a
	}
}

// FillRect composites c over the pixels of rect, clipped to the buffer.
func (b *RasterBuffer) FillRect(rect image.Rectangle, c Color) {
	rect = rect.Intersect(b.Bounds())
	sr, sg, sb, sa := c.premultiplied()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			b.blendAt(x, y, sr, sg, sb, sa)
		}
	}
}

// Composite draws src over b with its top-left corner at (x, y).
func (b *RasterBuffer) Composite(src *RasterBuffer, x, y int) {
	if src == nil {
		return
	}
	dst := src.Bounds().Add(image.Pt(x, y)).Intersect(b.Bounds())
	for dy := dst.Min.Y; dy < dst.Max.Y; dy++ {
		for dx := dst.Min.X; dx < dst.Max.X; dx++ {
			j := ((dy-y)*src.width + (dx - x)) * 4
			sa := src.data[j+3]
			if sa == 0 {
				continue
			}
			b.blendAt(dx, dy, src.data[j], src.data[j+1], src.data[j+2], sa)
		}
	}
}

// blendAt composites a premultiplied color over the pixel at (x, y).
// The caller guarantees the coordinates are in bounds.
func (b *RasterBuffer) blendAt(x, y int, sr, sg, sb, sa uint8) {
	i := (y*b.width + x) * 4
	d := b.data[i : i+4 : i+4]
	d[0], d[1], d[2], d[3] = blend.SourceOver(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
}

// Clone returns a deep copy of the buffer.
func (b *RasterBuffer) Clone() *RasterBuffer {
	c := NewRasterBuffer(b.width, b.height)
	copy(c.data, b.data)
	return c
}

// ToImage copies the buffer into an image.RGBA.
func (b *RasterBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	copy(img.Pix, b.data)
	return img
}

// At implements the image.Image interface.
func (b *RasterBuffer) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := (y*b.width + x) * 4
	return color.RGBA{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Bounds implements the image.Image interface.
func (b *RasterBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *RasterBuffer) ColorModel() color.Model {
	return color.RGBAModel
}
