// Package raster turns closed outlines into anti-aliased coverage masks.
//
// Coverage is accumulated with golang.org/x/image/vector, which sums signed
// areas and clamps their magnitude, i.e. the nonzero fill rule. Only the
// bounding box of the outline, clipped to the target, is rasterized.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/sketch/internal/stroke"
)

// Mask is a coverage mask positioned at Origin in target coordinates.
type Mask struct {
	*image.Alpha
	Origin image.Point
}

// Rect returns the area of the target covered by the mask.
func (m *Mask) Rect() image.Rectangle {
	return m.Alpha.Bounds().Add(m.Origin)
}

// Coverage returns the coverage of the target pixel (x, y), 0 outside the mask.
func (m *Mask) Coverage(x, y int) uint8 {
	p := image.Pt(x, y).Sub(m.Origin)
	if !p.In(m.Alpha.Rect) {
		return 0
	}
	return m.Alpha.Pix[m.Alpha.PixOffset(p.X, p.Y)]
}

// Rasterizer fills outlines. Its accumulation buffer is reused between
// calls, so a Rasterizer must not be shared between goroutines.
type Rasterizer struct {
	z vector.Rasterizer
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Fill rasterizes the closed outline path into a mask clipped to clip.
// Open subpaths are closed implicitly. It returns nil when nothing of the
// outline falls inside clip.
func (r *Rasterizer) Fill(path []stroke.Element, clip image.Rectangle) *Mask {
	rect := Bounds(path).Intersect(clip)
	if rect.Empty() {
		return nil
	}

	r.z.Reset(rect.Dx(), rect.Dy())
	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)
	pt := func(p stroke.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}

	open := false
	for _, el := range path {
		switch el.Verb {
		case stroke.VerbMove:
			if open {
				r.z.ClosePath()
			}
			r.z.MoveTo(pt(el.Pts[0]))
			open = true
		case stroke.VerbLine:
			r.z.LineTo(pt(el.Pts[0]))
		case stroke.VerbQuad:
			bx, by := pt(el.Pts[0])
			cx, cy := pt(el.Pts[1])
			r.z.QuadTo(bx, by, cx, cy)
		case stroke.VerbCubic:
			bx, by := pt(el.Pts[0])
			cx, cy := pt(el.Pts[1])
			dx, dy := pt(el.Pts[2])
			r.z.CubeTo(bx, by, cx, cy, dx, dy)
		case stroke.VerbClose:
			r.z.ClosePath()
			open = false
		}
	}
	if open {
		r.z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return &Mask{Alpha: mask, Origin: rect.Min}
}

// Bounds returns the integer rectangle enclosing every point of path,
// control points included. Curves lie inside the hull of their control
// points, so the rectangle encloses the filled area.
func Bounds(path []stroke.Element) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	n := 0
	for _, el := range path {
		var pts []stroke.Point
		switch el.Verb {
		case stroke.VerbMove, stroke.VerbLine:
			pts = el.Pts[:1]
		case stroke.VerbQuad:
			pts = el.Pts[:2]
		case stroke.VerbCubic:
			pts = el.Pts[:3]
		}
		for _, p := range pts {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
			n++
		}
	}
	if n == 0 {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}
