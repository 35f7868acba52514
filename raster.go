package sketch

import (
	"github.com/gogpu/sketch/internal/blend"
	"github.com/gogpu/sketch/internal/raster"
	"github.com/gogpu/sketch/internal/stroke"
)

// DrawPath paints path onto the buffer with paint, compositing source-over.
// Stroked paths are expanded to outlines first; the whole path is drawn in
// one pass, so overlapping parts of a single stroke are not painted twice.
func (b *RasterBuffer) DrawPath(path *Path, paint Paint) {
	if path == nil || path.Len() == 0 || b.width == 0 || b.height == 0 {
		return
	}

	outline := toElements(path)
	if paint.Style == StyleStroke {
		outline = stroke.NewExpander(paint.Stroke.style()).Expand(outline)
	}
	if len(outline) == 0 {
		return
	}

	mask := raster.NewRasterizer().Fill(outline, b.Bounds())
	if mask == nil {
		return
	}

	rect := mask.Rect()
	solid := paint.Shader == nil
	sr, sg, sb, sa := paint.Color.premultiplied()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cov := mask.Coverage(x, y)
			if cov == 0 {
				continue
			}
			if !solid {
				sr, sg, sb, sa = paint.colorAt(float64(x)+0.5, float64(y)+0.5).premultiplied()
			}
			r, g, bl, a := blend.Coverage(sr, sg, sb, sa, cov)
			if a == 0 {
				continue
			}
			b.blendAt(x, y, r, g, bl, a)
		}
	}
}

// toElements converts a Path into the internal element form.
func toElements(p *Path) []stroke.Element {
	pt := func(q Point) stroke.Point { return stroke.Point{X: q.X, Y: q.Y} }
	out := make([]stroke.Element, 0, p.Len())
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case MoveTo:
			out = append(out, stroke.Move(pt(e.Point)))
		case LineTo:
			out = append(out, stroke.Line(pt(e.Point)))
		case QuadTo:
			out = append(out, stroke.Quad(pt(e.Control), pt(e.Point)))
		case CubicTo:
			out = append(out, stroke.Cubic(pt(e.Control1), pt(e.Control2), pt(e.Point)))
		case Close:
			out = append(out, stroke.ClosePath())
		}
	}
	return out
}
