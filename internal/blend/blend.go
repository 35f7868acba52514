// Package blend implements Porter-Duff compositing on premultiplied 8-bit
// channels.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOver composites source over destination.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

// Coverage scales a premultiplied color by an anti-aliasing coverage value.
func Coverage(r, g, b, a, coverage byte) (byte, byte, byte, byte) {
	if coverage == 255 {
		return r, g, b, a
	}
	return mulDiv255(r, coverage), mulDiv255(g, coverage), mulDiv255(b, coverage), mulDiv255(a, coverage)
}
