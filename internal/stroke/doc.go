// Package stroke converts stroked paths into filled outlines.
//
// The expander walks a path and builds two offset paths at half the stroke
// width on either side of the centre line. The outline is the forward offset
// path, the end cap, the backward offset path reversed, and the start cap.
// Filling the outline with the nonzero rule paints the stroke.
//
// Curves are flattened to line segments before offsetting; joins and round
// caps are emitted as cubic arcs, so the outline itself still contains curves.
//
// A subpath whose segments all have zero length is a dot: round and square
// caps paint a disc or a square around it, butt caps paint nothing.
//
// The algorithm follows tiny-skia (path/src/stroker.rs) and kurbo
// (src/stroke.rs).
package stroke
