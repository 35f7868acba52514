// Package sketch provides a freehand drawing surface for touch and pointer input.
//
// # Overview
//
// sketch turns a stream of pointer samples into smoothed strokes and keeps
// the result in an in-memory raster. It is a Pure Go library: paths are
// expanded, rasterized and composited on the CPU, and the input side is an
// explicit state machine with no UI toolkit attached.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	eng, err := sketch.NewStrokeEngine(256, 256)
//	if err != nil {
//	    return err
//	}
//	eng.SetColor(sketch.Red)
//	eng.PointerDown(10, 10)
//	eng.PointerMove(50, 50)
//	eng.PointerUp()
//
//	frame := sketch.NewRasterBuffer(256, 256)
//	eng.Render(frame)
//
// # Grid and Smoothing
//
// Pointer positions are quantized to a grid of [PixelSize] device pixels.
// Moves that stay inside the same grid cell are ignored. Registered samples
// become quadratic Bezier segments whose control points are the raw grid
// points and whose end points are the midpoints between neighbours, see
// [SmoothPath]. The live preview and the committed stroke use the same curve.
//
// # Threading
//
// A StrokeEngine is owned by a single UI goroutine. None of its methods block
// and none of them are safe for concurrent use. Only the package logger is
// shared, and it is stored atomically.
//
// # Color Wheel
//
// The companion package colorwheel maps angles on a hue ring to colors and
// implements the YUV hue rotation used by the picker.
package sketch

// PixelSize is the edge of one grid cell in device pixels.
const PixelSize = 8
