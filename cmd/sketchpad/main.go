// Command sketchpad is an interactive freehand drawing window.
//
// Drag with the mouse or a finger to draw. Keys:
//
//	P  show or hide the color wheel
//	H  rotate the pen hue by 30 degrees
//	C  clear the canvas
//
// On the color wheel, drag around the ring to choose a hue and tap the
// center disc to take it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/colorwheel"
)

// pickerOffset is where the color wheel is drawn over the canvas.
const pickerOffset = 16

func main() {
	var (
		width   = flag.Int("width", 480, "canvas width")
		height  = flag.Int("height", 640, "canvas height")
		scale   = flag.Float64("scale", 1, "raster buffer scale factor")
		verbose = flag.Bool("v", false, "log stroke events")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	g, err := newPad(*width, *height, *scale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchpad: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("sketchpad")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "sketchpad: %v\n", err)
		os.Exit(1)
	}
}

type pad struct {
	engine *sketch.StrokeEngine
	picker *colorwheel.Picker

	width, height int
	pendingW      int
	pendingH      int

	showPicker bool
	dirty      bool
	touch      ebiten.TouchID
	touching   bool

	frame *sketch.RasterBuffer
	wheel *sketch.RasterBuffer
	img   *ebiten.Image
}

func newPad(width, height int, scale float64) (*pad, error) {
	p := &pad{width: width, height: height, dirty: true}

	var err error
	p.engine, err = sketch.NewStrokeEngine(width, height,
		sketch.WithScale(scale),
		sketch.WithInvalidate(p.invalidate),
	)
	if err != nil {
		return nil, err
	}
	p.picker = p.newPicker()
	return p, nil
}

func (p *pad) newPicker() *colorwheel.Picker {
	return colorwheel.NewPicker(
		colorwheel.WithInitialColor(p.engine.Color()),
		colorwheel.WithListener(func(c sketch.Color) {
			p.engine.SetColor(c)
			p.showPicker = false
			h, _, _ := c.HSV()
			slog.Info("pen color", "color", c, "hue", math.Round(h))
		}),
	)
}

func (p *pad) invalidate() {
	p.dirty = true
}

func (p *pad) Update() error {
	if p.pendingW > 0 && p.pendingH > 0 && (p.pendingW != p.width || p.pendingH != p.height) {
		p.width, p.height = p.pendingW, p.pendingH
		p.engine.Resize(p.width, p.height)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		p.engine.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		p.engine.SetColor(colorwheel.RotateHue(p.engine.Color(), math.Pi/6))
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		p.showPicker = !p.showPicker
		if p.showPicker {
			p.picker = p.newPicker()
		}
		p.dirty = true
	}

	for _, ev := range p.pointerEvents() {
		p.dispatch(ev)
	}
	return nil
}

// pointerEvents turns this tick's mouse and single-touch input into
// pointer events. Moves are only reported while pressed.
func (p *pad) pointerEvents() []sketch.PointerEvent {
	var evs []sketch.PointerEvent

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 && !p.touching {
		p.touch, p.touching = ids[0], true
		x, y := ebiten.TouchPosition(p.touch)
		return append(evs, sketch.Down(float64(x), float64(y)))
	}
	if p.touching {
		x, y := inpututil.TouchPositionInPreviousTick(p.touch)
		if inpututil.IsTouchJustReleased(p.touch) {
			p.touching = false
			return append(evs, sketch.UpAt(float64(x), float64(y)))
		}
		x, y = ebiten.TouchPosition(p.touch)
		return append(evs, sketch.Move(float64(x), float64(y)))
	}

	x, y := ebiten.CursorPosition()
	pos := sketch.Pt(float64(x), float64(y))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		evs = append(evs, sketch.PointerEvent{Kind: sketch.PointerDown, Position: pos})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		evs = append(evs, sketch.PointerEvent{Kind: sketch.PointerUp, Position: pos})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		evs = append(evs, sketch.PointerEvent{Kind: sketch.PointerMove, Position: pos})
	}
	return evs
}

func (p *pad) dispatch(ev sketch.PointerEvent) {
	if !p.showPicker {
		p.engine.HandlePointerEvent(ev)
		return
	}
	ev.Position = ev.Position.Sub(sketch.Pt(pickerOffset, pickerOffset))
	if p.picker.HandlePointerEvent(ev).Changed {
		p.dirty = true
	}
}

func (p *pad) Draw(screen *ebiten.Image) {
	if p.frame == nil || p.frame.Width() != p.width || p.frame.Height() != p.height {
		p.frame = sketch.NewRasterBuffer(p.width, p.height)
		if p.img != nil {
			p.img.Deallocate()
		}
		p.img = ebiten.NewImage(p.width, p.height)
		p.dirty = true
	}

	if p.dirty {
		p.engine.Render(p.frame)
		if p.showPicker {
			p.drawPicker()
		}
		p.img.WritePixels(p.frame.Data())
		p.dirty = false
	}
	screen.DrawImage(p.img, nil)
}

func (p *pad) drawPicker() {
	w, h := p.picker.Size()
	if p.wheel == nil || p.wheel.Width() != w || p.wheel.Height() != h {
		p.wheel = sketch.NewRasterBuffer(w, h)
	}
	p.wheel.Fill(sketch.DarkGray.WithAlpha(0xE0))
	p.picker.Render(p.wheel)
	p.frame.Composite(p.wheel, pickerOffset, pickerOffset)
}

func (p *pad) Layout(outsideWidth, outsideHeight int) (int, int) {
	p.pendingW, p.pendingH = outsideWidth, outsideHeight
	return p.width, p.height
}
