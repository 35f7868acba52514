package script

import (
	"fmt"
	"math"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/colorwheel"
)

// Player replays a Scenario against a StrokeEngine. Pick steps drive a
// color wheel Picker whose listener feeds the engine, the same wiring an
// interactive host uses.
type Player struct {
	Engine *sketch.StrokeEngine
	Picker *colorwheel.Picker

	scenario Scenario
	commits  int
}

// NewPlayer creates the engine and picker for s.
func NewPlayer(s Scenario, opts ...sketch.Option) (*Player, error) {
	pen, err := s.Stroke()
	if err != nil {
		return nil, err
	}
	c, err := ParseColor(s.Pen.Color)
	if err != nil {
		return nil, err
	}

	p := &Player{scenario: s}
	base := []sketch.Option{
		sketch.WithScale(s.Canvas.Scale),
		sketch.WithStroke(pen),
		sketch.WithColor(c),
	}
	p.Engine, err = sketch.NewStrokeEngine(s.Canvas.Width, s.Canvas.Height, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	p.Picker = colorwheel.NewPicker(
		colorwheel.WithInitialColor(c),
		colorwheel.WithListener(p.Engine.SetColor),
	)
	return p, nil
}

// Run executes every step in order.
func (p *Player) Run() error {
	for i, st := range p.scenario.Steps {
		if err := p.Step(st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	sketch.Logger().Debug("scenario finished",
		"name", p.scenario.Name,
		"steps", len(p.scenario.Steps),
		"commits", p.commits)
	return nil
}

// Step executes a single step.
func (p *Player) Step(st Step) error {
	e := p.Engine
	switch st.Op {
	case OpDown:
		e.HandlePointerEvent(sketch.Down(st.X, st.Y))
	case OpMove:
		if len(st.Points) == 0 {
			e.HandlePointerEvent(sketch.Move(st.X, st.Y))
		}
		for _, pt := range st.Points {
			e.HandlePointerEvent(sketch.Move(pt[0], pt[1]))
		}
	case OpUp:
		if e.HandlePointerEvent(sketch.Up()).Committed {
			p.commits++
		}
	case OpColor:
		c, err := ParseColor(st.Color)
		if err != nil {
			return err
		}
		e.SetColor(c)
	case OpClear:
		e.Clear()
	case OpResize:
		e.Resize(st.Width, st.Height)
	case OpPick:
		p.pick(st.Angle)
	case OpRotate:
		e.SetColor(colorwheel.RotateHue(e.Color(), st.Angle*math.Pi/180))
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

// pick taps the ring at angle degrees, then taps the center to commit.
func (p *Player) pick(angle float64) {
	w, h := p.Picker.Size()
	cx, cy := float64(w)/2, float64(h)/2
	r := p.Picker.RingRadius()
	rad := angle * math.Pi / 180
	x, y := cx+r*math.Cos(rad), cy+r*math.Sin(rad)

	p.Picker.HandlePointerEvent(sketch.Down(x, y))
	p.Picker.HandlePointerEvent(sketch.UpAt(x, y))
	p.Picker.HandlePointerEvent(sketch.Down(cx, cy))
	p.Picker.HandlePointerEvent(sketch.UpAt(cx, cy))
}

// Commits returns the number of strokes committed so far.
func (p *Player) Commits() int {
	return p.commits
}

// Frame renders the current state into a new buffer the size of the
// engine's raster buffer.
func (p *Player) Frame() *sketch.RasterBuffer {
	b := p.Engine.Buffer()
	dst := sketch.NewRasterBuffer(b.Width(), b.Height())
	p.Engine.Render(dst)
	return dst
}
