// Package script loads replayable drawing scenarios from YAML.
//
// A scenario sizes a canvas, configures the pen and lists pointer and
// command steps:
//
//	name: zigzag
//	canvas: {width: 256, height: 256, scale: 1}
//	pen: {width: 10, color: "#ff0000"}
//	steps:
//	  - {op: down, x: 10, y: 10}
//	  - {op: move, points: [[50, 50], [90, 10]]}
//	  - {op: up}
//	  - {op: pick, angle: 90}
//	  - {op: rotate, angle: 45}
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// Defaults applied by normalize.
const (
	DefaultWidth    = 256
	DefaultHeight   = 256
	DefaultPenColor = "#ff0000"
)

// Op names a step.
type Op string

const (
	// OpDown presses the pointer at X, Y.
	OpDown   Op = "down"
	// OpMove drags to X, Y or through Points.
	OpMove   Op = "move"
	// OpUp releases the pointer.
	OpUp     Op = "up"
	// OpColor sets the pen color.
	OpColor  Op = "color"
	// OpClear wipes the canvas.
	OpClear  Op = "clear"
	// OpResize resizes the canvas to Width by Height.
	OpResize Op = "resize"
	// OpPick picks a wheel color at Angle degrees.
	OpPick   Op = "pick"
	// OpRotate turns the pen hue by Angle degrees.
	OpRotate Op = "rotate"
)

// Scenario is a scripted drawing session.
type Scenario struct {
	Version int    `yaml:"version"`
	Name    string `yaml:"name"`
	Canvas  Canvas `yaml:"canvas"`
	Pen     Pen    `yaml:"pen"`
	Steps   []Step `yaml:"steps"`
}

// Canvas sizes the drawing surface in device pixels.
type Canvas struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale,omitempty"`
}

// Pen is the initial stroke style. Cap is butt, round or square and Join
// is miter, round or bevel.
type Pen struct {
	Width float64 `yaml:"width,omitempty"`
	Color string  `yaml:"color,omitempty"`
	Cap   string  `yaml:"cap,omitempty"`
	Join  string  `yaml:"join,omitempty"`
}

// Step is one scripted action. Which fields apply depends on Op:
// down uses X and Y, move uses X and Y or Points, color uses Color,
// resize uses Width and Height, and pick and rotate use Angle in degrees.
type Step struct {
	Op     Op           `yaml:"op"`
	X      float64      `yaml:"x,omitempty"`
	Y      float64      `yaml:"y,omitempty"`
	Points [][2]float64 `yaml:"points,omitempty"`
	Color  string       `yaml:"color,omitempty"`
	Width  int          `yaml:"width,omitempty"`
	Height int          `yaml:"height,omitempty"`
	Angle  float64      `yaml:"angle,omitempty"`
}

func (s *Scenario) normalize() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Name == "" {
		s.Name = "untitled"
	}
	if s.Canvas.Width == 0 {
		s.Canvas.Width = DefaultWidth
	}
	if s.Canvas.Height == 0 {
		s.Canvas.Height = DefaultHeight
	}
	if s.Canvas.Scale == 0 {
		s.Canvas.Scale = 1
	}
	if s.Pen.Width == 0 {
		s.Pen.Width = sketch.DefaultStroke().Width
	}
	if s.Pen.Color == "" {
		s.Pen.Color = DefaultPenColor
	}
	if s.Pen.Cap == "" {
		s.Pen.Cap = "round"
	}
	if s.Pen.Join == "" {
		s.Pen.Join = "round"
	}
}

// Validate checks that every step is well formed.
func (s *Scenario) Validate() error {
	if s.Canvas.Width <= 0 || s.Canvas.Height <= 0 {
		return fmt.Errorf("canvas: size %dx%d must be positive", s.Canvas.Width, s.Canvas.Height)
	}
	if s.Canvas.Scale < 0 {
		return fmt.Errorf("canvas: negative scale %v", s.Canvas.Scale)
	}
	if _, err := s.Stroke(); err != nil {
		return fmt.Errorf("pen: %w", err)
	}
	if _, err := ParseColor(s.Pen.Color); err != nil {
		return fmt.Errorf("pen: %w", err)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpDown, OpMove, OpUp, OpClear, OpPick, OpRotate:
		return nil
	case OpColor:
		_, err := ParseColor(st.Color)
		return err
	case OpResize:
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("size %dx%d must be positive", st.Width, st.Height)
		}
		return nil
	case "":
		return fmt.Errorf("missing op")
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
}

// Stroke builds the pen described by the scenario.
func (s *Scenario) Stroke() (sketch.Stroke, error) {
	pen := sketch.DefaultStroke().WithWidth(s.Pen.Width)

	switch s.Pen.Cap {
	case "butt":
		pen = pen.WithCap(sketch.LineCapButt)
	case "round":
		pen = pen.WithCap(sketch.LineCapRound)
	case "square":
		pen = pen.WithCap(sketch.LineCapSquare)
	default:
		return pen, fmt.Errorf("unknown cap %q", s.Pen.Cap)
	}

	switch s.Pen.Join {
	case "miter":
		pen = pen.WithJoin(sketch.LineJoinMiter)
	case "round":
		pen = pen.WithJoin(sketch.LineJoinRound)
	case "bevel":
		pen = pen.WithJoin(sketch.LineJoinBevel)
	default:
		return pen, fmt.Errorf("unknown join %q", s.Pen.Join)
	}
	return pen, nil
}

// ParseColor parses a hex color string such as "#rrggbb", "#rgb" or
// "#rrggbbaa". Colors without an alpha part are opaque.
func ParseColor(s string) (sketch.Color, error) {
	c, err := sketch.ParseHex(s)
	if err != nil {
		return sketch.Color{}, fmt.Errorf("bad color: %w", err)
	}
	return c, nil
}

// Parse decodes a scenario and applies defaults.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario %q: %w", s.Name, err)
	}
	return s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Write encodes s as YAML to path, with defaults filled in.
func Write(path string, s Scenario) error {
	s.normalize()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
