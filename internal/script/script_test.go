package script

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/colorwheel"
)

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - op: down\n    x: 1\n    y: 2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if s.Version != 1 || s.Name != "untitled" {
		t.Errorf("version/name = %d/%q", s.Version, s.Name)
	}
	if s.Canvas.Width != DefaultWidth || s.Canvas.Height != DefaultHeight || s.Canvas.Scale != 1 {
		t.Errorf("canvas = %+v", s.Canvas)
	}
	if s.Pen.Width != 10 || s.Pen.Color != DefaultPenColor || s.Pen.Cap != "round" || s.Pen.Join != "round" {
		t.Errorf("pen = %+v", s.Pen)
	}
	if len(s.Steps) != 1 || s.Steps[0].Op != OpDown || s.Steps[0].X != 1 || s.Steps[0].Y != 2 {
		t.Errorf("steps = %+v", s.Steps)
	}
}

func TestParseFull(t *testing.T) {
	src := `
name: zigzag
canvas: {width: 100, height: 80, scale: 2}
pen: {width: 4, color: "#00ff00", cap: butt, join: bevel}
steps:
  - {op: down, x: 10, y: 10}
  - {op: move, points: [[50, 50], [90, 10]]}
  - {op: up}
  - {op: resize, width: 50, height: 40}
  - {op: color, color: "#0000ff"}
`
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name != "zigzag" || s.Canvas.Scale != 2 {
		t.Errorf("scenario = %+v", s)
	}
	pen, err := s.Stroke()
	if err != nil {
		t.Fatal(err)
	}
	want := sketch.Stroke{Width: 4, Cap: sketch.LineCapButt, Join: sketch.LineJoinBevel, MiterLimit: 4}
	if pen != want {
		t.Errorf("Stroke() = %+v, want %+v", pen, want)
	}
	if got := s.Steps[1].Points; len(got) != 2 || got[1] != [2]float64{90, 10} {
		t.Errorf("move points = %v", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad yaml", "steps: [", "parse scenario"},
		{"unknown op", "steps: [{op: jump}]", `unknown op "jump"`},
		{"missing op", "steps: [{x: 1}]", "missing op"},
		{"bad color", `steps: [{op: color, color: "red"}]`, "bad color"},
		{"bad resize", "steps: [{op: resize, width: 0, height: 5}]", "must be positive"},
		{"bad cap", "pen: {cap: pointy}", "unknown cap"},
		{"bad join", "pen: {join: sharp}", "unknown join"},
		{"bad pen color", `pen: {color: "#zzzzzz"}`, "bad color"},
		{"negative canvas", "canvas: {width: -1, height: 10}", "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want sketch.Color
	}{
		{"#ff0000", sketch.Red},
		{"#00FF00", sketch.Green},
		{"#00f", sketch.Blue},
		{"#ff000080", sketch.Color{R: 0xFF, A: 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "#12", "#gg0000"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestWriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	in := Scenario{
		Name:  "roundtrip",
		Steps: []Step{{Op: OpDown, X: 3, Y: 4}, {Op: OpUp}},
	}
	if err := Write(path, in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Name != "roundtrip" || out.Canvas.Width != DefaultWidth || len(out.Steps) != 2 {
		t.Errorf("loaded = %+v", out)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestPlayer_Run(t *testing.T) {
	src := `
canvas: {width: 256, height: 256}
steps:
  - {op: down, x: 10, y: 10}
  - {op: move, x: 50, y: 50}
  - {op: up}
  - {op: color, color: "#0000ff"}
  - {op: down, x: 10, y: 200}
  - {op: move, points: [[100, 200], [200, 200]]}
  - {op: up}
  - {op: up}
`
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlayer(s)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if p.Commits() != 2 {
		t.Errorf("Commits() = %d, want 2", p.Commits())
	}
	buf := p.Engine.Buffer()
	if c := buf.Pixel(30, 30); c.R < 200 || c.B > 40 {
		t.Errorf("first stroke = %v, want red", c)
	}
	if c := buf.Pixel(150, 200); c.B < 200 || c.R > 40 {
		t.Errorf("second stroke = %v, want blue", c)
	}

	frame := p.Frame()
	if frame.Width() != 256 || frame.Pixel(128, 100) != sketch.White {
		t.Errorf("frame paper = %v", frame.Pixel(128, 100))
	}
}

func TestPlayer_PickAndRotate(t *testing.T) {
	s, err := Parse([]byte("steps: [{op: pick, angle: 90}]"))
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlayer(s)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err != nil {
		t.Fatal(err)
	}

	// A quarter turn lands halfway between magenta and blue.
	if got, want := p.Engine.Color(), colorwheel.ColorAt(1.5707963267948966); got != want {
		t.Errorf("picked color = %v, want %v", got, want)
	}

	before := p.Engine.Color()
	if err := p.Step(Step{Op: OpRotate, Angle: 120}); err != nil {
		t.Fatal(err)
	}
	if p.Engine.Color() == before {
		t.Error("rotate step did not change the pen color")
	}
	if p.Engine.Color().A != 0xFF {
		t.Errorf("rotate changed alpha: %v", p.Engine.Color())
	}
}

func TestPlayer_ResizeAndClear(t *testing.T) {
	s, err := Parse([]byte(`
canvas: {width: 64, height: 64, scale: 2}
steps:
  - {op: down, x: 5, y: 5}
  - {op: up}
  - {op: clear}
  - {op: resize, width: 20, height: 30}
`))
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlayer(s)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Run(); err != nil {
		t.Fatal(err)
	}
	buf := p.Engine.Buffer()
	if buf.Width() != 40 || buf.Height() != 60 {
		t.Errorf("buffer = %dx%d, want 40x60", buf.Width(), buf.Height())
	}
}

func TestPlayer_UnknownOp(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlayer(s)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Step(Step{Op: "warp"}); err == nil {
		t.Error("expected error for unknown op")
	}
}
