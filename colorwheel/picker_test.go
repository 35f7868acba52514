package colorwheel

import (
	"math"
	"testing"

	"github.com/gogpu/sketch"
)

func TestPicker_Defaults(t *testing.T) {
	p := NewPicker()
	if w, h := p.Size(); w != 200 || h != 200 {
		t.Errorf("Size() = %dx%d, want 200x200", w, h)
	}
	if p.RingRadius() != 84 {
		t.Errorf("RingRadius() = %v, want 84", p.RingRadius())
	}
	if p.State() != Idle || p.Highlighted() {
		t.Errorf("initial state = %v, highlighted %v", p.State(), p.Highlighted())
	}
	if p.Swatch() != sketch.Red {
		t.Errorf("Swatch() = %v, want red", p.Swatch())
	}
}

func TestPicker_RingGesture(t *testing.T) {
	var got []sketch.Color
	p := NewPicker(
		WithInitialColor(sketch.Green),
		WithListener(func(c sketch.Color) { got = append(got, c) }),
	)

	tr := p.HandlePointerEvent(sketch.Down(180, 100))
	if tr.From != Idle || tr.To != TrackingRing || !tr.Changed {
		t.Errorf("down on ring: %+v", tr)
	}
	if p.Swatch() != DefaultStops[0] {
		t.Errorf("angle 0 swatch = %v, want %v", p.Swatch(), DefaultStops[0])
	}

	// Straight down is a quarter turn: halfway from magenta to blue.
	p.HandlePointerEvent(sketch.Move(100, 180))
	if want := sketch.RGB(0x80, 0, 0xFF); p.Swatch() != want {
		t.Errorf("quarter turn swatch = %v, want %v", p.Swatch(), want)
	}

	// Passing through the center while tracking the ring still picks.
	p.HandlePointerEvent(sketch.Move(120, 100))
	if p.Swatch() != DefaultStops[0] {
		t.Errorf("swatch = %v, want first stop", p.Swatch())
	}

	tr = p.HandlePointerEvent(sketch.UpAt(120, 100))
	if tr.To != Idle || tr.Committed {
		t.Errorf("up after ring gesture: %+v", tr)
	}
	if len(got) != 0 {
		t.Errorf("listener called %d times, want 0", len(got))
	}
}

func TestPicker_CenterCommit(t *testing.T) {
	var got []sketch.Color
	p := NewPicker(WithListener(func(c sketch.Color) { got = append(got, c) }))

	p.HandlePointerEvent(sketch.Down(100, 20))
	p.HandlePointerEvent(sketch.UpAt(100, 20))
	picked := p.Swatch()

	tr := p.HandlePointerEvent(sketch.Down(100, 100))
	if tr.To != TrackingCenter || !p.Highlighted() {
		t.Fatalf("down in center: %+v, highlighted %v", tr, p.Highlighted())
	}

	tr = p.HandlePointerEvent(sketch.Move(150, 100))
	if !tr.Changed || p.Highlighted() {
		t.Errorf("leaving center: %+v, highlighted %v", tr, p.Highlighted())
	}
	tr = p.HandlePointerEvent(sketch.Move(160, 100))
	if tr.Changed {
		t.Error("moving outside the disc again should not redraw")
	}
	if p.Swatch() != picked {
		t.Error("moves while tracking the center must not change the swatch")
	}

	p.HandlePointerEvent(sketch.Move(110, 110))
	if !p.Highlighted() {
		t.Error("re-entering the center should highlight")
	}

	tr = p.HandlePointerEvent(sketch.UpAt(110, 110))
	if !tr.Committed || tr.From != TrackingCenter || tr.To != Idle {
		t.Errorf("up in center: %+v", tr)
	}
	if len(got) != 1 || got[0] != picked {
		t.Errorf("listener got %v, want exactly [%v]", got, picked)
	}

	// A second release without a press commits nothing.
	p.HandlePointerEvent(sketch.UpAt(100, 100))
	if len(got) != 1 {
		t.Errorf("listener called %d times, want 1", len(got))
	}
}

func TestPicker_CenterReleasedOutside(t *testing.T) {
	calls := 0
	p := NewPicker(WithListener(func(sketch.Color) { calls++ }))

	p.HandlePointerEvent(sketch.Down(90, 95))
	p.HandlePointerEvent(sketch.Move(190, 100))
	tr := p.HandlePointerEvent(sketch.UpAt(190, 100))

	if tr.Committed || calls != 0 {
		t.Errorf("release outside the disc committed: %+v, %d calls", tr, calls)
	}
	if p.State() != Idle || p.Highlighted() {
		t.Error("picker should be idle after release")
	}
}

func TestPicker_DiscEdgeCountsAsCenter(t *testing.T) {
	p := NewPicker()
	if tr := p.HandlePointerEvent(sketch.Down(132, 100)); tr.To != TrackingCenter {
		t.Errorf("down at radius = %v, want TrackingCenter", tr.To)
	}
}

func TestPicker_Options(t *testing.T) {
	stops := []sketch.Color{sketch.Black, sketch.White}
	p := NewPicker(
		WithCenter(50, 60),
		WithCenterRadius(10),
		WithRingWidth(8),
		WithStops(stops),
		WithStops(stops[:1]),
		WithCenterRadius(-1),
	)
	stops[0] = sketch.Red

	if w, h := p.Size(); w != 100 || h != 120 {
		t.Errorf("Size() = %dx%d, want 100x120", w, h)
	}
	if p.RingRadius() != 46 {
		t.Errorf("RingRadius() = %v, want 46", p.RingRadius())
	}
	if tr := p.HandlePointerEvent(sketch.Down(61, 60)); tr.To != TrackingRing {
		t.Errorf("down outside small disc = %v, want TrackingRing", tr.To)
	}
	if p.Swatch() != sketch.Black {
		t.Errorf("swatch = %v, want black from copied stops", p.Swatch())
	}
}

func TestPicker_Render(t *testing.T) {
	p := NewPicker(WithInitialColor(sketch.Blue))
	dst := sketch.NewRasterBuffer(200, 200)
	p.Render(dst)

	if c := dst.Pixel(184, 100); c.R != 0xFF || c.G != 0 || c.B > 4 || c.A != 0xFF {
		t.Errorf("ring at angle 0 = %v, want red", c)
	}
	// Straight up is three quarters of a turn, halfway from green to yellow.
	if c, want := dst.Pixel(100, 16), ColorAt(math.Atan2(16.5-100, 100.5-100)); diff(c, want) > 2 {
		t.Errorf("ring at top = %v, want %v", c, want)
	}
	// 240 degrees lands on the green stop.
	if c := dst.Pixel(58, 27); c.G != 0xFF || c.R > 4 || c.B != 0 || c.A != 0xFF {
		t.Errorf("ring at 240 degrees = %v, want green", c)
	}
	if c := dst.Pixel(100, 100); c != sketch.Blue {
		t.Errorf("swatch = %v, want blue", c)
	}
	if c := dst.Pixel(150, 100); c.A != 0 {
		t.Errorf("gap between disc and ring = %v, want transparent", c)
	}
	if c := dst.Pixel(137, 100); c.A != 0 {
		t.Errorf("highlight drawn while idle: %v", c)
	}

	p.HandlePointerEvent(sketch.Down(100, 100))
	dst = sketch.NewRasterBuffer(200, 200)
	p.Render(dst)
	if c := dst.Pixel(137, 100); c != sketch.Blue {
		t.Errorf("highlight = %v, want opaque blue", c)
	}

	p.HandlePointerEvent(sketch.Move(170, 170))
	dst = sketch.NewRasterBuffer(200, 200)
	p.Render(dst)
	if c := dst.Pixel(137, 100); c.A < 0x7E || c.A > 0x81 {
		t.Errorf("dimmed highlight alpha = %#x, want about 0x80", c.A)
	}
}
