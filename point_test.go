package sketch

import (
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want GridPoint
	}{
		{"origin", Pt(0, 0), GridPoint{0, 0}},
		{"inside first cell", Pt(7.99, 0.5), GridPoint{0, 0}},
		{"cell boundary", Pt(8, 16), GridPoint{1, 2}},
		{"large", Pt(255, 1000), GridPoint{31, 125}},
		{"negative floors", Pt(-0.5, -8), GridPoint{-1, -1}},
		{"negative boundary", Pt(-8.01, -16), GridPoint{-2, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.p); got != tt.want {
				t.Errorf("Quantize(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestGridPoint_ScaleAndMid(t *testing.T) {
	a := GridPoint{1, 2}
	b := GridPoint{4, 7}

	if got := a.Scale(8); got != Pt(8, 16) {
		t.Errorf("Scale = %v, want (8,16)", got)
	}
	if got := a.Mid(b, 8); got != Pt(20, 36) {
		t.Errorf("Mid = %v, want (20,36)", got)
	}
	if got := a.Mid(b, 1); got != Pt(2.5, 4.5) {
		t.Errorf("Mid unit 1 = %v, want (2.5,4.5)", got)
	}
}

func TestGridPoint_Delta(t *testing.T) {
	dx, dy := GridPoint{5, 1}.Delta(GridPoint{2, 4})
	if dx != 3 || dy != 3 {
		t.Errorf("Delta = (%d,%d), want (3,3)", dx, dy)
	}
}

func TestPoint_Math(t *testing.T) {
	p := Pt(3, 4)
	if p.Length() != 5 {
		t.Errorf("Length = %v, want 5", p.Length())
	}
	if d := Pt(1, 1).Distance(Pt(4, 5)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if got := p.Add(Pt(1, 1)).Sub(Pt(2, 2)).Mul(2); got != Pt(4, 6) {
		t.Errorf("Add/Sub/Mul = %v, want (4,6)", got)
	}
	if a := Pt(0, 1).Angle(); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("Angle(0,1) = %v, want Pi/2", a)
	}
	if a := Pt(-1, -1e-9).Angle(); a > -3 {
		t.Errorf("Angle just below -x axis = %v, want near -Pi", a)
	}
}
