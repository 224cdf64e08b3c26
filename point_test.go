package sketch

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, 4)), Pt(4, 6)},
		{"sub", Pt(5, 7).Sub(Pt(2, 3)), Pt(3, 4)},
		{"mul", Pt(1.5, -2).Mul(2), Pt(3, -4)},
		{"lerp midpoint", Pt(0, 0).Lerp(Pt(10, 20), 0.5), Pt(5, 10)},
		{"lerp endpoint", Pt(1, 1).Lerp(Pt(9, 9), 1), Pt(9, 9)},
		{"normalize", Pt(3, 4).Normalize(), Pt(0.6, 0.8)},
		{"normalize zero", Pt(0, 0).Normalize(), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	if d := Pt(0, 0).Distance(Pt(3, 4)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := Pt(1, 1).LengthSquared(); d != 2 {
		t.Errorf("LengthSquared = %v, want 2", d)
	}
}

func TestPointRotateAround(t *testing.T) {
	got := Pt(2, 1).RotateAround(Pt(1, 1), math.Pi/2)
	if !got.Approx(Pt(1, 2), 1e-12) {
		t.Errorf("RotateAround = %v, want (1, 2)", got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: 2, MaxX: 5, MaxY: 10}
	if r.Width() != 4 || r.Height() != 8 {
		t.Errorf("Width/Height = %v/%v", r.Width(), r.Height())
	}
	if !r.Contains(Pt(1, 2)) || !r.Contains(Pt(3, 5)) || r.Contains(Pt(0, 5)) {
		t.Error("Contains misclassified")
	}
	in := r.Inset(1)
	if in != (Rect{2, 3, 4, 9}) {
		t.Errorf("Inset = %+v", in)
	}
}
