package sketch

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInterpolate(t *testing.T) {
	t.Run("interior points evenly spaced", func(t *testing.T) {
		s := chainShape(Pt(0, 0), Pt(3, 7), Pt(-2, 1), Pt(9, 9), Pt(8, 0))
		s.Anchors = []int{0, 4}
		Interpolate(s, 0, 4)

		want := []Point{Pt(0, 0), Pt(2, 0), Pt(4, 0), Pt(6, 0), Pt(8, 0)}
		if diff := cmp.Diff(want, s.Points); diff != "" {
			t.Errorf("points mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("endpoints preserved", func(t *testing.T) {
		s := chainShape(Pt(1, 2), Pt(9, 9), Pt(5, -4), Pt(7, 8))
		s.Anchors = []int{0, 3}
		Interpolate(s, 0, 3)
		if s.Points[0] != Pt(1, 2) || s.Points[3] != Pt(7, 8) {
			t.Errorf("endpoints moved: %v %v", s.Points[0], s.Points[3])
		}
	})

	t.Run("order independent", func(t *testing.T) {
		a := chainShape(Pt(0, 0), Pt(5, 5), Pt(1, 1), Pt(6, 0))
		b := a.Clone()
		Interpolate(a, 0, 3)
		Interpolate(b, 3, 0)
		if diff := cmp.Diff(a.Points, b.Points); diff != "" {
			t.Errorf("argument order changed result (-a +b):\n%s", diff)
		}
	})

	t.Run("adjacent anchors are a no-op", func(t *testing.T) {
		s := chainShape(Pt(0, 0), Pt(5, 5), Pt(10, 0))
		before := append([]Point(nil), s.Points...)
		Interpolate(s, 0, 1)
		if diff := cmp.Diff(before, s.Points); diff != "" {
			t.Errorf("no interior points but shape changed:\n%s", diff)
		}
	})
}

func TestArcInterpolate(t *testing.T) {
	s := chainShape(Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(40, 0))
	ArcInterpolate(s, 0, 4, 10)

	t.Run("endpoints preserved", func(t *testing.T) {
		if s.Points[0] != Pt(0, 0) || s.Points[4] != Pt(40, 0) {
			t.Errorf("endpoints moved: %v %v", s.Points[0], s.Points[4])
		}
	})

	t.Run("midpoint displaced by full bulge", func(t *testing.T) {
		// Chord is the x-axis; perpendicular is +y (screen down).
		want := Pt(20, 10)
		if !s.Points[2].Approx(want, 1e-9) {
			t.Errorf("midpoint = %v, want %v", s.Points[2], want)
		}
	})

	t.Run("bulge symmetric about midpoint", func(t *testing.T) {
		if math.Abs(s.Points[1].Y-s.Points[3].Y) > 1e-9 {
			t.Errorf("asymmetric bulge: %v vs %v", s.Points[1], s.Points[3])
		}
	})
}

func TestRadialPush(t *testing.T) {
	t.Run("locality outside radius is bit-identical", func(t *testing.T) {
		pts := []Point{Pt(0, 0), Pt(30, 0), Pt(100, 0), Pt(0, 75.00001), Pt(50, 0)}
		before := append([]Point(nil), pts...)
		RadialPush(pts, Pt(0, 0), Pt(10, -5), 50)

		for i, p := range pts {
			d := before[i].Distance(Pt(0, 0))
			if d >= 50 {
				if p != before[i] {
					t.Errorf("point %d outside radius moved: %v -> %v", i, before[i], p)
				}
			}
		}
	})

	t.Run("linear falloff", func(t *testing.T) {
		pts := []Point{Pt(0, 0), Pt(25, 0)}
		RadialPush(pts, Pt(0, 0), Pt(10, 0), 50)
		if !pts[0].Approx(Pt(10, 0), 1e-9) {
			t.Errorf("center point = %v, want full delta", pts[0])
		}
		if !pts[1].Approx(Pt(30, 0), 1e-9) {
			t.Errorf("half-radius point = %v, want half delta applied", pts[1])
		}
	})
}

func TestRotationalWarp(t *testing.T) {
	t.Run("uniform angle inside, untouched outside", func(t *testing.T) {
		pts := []Point{Pt(10, 0), Pt(0, 20), Pt(100, 0)}
		RotationalWarp(pts, Pt(0, 0), math.Pi/2, 50)

		if !pts[0].Approx(Pt(0, 10), 1e-9) {
			t.Errorf("pts[0] = %v, want (0, 10)", pts[0])
		}
		if !pts[1].Approx(Pt(-20, 0), 1e-9) {
			t.Errorf("pts[1] = %v, want (-20, 0)", pts[1])
		}
		if pts[2] != Pt(100, 0) {
			t.Errorf("pts[2] outside radius moved: %v", pts[2])
		}
	})

	t.Run("rotation about off-origin center", func(t *testing.T) {
		pts := []Point{Pt(15, 10)}
		RotationalWarp(pts, Pt(10, 10), math.Pi, 50)
		if !pts[0].Approx(Pt(5, 10), 1e-9) {
			t.Errorf("pts[0] = %v, want (5, 10)", pts[0])
		}
	})
}
