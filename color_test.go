package sketch

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"long form", "#ff8000", RGBA{1, 128.0 / 255, 0, 1}},
		{"no hash", "0000ff", RGBA{0, 0, 1, 1}},
		{"short form", "#f00", RGBA{1, 0, 0, 1}},
		{"with alpha", "#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"invalid length", "#1234567", RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.in)
			if !approxColor(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexString(t *testing.T) {
	if got := Hex("#1a2b3c").HexString(); got != "#1a2b3c" {
		t.Errorf("HexString round trip = %q", got)
	}
	if got := RGB(1, 1, 1).HexString(); got != "#ffffff" {
		t.Errorf("white = %q", got)
	}
}

func TestFaded(t *testing.T) {
	step := 20.0 / 255

	t.Run("moves toward white", func(t *testing.T) {
		c := RGBA{0.5, 0.5, 0.5, 0.7}.Faded(step)
		want := 0.5 + step
		if math.Abs(c.R-want) > 1e-9 || math.Abs(c.G-want) > 1e-9 || math.Abs(c.B-want) > 1e-9 {
			t.Errorf("Faded = %+v, want channels %v", c, want)
		}
		if c.A != 0.7 {
			t.Errorf("alpha changed: %v", c.A)
		}
	})

	t.Run("snaps to white within step", func(t *testing.T) {
		c := RGBA{0.99, 1, 0.95, 1}.Faded(step)
		if c.R != 1 || c.G != 1 || c.B != 1 {
			t.Errorf("Faded near white = %+v, want white", c)
		}
	})

	t.Run("repeated fades reach white", func(t *testing.T) {
		c := RGBA{0, 0, 0, 1}
		for i := 0; i < 15; i++ {
			c = c.Faded(step)
		}
		if c.R != 1 || c.G != 1 || c.B != 1 {
			t.Errorf("black did not fade out after 15 steps: %+v", c)
		}
	})
}

func approxColor(a, b RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}
