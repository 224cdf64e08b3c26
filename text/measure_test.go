package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestMeasureBasics(t *testing.T) {
	m, err := NewMeasurer(goregular.TTF)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}

	w, h := m.Measure("Hello", 14)
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure(Hello, 14) = %v, %v, want positive extents", w, h)
	}

	w2, _ := m.Measure("Hello, world", 14)
	if w2 <= w {
		t.Errorf("longer string not wider: %v <= %v", w2, w)
	}

	wBig, hBig := m.Measure("Hello", 28)
	if wBig <= w || hBig <= h {
		t.Errorf("larger size not larger: %v/%v vs %v/%v", wBig, hBig, w, h)
	}
}

func TestMeasureEmptyAndZeroSize(t *testing.T) {
	m, err := NewMeasurer(goregular.TTF)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}

	w, h := m.Measure("", 14)
	if w != 0 {
		t.Errorf("empty string width = %v, want 0", w)
	}
	if h <= 0 {
		t.Errorf("empty string height = %v, want positive line height", h)
	}

	w, h = m.Measure("x", 0)
	if w != 0 || h != 0 {
		t.Errorf("zero size = %v, %v, want 0, 0", w, h)
	}
}

func TestMeasureNormalization(t *testing.T) {
	m, err := NewMeasurer(goregular.TTF)
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}

	// U+00E9 composed vs e + combining acute decomposed.
	wc, _ := m.Measure("café", 14)
	wd, _ := m.Measure("café", 14)
	if wc != wd {
		t.Errorf("composed %v != decomposed %v", wc, wd)
	}
}

func TestDefaultMeasure(t *testing.T) {
	w, h := Measure("abc", 14)
	if w <= 0 || h <= 0 {
		t.Errorf("Measure = %v, %v, want positive extents", w, h)
	}
}

func TestNewMeasurerRejectsGarbage(t *testing.T) {
	if _, err := NewMeasurer([]byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}
