// Package text measures text-anchor extents for the sketch editor.
//
// The document model stores a text shape as an anchor point plus an
// optional extent; this package computes that extent. Widths come from
// HarfBuzz shaping via go-text/typesetting so kerning and ligatures are
// reflected; vertical extent comes from the face metrics. The embedded
// Go Regular face is used unless the caller loads another font.
package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Measurer computes extents for one loaded font. It is safe for
// sequential reuse; the zero value is not usable, construct with
// NewMeasurer or use the package-level Measure.
type Measurer struct {
	face   *font.Face
	sfnt   *opentype.Font
	shaper shaping.HarfbuzzShaper
}

// NewMeasurer parses TTF or OTF font data.
func NewMeasurer(data []byte) (*Measurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parsing font: %w", err)
	}
	sfnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parsing font metrics: %w", err)
	}
	return &Measurer{face: face, sfnt: sfnt}, nil
}

// NewMeasurerFromFile loads a font file and parses it.
func NewMeasurerFromFile(path string) (*Measurer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: reading font file: %w", err)
	}
	return NewMeasurer(data)
}

// Measure returns the width and height of s rendered at the given size
// in points. The input is NFC-normalized before shaping so decomposed
// sequences measure like their composed forms. Width is the sum of
// shaped glyph advances; height is ascent plus descent of the face.
func (m *Measurer) Measure(s string, size float64) (w, h float64) {
	if size <= 0 {
		return 0, 0
	}
	h = m.lineHeight(size)
	if s == "" {
		return 0, h
	}

	runes := []rune(norm.NFC.String(s))
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	out := m.shaper.Shape(input)
	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64.0, h
}

// lineHeight derives ascent+descent from the opentype metrics at size.
func (m *Measurer) lineHeight(size float64) float64 {
	face, err := opentype.NewFace(m.sfnt, &opentype.FaceOptions{
		Size: size, DPI: 72, Hinting: 0,
	})
	if err != nil {
		return size
	}
	defer face.Close()
	met := face.Metrics()
	return float64(met.Ascent+met.Descent) / 64.0
}

// detectScript returns the script of the first non-space rune, falling
// back to Latin.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

var (
	defaultOnce sync.Once
	defaultM    *Measurer
	defaultErr  error
)

// Default returns the shared measurer over the embedded Go Regular face.
func Default() (*Measurer, error) {
	defaultOnce.Do(func() {
		defaultM, defaultErr = NewMeasurer(goregular.TTF)
	})
	return defaultM, defaultErr
}

// Measure measures s at size with the embedded Go Regular face. It is
// the function handed to sketch.WithTextMeasurer. On font failure (which
// cannot happen for the embedded face short of build corruption) it
// returns a zero extent.
func Measure(s string, size float64) (w, h float64) {
	m, err := Default()
	if err != nil {
		return 0, 0
	}
	return m.Measure(s, size)
}
