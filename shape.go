package sketch

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle is an opaque identifier for a shape, unique for the lifetime of
// the document session. Handles are not stable across a history restore;
// only geometric and visual state survives.
type Handle uuid.UUID

// NilHandle is the zero Handle, used when no shape is targeted.
var NilHandle Handle

// newHandle mints a fresh session-unique handle.
func newHandle() Handle { return Handle(uuid.New()) }

// String returns the canonical UUID form of the handle.
func (h Handle) String() string { return uuid.UUID(h).String() }

// Kind is the closed set of shape variants. Adding a kind is a
// compile-time-checked change: every switch over Kind in this package
// lists all cases.
type Kind uint8

const (
	// KindSegmentChain is a polyline: two or more points joined by
	// straight segments. Brush strokes and line tools produce it.
	KindSegmentChain Kind = iota

	// KindRectangle is stored as two opposite corners, not necessarily
	// normalized until finalize.
	KindRectangle

	// KindEllipse is stored as the two opposite corners of its bounding
	// rectangle, like KindRectangle.
	KindEllipse

	// KindTextAnchor is a single anchor point plus an optional measured
	// extent point.
	KindTextAnchor

	// KindRasterInset is a placed raster image: anchor point plus extent.
	// Pixels live outside the document model.
	KindRasterInset

	// KindBendCurve is a segment chain that has been densified by a bend
	// tool; curvature is simulated through closely spaced points.
	KindBendCurve

	// KindGroup is a grouping node; its points are the member bounds.
	KindGroup
)

// String returns the kind name used in logs and SVG class attributes.
func (k Kind) String() string {
	switch k {
	case KindSegmentChain:
		return "segment-chain"
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	case KindTextAnchor:
		return "text-anchor"
	case KindRasterInset:
		return "raster-inset"
	case KindBendCurve:
		return "bend-curve"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// lineBased reports whether the kind carries a point chain that anchor
// operations may grow and shrink.
func (k Kind) lineBased() bool {
	return k == KindSegmentChain || k == KindBendCurve
}

// Style holds the visual attributes of a shape. Stroke and Fill are nil
// when absent (open chains have no fill; erased-to-nothing shapes keep
// nil colors rather than white).
type Style struct {
	Stroke      *RGBA
	Fill        *RGBA
	StrokeWidth float64
	FontSize    float64
	Text        string
}

// clone deep-copies the style, including the pointer colors, so that a
// snapshot never aliases live color values.
func (s Style) clone() Style {
	out := s
	if s.Stroke != nil {
		c := *s.Stroke
		out.Stroke = &c
	}
	if s.Fill != nil {
		c := *s.Fill
		out.Fill = &c
	}
	return out
}

// Shape is one geometry record: a kind tag, an ordered point slice, the
// visual style, and the set of point indices the bend tools treat as
// fixed pivots. Points replaces the flat even-length coordinate array of
// the classic model; indexing whole points removes the even/odd-offset
// bookkeeping bug class by construction.
type Shape struct {
	ID     Handle
	Kind   Kind
	Points []Point
	Style  Style

	// Anchors is a sorted set of unique indices into Points. Empty for
	// kinds that are not line-based.
	Anchors []int
}

// Clone returns a deep copy of the shape. Mutating the copy never
// affects the original; the history engine relies on this.
func (s *Shape) Clone() *Shape {
	out := &Shape{
		ID:    s.ID,
		Kind:  s.Kind,
		Style: s.Style.clone(),
	}
	if s.Points != nil {
		out.Points = make([]Point, len(s.Points))
		copy(out.Points, s.Points)
	}
	if s.Anchors != nil {
		out.Anchors = make([]int, len(s.Anchors))
		copy(out.Anchors, s.Anchors)
	}
	return out
}

// Bounds returns the normalized axis-aligned bounding box of the shape's
// points. Rectangle and ellipse corners are stored in drag order, so this
// is the canonical way to read them; it never mutates the stored points.
func (s *Shape) Bounds() Rect {
	return BoundsOf(s.Points)
}

// validate panics on malformed geometry. Malformed records can only
// arise from an internal bug, never from user input, so this is an
// assertion at the store boundary rather than a user-facing error.
func (s *Shape) validate() {
	if s.Kind.lineBased() && len(s.Points) < 2 {
		panic(fmt.Sprintf("sketch: %s shape %s has %d points, need at least 2",
			s.Kind, s.ID, len(s.Points)))
	}
	prev := -1
	for _, a := range s.Anchors {
		if a < 0 || a >= len(s.Points) {
			panic(fmt.Sprintf("sketch: shape %s anchor index %d out of range [0,%d)",
				s.ID, a, len(s.Points)))
		}
		if a <= prev {
			panic(fmt.Sprintf("sketch: shape %s anchors not sorted-unique at index %d", s.ID, a))
		}
		prev = a
	}
}

// BoundsOf returns the min/max corners over pts. It is the on-demand
// normalization used wherever rectangle or ellipse corner order is
// ambiguous after a drag; the stored points are left untouched.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}
	return r
}
