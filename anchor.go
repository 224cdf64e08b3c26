package sketch

// Anchor engine: geometric queries and mutations over one shape's point
// chain. All functions are total over well-formed shapes; malformed
// records (out-of-range anchor indices) are an internal bug class caught
// by Shape.validate at the store boundary, not handled here.

// PointSegmentDistance returns the distance from p to the segment a-b.
// The projection parameter is clamped to [0,1], so a closest point past
// either endpoint resolves to that endpoint. A degenerate segment (a==b)
// returns the plain Euclidean distance to a.
func PointSegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// projectOnSegment returns the point on segment a-b closest to p.
// Degenerate segments project onto a.
func projectOnSegment(p, a, b Point) Point {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}

// ClosestSegment returns the index i such that the segment from pts[i]
// to pts[i+1] minimizes PointSegmentDistance to p. Ties resolve to the
// lowest index. Returns -1 when pts has no segment.
func ClosestSegment(p Point, pts []Point) int {
	if len(pts) < 2 {
		return -1
	}
	best := 0
	bestDist := PointSegmentDistance(p, pts[0], pts[1])
	for i := 1; i < len(pts)-1; i++ {
		d := PointSegmentDistance(p, pts[i], pts[i+1])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// InsertAnchor splices a new control point into the shape's chain next
// to p and registers it as an anchor. The point inserted is the clamped
// projection of p onto the closest segment, placed immediately after the
// segment's start; with only one segment the midpoint is used instead.
// Returns the index of the new point, or -1 for kinds without anchors
// (rectangles, ellipses, text: the operation is a defined no-op).
func InsertAnchor(s *Shape, p Point) int {
	if !s.Kind.lineBased() {
		return -1
	}
	var at int
	var np Point
	if len(s.Points) < 3 {
		// Single segment: split at its midpoint.
		at = 1
		np = s.Points[0].Lerp(s.Points[1], 0.5)
	} else {
		seg := ClosestSegment(p, s.Points)
		at = seg + 1
		np = projectOnSegment(p, s.Points[seg], s.Points[seg+1])
	}

	s.Points = append(s.Points, Point{})
	copy(s.Points[at+1:], s.Points[at:])
	s.Points[at] = np

	// Re-index: every anchor at or past the insertion point moves up.
	// Stale indices here are the classic corruption bug, so the shift
	// happens before the new index is registered.
	for i, a := range s.Anchors {
		if a >= at {
			s.Anchors[i] = a + 1
		}
	}
	s.Anchors = insertSorted(s.Anchors, at)
	return at
}

// RemoveAnchor deletes the point at idx from a line-based shape and drops
// idx from its anchor set, shifting every following anchor index down by
// one. Refuses with ErrTooFewAnchors when removal would leave fewer than
// two points; the shape is untouched on refusal.
func RemoveAnchor(s *Shape, idx int) error {
	if !s.Kind.lineBased() {
		return nil
	}
	if len(s.Points)-1 < 2 {
		return ErrTooFewAnchors
	}
	s.Points = append(s.Points[:idx], s.Points[idx+1:]...)

	out := s.Anchors[:0]
	for _, a := range s.Anchors {
		switch {
		case a == idx:
			// dropped
		case a > idx:
			out = append(out, a-1)
		default:
			out = append(out, a)
		}
	}
	s.Anchors = out
	return nil
}

// AnchorNeighbors returns the nearest registered anchors strictly before
// and after idx, or -1 where none exists. Interpolation after an anchor
// drag runs between these.
func AnchorNeighbors(s *Shape, idx int) (prev, next int) {
	prev, next = -1, -1
	for _, a := range s.Anchors {
		if a < idx {
			prev = a
		}
		if a > idx {
			next = a
			return
		}
	}
	return
}

// insertSorted adds v to a sorted unique index slice, keeping it sorted.
func insertSorted(s []int, v int) []int {
	at := len(s)
	for i, x := range s {
		if x == v {
			return s
		}
		if x > v {
			at = i
			break
		}
	}
	s = append(s, 0)
	copy(s[at+1:], s[at:])
	s[at] = v
	return s
}
