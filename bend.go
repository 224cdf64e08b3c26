package sketch

import "math"

// Bend deformations. The arc bulge and rotation scale are tuned values
// carried over from the interaction design rather than derived; they are
// exposed as editor options so hosts can retune them.
const (
	// DefaultWarpRadius is the influence radius of the push and twist
	// deformations, in document units.
	DefaultWarpRadius = 50.0

	// DefaultWarpScale converts drag-delta magnitude to a twist angle in
	// radians.
	DefaultWarpScale = 0.015

	// DefaultArcBulge is the peak perpendicular displacement of the arc
	// interpolation, in document units.
	DefaultArcBulge = 12.0
)

// Interpolate re-samples every point strictly between the anchors at a
// and b so they lie evenly spaced on the straight line between the two
// anchor points. The anchors themselves and the point count are
// preserved. Argument order does not matter. This runs after each anchor
// drag that has both a previous and a next anchor neighbor, keeping the
// chain smooth while one anchor moves.
func Interpolate(s *Shape, a, b int) {
	if a > b {
		a, b = b, a
	}
	if b-a < 2 {
		return
	}
	start, end := s.Points[a], s.Points[b]
	span := float64(b - a)
	for k := a + 1; k < b; k++ {
		t := float64(k-a) / span
		s.Points[k] = start.Lerp(end, t)
	}
}

// ArcInterpolate re-samples the points strictly between the anchors at a
// and b onto a symmetric bulge: each point sits on the chord at its even
// spacing, displaced perpendicular to the chord by bulge·sin(π·t). The
// anchors and the point count are preserved.
func ArcInterpolate(s *Shape, a, b int, bulge float64) {
	if a > b {
		a, b = b, a
	}
	if b-a < 2 {
		return
	}
	start, end := s.Points[a], s.Points[b]
	dir := end.Sub(start).Normalize()
	perp := Point{X: -dir.Y, Y: dir.X}
	span := float64(b - a)
	for k := a + 1; k < b; k++ {
		t := float64(k-a) / span
		s.Points[k] = start.Lerp(end, t).Add(perp.Mul(bulge * math.Sin(math.Pi*t)))
	}
}

// RadialPush translates every point within radius of center by delta
// scaled with a linear falloff: full delta at the center, zero at the
// radius boundary. Points at or beyond the radius are left bit-identical.
func RadialPush(pts []Point, center, delta Point, radius float64) {
	if radius <= 0 {
		return
	}
	for i, p := range pts {
		d := p.Distance(center)
		if d >= radius {
			continue
		}
		falloff := 1 - d/radius
		pts[i] = p.Add(delta.Mul(falloff))
	}
}

// RotationalWarp rotates every point within radius of center about the
// center by angle. There is no falloff: the angle is uniform inside the
// radius and zero outside.
func RotationalWarp(pts []Point, center Point, angle, radius float64) {
	if radius <= 0 {
		return
	}
	for i, p := range pts {
		if p.Distance(center) >= radius {
			continue
		}
		pts[i] = p.RotateAround(center, angle)
	}
}
