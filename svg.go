package sketch

import (
	"fmt"
	"io"
	"strings"
)

// WriteSVG serializes the visible document to SVG in paint order. It is
// the document-true replacement for screen capture at the export
// collaborator boundary: geometry and style come straight from the
// store, so hidden layers and stale handles never leak in. Raster insets
// emit a placeholder rectangle carrying the inset name; pixels live with
// the imaging collaborator.
func WriteSVG(w io.Writer, ed *Editor, width, height float64) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)

	for _, sv := range ed.Shapes() {
		writeShapeSVG(&b, sv)
	}

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeShapeSVG(b *strings.Builder, sv ShapeView) {
	switch sv.Kind {
	case KindSegmentChain, KindBendCurve:
		fmt.Fprintf(b, `  <polyline class=%q points=%q fill="none"%s/>`+"\n",
			sv.Kind.String(), svgPoints(sv.Points), svgStroke(sv.Style))

	case KindRectangle:
		r := BoundsOf(sv.Points)
		fmt.Fprintf(b, `  <rect x="%g" y="%g" width="%g" height="%g"%s%s/>`+"\n",
			r.MinX, r.MinY, r.Width(), r.Height(), svgFill(sv.Style), svgStroke(sv.Style))

	case KindEllipse:
		r := BoundsOf(sv.Points)
		fmt.Fprintf(b, `  <ellipse cx="%g" cy="%g" rx="%g" ry="%g"%s%s/>`+"\n",
			r.MinX+r.Width()/2, r.MinY+r.Height()/2, r.Width()/2, r.Height()/2,
			svgFill(sv.Style), svgStroke(sv.Style))

	case KindTextAnchor:
		if len(sv.Points) == 0 {
			return
		}
		fill := `fill="black"`
		if sv.Style.Stroke != nil {
			fill = fmt.Sprintf("fill=%q", sv.Style.Stroke.HexString())
		}
		fmt.Fprintf(b, `  <text x="%g" y="%g" font-size="%g" %s>%s</text>`+"\n",
			sv.Points[0].X, sv.Points[0].Y, sv.Style.FontSize, fill, escapeXML(sv.Style.Text))

	case KindRasterInset:
		r := BoundsOf(sv.Points)
		fmt.Fprintf(b, `  <rect class="raster-inset" data-name=%q x="%g" y="%g" width="%g" height="%g" fill="none" stroke="silver" stroke-dasharray="4 2"/>`+"\n",
			escapeXML(sv.Style.Text), r.MinX, r.MinY, r.Width(), r.Height())

	case KindGroup:
		// Groups carry no geometry of their own.
	}
}

func svgPoints(pts []Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g,%g", p.X, p.Y)
	}
	return b.String()
}

func svgStroke(s Style) string {
	if s.Stroke == nil {
		return ` stroke="none"`
	}
	out := fmt.Sprintf(" stroke=%q stroke-width=%q", s.Stroke.HexString(), fmt.Sprintf("%g", s.StrokeWidth))
	if s.Stroke.A < 1 {
		out += fmt.Sprintf(` stroke-opacity="%g"`, s.Stroke.A)
	}
	return out
}

func svgFill(s Style) string {
	if s.Fill == nil {
		return ` fill="none"`
	}
	out := fmt.Sprintf(" fill=%q", s.Fill.HexString())
	if s.Fill.A < 1 {
		out += fmt.Sprintf(` fill-opacity="%g"`, s.Fill.A)
	}
	return out
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
