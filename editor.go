package sketch

import "fmt"

// Interaction defaults carried over from the classic editor.
const (
	DefaultStrokeWidth  = 3.0
	DefaultFontSize     = 14.0
	DefaultEraserRadius = 15.0
	// DefaultFadeStep is the soft eraser's per-click channel step
	// (20/255 in 8-bit terms).
	DefaultFadeStep  = 20.0 / 255.0
	DefaultHitRadius = 6.0
)

// ShapeView is the redraw projection of one shape. Points is the live
// slice and must be treated as read-only by renderers.
type ShapeView struct {
	Handle Handle
	Kind   Kind
	Points []Point
	Style  Style
}

// AnchorView describes one control point for overlay rendering. Fixed
// reports whether the point is a registered anchor (a pivot the bend
// interpolations hold in place) rather than an interpolated point.
type AnchorView struct {
	Index int
	Pos   Point
	Fixed bool
}

// Editor is the interaction controller: it owns the document (store,
// layers, history) and turns pointer events into anchor-engine
// operations. All methods must be called from a single event-handling
// goroutine; see the package documentation for the concurrency model.
type Editor struct {
	store   *Store
	layers  *Registry
	history *History
	opts    editorOptions

	tool         Tool
	currentLayer int
	selected     Handle
	g            gesture

	stroke      RGBA
	fill        RGBA
	strokeWidth float64
	fontSize    float64
}

// NewEditor creates an editor with one empty layer and the initial
// state already in history.
func NewEditor(opts ...EditorOption) *Editor {
	o := defaultEditorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ed := &Editor{
		store:       NewStore(),
		layers:      NewRegistry(),
		history:     NewHistory(o.maxHistory),
		opts:        o,
		selected:    NilHandle,
		stroke:      Hex("#000000"),
		fill:        Hex("#FFFFFF"),
		strokeWidth: DefaultStrokeWidth,
		fontSize:    DefaultFontSize,
	}
	ed.layers.Add("Layer 1")
	ed.history.Push(ed.store, ed.layers, "Initial state")
	return ed
}

// SetTool switches the active tool. Any in-flight gesture is abandoned
// and the selection overlay cleared, matching tool-switch behavior of
// the classic editor.
func (ed *Editor) SetTool(t Tool) {
	ed.tool = t
	ed.g = gesture{}
	ed.selected = NilHandle
}

// Tool returns the active tool.
func (ed *Editor) Tool() Tool { return ed.tool }

// SetStroke sets the stroke color applied to newly created shapes.
func (ed *Editor) SetStroke(c RGBA) { ed.stroke = c }

// SetFill sets the fill color applied to newly created closed shapes.
func (ed *Editor) SetFill(c RGBA) { ed.fill = c }

// SetStrokeWidth sets the stroke width for newly created shapes.
func (ed *Editor) SetStrokeWidth(w float64) {
	if w > 0 {
		ed.strokeWidth = w
	}
}

// SetFontSize sets the font size for newly placed text anchors.
func (ed *Editor) SetFontSize(s float64) {
	if s > 0 {
		ed.fontSize = s
	}
}

// Selected returns the handle of the selected shape, or NilHandle.
func (ed *Editor) Selected() Handle { return ed.selected }

// activeLayer returns the current layer if it accepts edits.
func (ed *Editor) activeLayer() (*Layer, error) {
	l, err := ed.layers.At(ed.currentLayer)
	if err != nil {
		return nil, err
	}
	if l.Locked || !l.Visible {
		return nil, ErrLayerLocked
	}
	return l, nil
}

// PointerDown begins a gesture at (x, y) with the given modifiers held.
// Refused or off-target presses leave the document unchanged.
func (ed *Editor) PointerDown(x, y float64, mods Modifier) {
	layer, err := ed.activeLayer()
	if err != nil {
		Logger().Warn("pointer down ignored", "reason", err)
		return
	}
	p := Pt(x, y)
	ed.g = gesture{tool: ed.tool, phase: phaseTargeting, start: p, last: p}

	switch ed.tool {
	case ToolSelect:
		if h, ok := ed.hitShape(p); ok {
			ed.selected = h
			ed.g.target = h
			ed.g.elem = elemShape
		} else {
			ed.selected = NilHandle
		}

	case ToolDirectSelect, ToolBendArc:
		ed.targetAnchorOrShape(p, mods)

	case ToolAddAnchor:
		if h, ok := ed.hitShape(p); ok {
			ed.insertAnchorAt(h, p)
		}

	case ToolBendPush, ToolBendTwist:
		if h, ok := ed.hitShape(p); ok {
			ed.selected = h
			ed.g.target = h
			ed.g.elem = elemShape
		}

	case ToolBrush:
		h := ed.store.Create(KindSegmentChain, []Point{p, p.Add(Pt(1, 1))}, Style{
			Stroke:      &ed.stroke,
			StrokeWidth: ed.strokeWidth,
		})
		layer.AddItem(h, KindSegmentChain)
		ed.selected = h
		ed.g.target = h
		ed.g.temp = h
		ed.g.pend("Brush stroke")

	case ToolLine, ToolRectangle, ToolEllipse:
		// The shape is created on the first drag frame.

	case ToolText:
		pts := []Point{p}
		style := Style{
			Stroke:      &ed.stroke,
			StrokeWidth: 1,
			FontSize:    ed.fontSize,
			Text:        "Sample",
		}
		if ed.opts.measureText != nil {
			w, h := ed.opts.measureText(style.Text, style.FontSize)
			pts = append(pts, p.Add(Pt(w, h)))
		}
		h := ed.store.Create(KindTextAnchor, pts, style)
		layer.AddItem(h, KindTextAnchor)
		ed.selected = h
		ed.g.pend("Created text")

	case ToolEraser:
		if h, ok := ed.hitShape(p); ok {
			ed.eraseShape(h)
			ed.g.pend("Sharp eraser")
		}

	case ToolRoundEraser:
		if h, ok := ed.hitShape(p); ok {
			ed.roundErase(h, p)
			ed.g.pend("Round eraser")
		}

	case ToolSoftEraser:
		if h, ok := ed.hitShape(p); ok {
			ed.softErase(h)
			ed.g.pend("Soft eraser")
		}
	}
}

// targetAnchorOrShape resolves a press for the anchor-dragging tools,
// honoring the classic modifier chords: Shift on an anchor removes it,
// Alt on a shape inserts one, a plain press on an anchor starts a drag.
func (ed *Editor) targetAnchorOrShape(p Point, mods Modifier) {
	if ed.selected != NilHandle {
		if s, ok := ed.store.Get(ed.selected); ok {
			if idx, ok := ed.hitAnchor(s, p); ok {
				if mods&ModShift != 0 {
					ed.removeAnchorAt(ed.selected, idx)
					return
				}
				ed.g.target = ed.selected
				ed.g.elem = elemAnchor
				ed.g.pointIndex = idx
				return
			}
		}
	}
	h, ok := ed.hitShape(p)
	if !ok {
		ed.selected = NilHandle
		return
	}
	if mods&ModAlt != 0 {
		ed.insertAnchorAt(h, p)
		return
	}
	ed.selected = h
	ed.g.target = h
	ed.g.elem = elemShape
	if mods&ModCtrl != 0 {
		// Ctrl chord: the drag warps instead of selecting.
		ed.g.tool = ToolBendPush
	}
}

// PointerDrag advances the active gesture. The target is re-fetched
// every frame: a drag event can legitimately arrive after its shape was
// erased, and is then silently dropped.
func (ed *Editor) PointerDrag(x, y float64) {
	if ed.g.phase == phaseIdle {
		return
	}
	p := Pt(x, y)
	ed.g.phase = phaseDragging

	switch ed.g.tool {
	case ToolSelect:
		if s, ok := ed.liveTarget(); ok {
			delta := p.Sub(ed.g.last)
			for i := range s.Points {
				s.Points[i] = s.Points[i].Add(delta)
			}
			ed.g.pend("Moved shape")
		}

	case ToolDirectSelect, ToolBendArc:
		ed.dragAnchor(p)

	case ToolBendPush:
		if s, ok := ed.liveTarget(); ok {
			RadialPush(s.Points, ed.g.start, p.Sub(ed.g.last), ed.opts.warpRadius)
			ed.g.pend("Bend push")
		}

	case ToolBendTwist:
		if s, ok := ed.liveTarget(); ok {
			angle := p.Sub(ed.g.last).Length() * ed.opts.warpScale
			RotationalWarp(s.Points, ed.g.start, angle, ed.opts.warpRadius)
			ed.g.pend("Bend twist")
		}

	case ToolBrush:
		if s, ok := ed.liveTarget(); ok {
			if p.Distance(ed.g.last) > 1 {
				s.Points = append(s.Points, p)
			}
		}

	case ToolLine:
		ed.dragTemp(KindSegmentChain, []Point{ed.g.start, p}, Style{
			Stroke:      &ed.stroke,
			StrokeWidth: ed.strokeWidth,
		})

	case ToolRectangle:
		ed.dragTemp(KindRectangle, []Point{ed.g.start, p}, Style{
			Stroke:      &ed.stroke,
			Fill:        &ed.fill,
			StrokeWidth: ed.strokeWidth,
		})

	case ToolEllipse:
		ed.dragTemp(KindEllipse, []Point{ed.g.start, p}, Style{
			Stroke:      &ed.stroke,
			Fill:        &ed.fill,
			StrokeWidth: ed.strokeWidth,
		})
	}

	ed.g.last = p
}

// dragAnchor moves the dragged point and, when the point sits between
// two registered anchors, re-interpolates the span so the chain stays
// smooth while the anchor moves. The arc tool bulges instead.
func (ed *Editor) dragAnchor(p Point) {
	if ed.g.elem != elemAnchor {
		return
	}
	s, ok := ed.liveTarget()
	if !ok {
		return
	}
	idx := ed.g.pointIndex
	s.Points[idx] = p
	if s.Kind.lineBased() {
		prev, next := AnchorNeighbors(s, idx)
		if prev >= 0 && next >= 0 {
			if ed.g.tool == ToolBendArc {
				ArcInterpolate(s, prev, idx, ed.opts.arcBulge)
				ArcInterpolate(s, idx, next, ed.opts.arcBulge)
			} else {
				Interpolate(s, prev, idx)
				Interpolate(s, idx, next)
			}
		}
	}
	ed.g.pend(fmt.Sprintf("Moved anchor (%s)", ed.g.tool))
}

// dragTemp replaces the in-progress creation shape with the new drag
// extent, creating it on the first frame.
func (ed *Editor) dragTemp(kind Kind, pts []Point, style Style) {
	if ed.g.temp == NilHandle {
		layer, err := ed.activeLayer()
		if err != nil {
			return
		}
		h := ed.store.Create(kind, pts, style)
		layer.AddItem(h, kind)
		ed.g.temp = h
		ed.g.target = h
		return
	}
	// Ignore the error: the temp shape was created this gesture and is
	// only removable by this gesture.
	_ = ed.store.UpdatePoints(ed.g.temp, pts)
}

// PointerUp completes the gesture. Creation shapes are finalized
// (rectangle and ellipse corners normalized), and if the gesture changed
// the document, exactly one history entry is pushed.
func (ed *Editor) PointerUp(x, y float64) {
	g := ed.g
	ed.g = gesture{}
	if g.phase == phaseIdle {
		return
	}

	switch g.tool {
	case ToolLine, ToolRectangle, ToolEllipse:
		if g.temp == NilHandle {
			return // press without drag creates nothing
		}
		if s, ok := ed.store.Get(g.temp); ok {
			if s.Kind == KindRectangle || s.Kind == KindEllipse {
				b := s.Bounds()
				s.Points = []Point{Pt(b.MinX, b.MinY), Pt(b.MaxX, b.MaxY)}
			}
			ed.selected = g.temp
		}
		ed.history.Push(ed.store, ed.layers, "Created "+g.tool.String())
		return
	}

	if g.commitDesc != "" {
		ed.history.Push(ed.store, ed.layers, g.commitDesc)
	}
}

// insertAnchorAt runs InsertAnchor against a live shape and pends the
// commit. Kinds without anchors make it a no-op.
func (ed *Editor) insertAnchorAt(h Handle, p Point) {
	s, ok := ed.store.Get(h)
	if !ok {
		return
	}
	if idx := InsertAnchor(s, p); idx >= 0 {
		ed.selected = h
		ed.g.pend("Inserted anchor")
		Logger().Debug("anchor inserted", "shape", h, "index", idx)
	}
}

// removeAnchorAt runs RemoveAnchor against a live shape. A refusal at
// the two-point minimum is logged and otherwise a no-op.
func (ed *Editor) removeAnchorAt(h Handle, idx int) {
	s, ok := ed.store.Get(h)
	if !ok {
		return
	}
	if err := RemoveAnchor(s, idx); err != nil {
		Logger().Warn("anchor removal refused", "shape", h, "err", err)
		return
	}
	ed.g.pend("Removed anchor")
}

// liveTarget re-fetches the gesture's target from the store.
func (ed *Editor) liveTarget() (*Shape, bool) {
	if ed.g.target == NilHandle {
		return nil, false
	}
	return ed.store.Get(ed.g.target)
}

// hitAnchor returns the index of the shape point within the hit radius
// of p, lowest index on ties.
func (ed *Editor) hitAnchor(s *Shape, p Point) (int, bool) {
	for i, pt := range s.Points {
		if pt.Distance(p) <= ed.opts.hitRadius {
			return i, true
		}
	}
	return -1, false
}

// hitShape returns the visible shape closest to p, searching layers top
// to bottom. Chains measure distance to their closest segment; other
// kinds measure against their bounds, zero when p is inside.
func (ed *Editor) hitShape(p Point) (Handle, bool) {
	best := NilHandle
	bestDist := ed.opts.hitRadius * 4
	for _, l := range ed.layers.Layers() {
		if !l.Visible {
			continue
		}
		for _, it := range l.Items {
			s, ok := ed.store.Get(it.Handle)
			if !ok {
				continue
			}
			d := shapeDistance(s, p)
			if d < bestDist {
				bestDist = d
				best = it.Handle
			}
		}
	}
	return best, best != NilHandle
}

// shapeDistance is the pick metric: 0 inside a filled shape's bounds,
// segment distance along a chain, distance to bounds otherwise.
func shapeDistance(s *Shape, p Point) float64 {
	if s.Kind.lineBased() {
		if seg := ClosestSegment(p, s.Points); seg >= 0 {
			return PointSegmentDistance(p, s.Points[seg], s.Points[seg+1])
		}
		return p.Distance(s.Points[0])
	}
	b := s.Bounds()
	if b.Contains(p) {
		return 0
	}
	dx := max(b.MinX-p.X, 0, p.X-b.MaxX)
	dy := max(b.MinY-p.Y, 0, p.Y-b.MaxY)
	return Pt(dx, dy).Length()
}

// eraseShape removes a shape from its layer, the store and the
// selection.
func (ed *Editor) eraseShape(h Handle) {
	if l := ed.layers.LayerOf(h); l != nil {
		l.RemoveItem(h)
	}
	ed.store.Remove(h)
	if ed.selected == h {
		ed.selected = NilHandle
	}
}

// roundErase removes every chain point within the eraser radius of p.
// If fewer than two points survive, or the shape is not a chain and any
// point is hit, the whole shape is erased.
func (ed *Editor) roundErase(h Handle, p Point) {
	s, ok := ed.store.Get(h)
	if !ok {
		return
	}
	if !s.Kind.lineBased() {
		for _, pt := range s.Points {
			if pt.Distance(p) < ed.opts.eraserRadius {
				ed.eraseShape(h)
				return
			}
		}
		return
	}
	kept := make([]Point, 0, len(s.Points))
	keptAnchors := make([]int, 0, len(s.Anchors))
	ai := 0
	for i, pt := range s.Points {
		for ai < len(s.Anchors) && s.Anchors[ai] < i {
			ai++
		}
		if pt.Distance(p) >= ed.opts.eraserRadius {
			if ai < len(s.Anchors) && s.Anchors[ai] == i {
				keptAnchors = append(keptAnchors, len(kept))
			}
			kept = append(kept, pt)
		}
	}
	if len(kept) < 2 {
		ed.eraseShape(h)
		return
	}
	s.Points = kept
	s.Anchors = keptAnchors
}

// softErase fades the shape's stroke and fill toward white by one step.
func (ed *Editor) softErase(h Handle) {
	s, ok := ed.store.Get(h)
	if !ok {
		return
	}
	if s.Style.Stroke != nil {
		*s.Style.Stroke = s.Style.Stroke.Faded(ed.opts.fadeStep)
	}
	if s.Style.Fill != nil {
		*s.Style.Fill = s.Style.Fill.Faded(ed.opts.fadeStep)
	}
}

// Shapes returns the redraw list in paint order: bottom layer first,
// hidden layers skipped.
func (ed *Editor) Shapes() []ShapeView {
	var out []ShapeView
	layers := ed.layers.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if !l.Visible {
			continue
		}
		for _, it := range l.Items {
			if s, ok := ed.store.Get(it.Handle); ok {
				out = append(out, ShapeView{Handle: s.ID, Kind: s.Kind, Points: s.Points, Style: s.Style})
			}
		}
	}
	return out
}

// Anchors returns the overlay view of every point of the shape, with
// registered anchors flagged as fixed.
func (ed *Editor) Anchors(h Handle) []AnchorView {
	s, ok := ed.store.Get(h)
	if !ok {
		return nil
	}
	out := make([]AnchorView, len(s.Points))
	ai := 0
	for i, p := range s.Points {
		fixed := false
		if ai < len(s.Anchors) && s.Anchors[ai] == i {
			fixed = true
			ai++
		}
		out[i] = AnchorView{Index: i, Pos: p, Fixed: fixed}
	}
	return out
}

// Store exposes the live shape store for programmatic document building.
func (ed *Editor) Store() *Store { return ed.store }

// Layers exposes the layer registry.
func (ed *Editor) Layers() *Registry { return ed.layers }

// CurrentLayer returns the index of the layer receiving new shapes.
func (ed *Editor) CurrentLayer() int { return ed.currentLayer }

// SelectLayer makes the layer at i current.
func (ed *Editor) SelectLayer(i int) error {
	if _, err := ed.layers.At(i); err != nil {
		return err
	}
	ed.currentLayer = i
	return nil
}

// AddLayer inserts a named layer on top, makes it current, and commits.
func (ed *Editor) AddLayer(name string) {
	if name == "" {
		name = fmt.Sprintf("Layer %d", ed.layers.Len()+1)
	}
	ed.layers.Add(name)
	ed.currentLayer = 0
	ed.history.Push(ed.store, ed.layers, "Added "+name)
}

// DeleteLayer removes the layer at i along with its shapes and commits.
func (ed *Editor) DeleteLayer(i int) error {
	l, err := ed.layers.At(i)
	if err != nil {
		return err
	}
	name := l.Name
	handles, err := ed.layers.Delete(i)
	if err != nil {
		return err
	}
	for _, h := range handles {
		ed.store.Remove(h)
		if ed.selected == h {
			ed.selected = NilHandle
		}
	}
	if ed.currentLayer >= ed.layers.Len() {
		ed.currentLayer = 0
	}
	ed.history.Push(ed.store, ed.layers, "Deleted layer "+name)
	return nil
}

// MoveLayerUp raises the layer at i one position and commits.
func (ed *Editor) MoveLayerUp(i int) error {
	if err := ed.layers.MoveUp(i); err != nil {
		return err
	}
	if ed.currentLayer == i {
		ed.currentLayer = i - 1
	}
	ed.history.Push(ed.store, ed.layers, "Moved layer up")
	return nil
}

// MoveLayerDown lowers the layer at i one position and commits.
func (ed *Editor) MoveLayerDown(i int) error {
	if err := ed.layers.MoveDown(i); err != nil {
		return err
	}
	if ed.currentLayer == i {
		ed.currentLayer = i + 1
	}
	ed.history.Push(ed.store, ed.layers, "Moved layer down")
	return nil
}

// ToggleLayerVisible flips visibility of the layer at i and commits.
func (ed *Editor) ToggleLayerVisible(i int) error {
	if err := ed.layers.ToggleVisible(i); err != nil {
		return err
	}
	l, _ := ed.layers.At(i)
	ed.history.Push(ed.store, ed.layers, "Toggled visibility on "+l.Name)
	return nil
}

// PlaceRasterInset stores a raster inset's anchor and extent on the
// current layer and commits. The pixels themselves stay with the
// imaging collaborator; see the raster subpackage.
func (ed *Editor) PlaceRasterInset(anchor Point, w, h float64, name string) (Handle, error) {
	layer, err := ed.activeLayer()
	if err != nil {
		return NilHandle, err
	}
	handle := ed.store.Create(KindRasterInset, []Point{anchor, anchor.Add(Pt(w, h))}, Style{Text: name})
	layer.AddItem(handle, KindRasterInset)
	ed.history.Push(ed.store, ed.layers, "Placed image "+name)
	return handle, nil
}

// Undo steps the document back one history entry.
func (ed *Editor) Undo() error {
	e, err := ed.history.Undo()
	if err != nil {
		Logger().Warn("undo refused", "err", err)
		return err
	}
	ed.applyEntry(e)
	return nil
}

// Redo steps the document forward one history entry.
func (ed *Editor) Redo() error {
	e, err := ed.history.Redo()
	if err != nil {
		Logger().Warn("redo refused", "err", err)
		return err
	}
	ed.applyEntry(e)
	return nil
}

// GoToHistory jumps to an arbitrary entry from the history browser.
func (ed *Editor) GoToHistory(i int) error {
	e, err := ed.history.GoTo(i)
	if err != nil {
		return err
	}
	ed.applyEntry(e)
	return nil
}

// HistoryDescriptions returns the browser list of committed steps.
func (ed *Editor) HistoryDescriptions() []string {
	return ed.history.Descriptions()
}

// HistoryIndex returns the index of the current history entry.
func (ed *Editor) HistoryIndex() int { return ed.history.Index() }

func (ed *Editor) applyEntry(e *Entry) {
	Restore(e, ed.store, ed.layers)
	ed.selected = NilHandle
	ed.g = gesture{}
	if ed.currentLayer >= ed.layers.Len() {
		ed.currentLayer = 0
	}
}
