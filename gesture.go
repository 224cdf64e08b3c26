package sketch

// Tool selects which operation set pointer events drive.
type Tool uint8

const (
	// ToolSelect picks a shape and drags it as a whole.
	ToolSelect Tool = iota
	// ToolDirectSelect drags individual points; drags between two
	// registered anchors re-interpolate the span.
	ToolDirectSelect
	// ToolAddAnchor splits the closest segment of the clicked shape.
	ToolAddAnchor
	// ToolBendPush drags a localized push with linear falloff.
	ToolBendPush
	// ToolBendArc drags an anchor and bulges the span to its neighbors.
	ToolBendArc
	// ToolBendTwist rotates points around the press position.
	ToolBendTwist
	// ToolBrush appends points to a freehand chain.
	ToolBrush
	// ToolLine drags out a two-point segment chain.
	ToolLine
	// ToolRectangle drags out a rectangle.
	ToolRectangle
	// ToolEllipse drags out an ellipse.
	ToolEllipse
	// ToolText places a text anchor.
	ToolText
	// ToolEraser deletes the clicked shape.
	ToolEraser
	// ToolRoundEraser removes chain points within the eraser radius.
	ToolRoundEraser
	// ToolSoftEraser fades the clicked shape toward white.
	ToolSoftEraser
)

// String returns the tool name used in logs and history descriptions.
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolDirectSelect:
		return "direct-select"
	case ToolAddAnchor:
		return "add-anchor"
	case ToolBendPush:
		return "bend-push"
	case ToolBendArc:
		return "bend-arc"
	case ToolBendTwist:
		return "bend-twist"
	case ToolBrush:
		return "brush"
	case ToolLine:
		return "line"
	case ToolRectangle:
		return "rectangle"
	case ToolEllipse:
		return "ellipse"
	case ToolText:
		return "text"
	case ToolEraser:
		return "eraser"
	case ToolRoundEraser:
		return "round-eraser"
	case ToolSoftEraser:
		return "soft-eraser"
	default:
		return "unknown"
	}
}

// Modifier is a bitmask of the keyboard modifiers held during a pointer
// event. The bend tools chord on them the way the classic unified bend
// tool did: Shift removes an anchor, Alt inserts one, Ctrl warps.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// phase is the lifecycle of one pointer gesture.
type phase uint8

const (
	// phaseIdle: no button held.
	phaseIdle phase = iota
	// phaseTargeting: button down, target resolved, no movement yet.
	phaseTargeting
	// phaseDragging: pointer moved while down.
	phaseDragging
)

// element is what the press resolved to on the target shape.
type element uint8

const (
	elemNone element = iota
	elemAnchor
	elemSegment
	elemShape
)

// gesture is the state of the active pointer transaction, held as one
// explicit value rather than scattered fields. A gesture spans at most
// one shape; it is reset to the zero value (Idle) on pointer-up, at
// which point at most one history entry is committed.
type gesture struct {
	phase      phase
	tool       Tool
	target     Handle
	elem       element
	pointIndex int   // anchor index while elem == elemAnchor
	start      Point // press position
	last       Point // previous drag frame position
	temp       Handle
	commitDesc string // non-empty when pointer-up must push history
}

// pend records that the gesture has changed the document and what the
// resulting history entry should say. The latest description wins; a
// drag is one transaction, committed once.
func (g *gesture) pend(desc string) {
	g.commitDesc = desc
}
