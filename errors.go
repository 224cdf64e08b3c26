package sketch

import "errors"

// Sentinel errors. All refusals are recoverable no-ops: the document is
// left exactly as it was, and callers match with errors.Is.
var (
	// ErrTooFewAnchors is returned when removing an anchor would leave a
	// line-based shape with fewer than two points.
	ErrTooFewAnchors = errors.New("sketch: removing anchor would leave fewer than two points")

	// ErrNothingToUndo is returned by Undo at the start of history.
	ErrNothingToUndo = errors.New("sketch: nothing to undo")

	// ErrNothingToRedo is returned by Redo at the end of history.
	ErrNothingToRedo = errors.New("sketch: nothing to redo")

	// ErrHistoryRange is returned by GoTo for an index outside history.
	ErrHistoryRange = errors.New("sketch: history index out of range")

	// ErrShapeNotFound is returned when operating on a handle that is no
	// longer in the store. Pointer-event dispatch swallows it (a drag
	// frame can legitimately arrive after an erase); programmatic callers
	// see it directly.
	ErrShapeNotFound = errors.New("sketch: shape not found")

	// ErrLayerRange is returned for layer operations on an index outside
	// the registry.
	ErrLayerRange = errors.New("sketch: layer index out of range")

	// ErrLayerLocked is returned when an edit targets a locked or hidden
	// layer.
	ErrLayerLocked = errors.New("sketch: layer is locked or hidden")
)
