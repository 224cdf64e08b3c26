package sketch

// EditorOption configures an Editor during creation.
//
// Example:
//
//	ed := sketch.NewEditor(
//	    sketch.WithMaxHistory(100),
//	    sketch.WithWarpRadius(80),
//	)
type EditorOption func(*editorOptions)

// editorOptions holds optional configuration for Editor creation.
type editorOptions struct {
	maxHistory   int
	warpRadius   float64
	warpScale    float64
	arcBulge     float64
	eraserRadius float64
	fadeStep     float64
	hitRadius    float64
	measureText  func(text string, size float64) (w, h float64)
}

// defaultEditorOptions returns the default editor options.
func defaultEditorOptions() editorOptions {
	return editorOptions{
		maxHistory:   DefaultMaxHistory,
		warpRadius:   DefaultWarpRadius,
		warpScale:    DefaultWarpScale,
		arcBulge:     DefaultArcBulge,
		eraserRadius: DefaultEraserRadius,
		fadeStep:     DefaultFadeStep,
		hitRadius:    DefaultHitRadius,
	}
}

// WithMaxHistory bounds the snapshot stack. Values below 1 keep the
// default.
func WithMaxHistory(n int) EditorOption {
	return func(o *editorOptions) {
		if n >= 1 {
			o.maxHistory = n
		}
	}
}

// WithWarpRadius sets the influence radius of the push and twist bend
// tools, in document units.
func WithWarpRadius(r float64) EditorOption {
	return func(o *editorOptions) { o.warpRadius = r }
}

// WithWarpScale sets the drag-magnitude-to-radians factor of the twist
// bend tool.
func WithWarpScale(s float64) EditorOption {
	return func(o *editorOptions) { o.warpScale = s }
}

// WithArcBulge sets the peak displacement of the arc bend tool.
func WithArcBulge(k float64) EditorOption {
	return func(o *editorOptions) { o.arcBulge = k }
}

// WithEraserRadius sets the radius of the round eraser.
func WithEraserRadius(r float64) EditorOption {
	return func(o *editorOptions) { o.eraserRadius = r }
}

// WithFadeStep sets the per-click channel step of the soft eraser, in
// the [0,1] color range.
func WithFadeStep(step float64) EditorOption {
	return func(o *editorOptions) { o.fadeStep = step }
}

// WithHitRadius sets the pick distance for anchors and segments.
func WithHitRadius(r float64) EditorOption {
	return func(o *editorOptions) { o.hitRadius = r }
}

// WithTextMeasurer wires a text extent measurer, typically
// [github.com/gosketch/sketch/text.Measure]. Without one, text anchors
// store only their anchor point and no extent.
func WithTextMeasurer(f func(text string, size float64) (w, h float64)) EditorOption {
	return func(o *editorOptions) { o.measureText = f }
}
