// Package sketch implements the document core of a 2D vector-shape editor.
//
// # Overview
//
// sketch holds the editable document model: shapes stored as flat point
// slices with per-shape anchor sets, an anchor/geometry engine for
// inserting, removing and bending control points, ordered layers of shape
// references, and a bounded snapshot history with branch-aware undo/redo.
// Rendering, windowing and file dialogs are external collaborators; the
// package exposes read views (Shapes, Anchors, HistoryDescriptions) for
// them and consumes raw pointer events.
//
// # Quick Start
//
//	import "github.com/gosketch/sketch"
//
//	ed := sketch.NewEditor()
//	ed.SetTool(sketch.ToolLine)
//	ed.PointerDown(10, 10, 0)
//	ed.PointerDrag(90, 40)
//	ed.PointerUp(90, 40)
//
//	ed.SetTool(sketch.ToolAddAnchor)
//	ed.PointerDown(50, 25, 0) // splits the closest segment
//
//	ed.Undo()
//
// # Architecture
//
// The package is organized into:
//   - Document model: Shape, Store, Layer, Registry
//   - Anchor engine: segment search, insertion, removal, bend transforms
//   - History: deep-copy snapshots with branch truncation and eviction
//   - Interaction: tool dispatch over an explicit gesture state machine
//
// Subpackages cover the boundary with the excluded I/O collaborators:
// raster (image decode/scale/rotate for raster insets) and text
// (extent measurement for text anchors).
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Concurrency
//
// The document is single-threaded by design: every mutation runs
// synchronously inside one pointer or keyboard event handler. History
// snapshots are immutable once pushed; correctness rests on copy-on-
// snapshot discipline, not locks. SetLogger is the only API safe to call
// from other goroutines.
package sketch

// Version is the current version of the library.
const Version = "0.2.0"
