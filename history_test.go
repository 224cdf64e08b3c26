package sketch

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// pushLine creates a one-shape document state and pushes it.
func pushLine(t *testing.T, h *History, st *Store, reg *Registry, x float64, desc string) Handle {
	t.Helper()
	handle := st.Create(KindSegmentChain, []Point{Pt(x, 0), Pt(x, 10)}, Style{StrokeWidth: 1})
	reg.Layers()[0].AddItem(handle, KindSegmentChain)
	h.Push(st, reg, desc)
	return handle
}

func newDoc() (*Store, *Registry) {
	st := NewStore()
	reg := NewRegistry()
	reg.Add("Layer 1")
	return st, reg
}

func TestHistoryBranchTruncation(t *testing.T) {
	st, reg := newDoc()
	h := NewHistory(DefaultMaxHistory)
	h.Push(st, reg, "S0")
	pushLine(t, h, st, reg, 1, "S1")
	pushLine(t, h, st, reg, 2, "S2")

	if _, err := h.Undo(); err != nil {
		t.Fatalf("first undo: %v", err)
	}
	e, err := h.Undo()
	if err != nil {
		t.Fatalf("second undo: %v", err)
	}
	Restore(e, st, reg)

	pushLine(t, h, st, reg, 3, "S3")

	want := []string{"S0", "S3"}
	if diff := cmp.Diff(want, h.Descriptions()); diff != "" {
		t.Errorf("descriptions after branch (-want +got):\n%s", diff)
	}
	if h.Index() != 1 {
		t.Errorf("current index = %d, want 1", h.Index())
	}
	if _, err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("redo after truncation = %v, want ErrNothingToRedo", err)
	}
}

func TestHistoryEviction(t *testing.T) {
	st, reg := newDoc()
	max := 5
	h := NewHistory(max)
	for i := 0; i <= max; i++ { // max+1 pushes
		pushLine(t, h, st, reg, float64(i), "S"+string(rune('0'+i)))
	}

	if h.Len() != max {
		t.Fatalf("history length = %d, want %d", h.Len(), max)
	}
	descs := h.Descriptions()
	if descs[0] != "S1" {
		t.Errorf("oldest entry = %q, want S1 (S0 evicted)", descs[0])
	}
	if h.Index() != h.Len()-1 {
		t.Errorf("current index = %d, want %d (most recent push)", h.Index(), h.Len()-1)
	}
	if h.Current().Description != "S5" {
		t.Errorf("current entry = %q, want S5", h.Current().Description)
	}
}

func TestHistorySnapshotIndependence(t *testing.T) {
	st, reg := newDoc()
	h := NewHistory(DefaultMaxHistory)
	handle := pushLine(t, h, st, reg, 4, "line")

	s, _ := st.Get(handle)
	s.Points[0] = Pt(999, 999)
	s.Style.StrokeWidth = 99
	reg.Layers()[0].Visible = false

	e := h.Current()
	snap := e.shapes[handle]
	if snap.Points[0] != Pt(4, 0) {
		t.Errorf("snapshot point mutated: %v", snap.Points[0])
	}
	if snap.Style.StrokeWidth != 1 {
		t.Errorf("snapshot style mutated: %v", snap.Style.StrokeWidth)
	}
	if !e.layers[0].Visible {
		t.Error("snapshot layer visibility mutated")
	}
}

func TestHistoryBoundaries(t *testing.T) {
	st, reg := newDoc()
	h := NewHistory(DefaultMaxHistory)

	if _, err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("undo on empty = %v, want ErrNothingToUndo", err)
	}
	h.Push(st, reg, "initial")
	if _, err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("undo on initial state = %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("redo at end = %v, want ErrNothingToRedo", err)
	}
	if _, err := h.GoTo(5); !errors.Is(err, ErrHistoryRange) {
		t.Errorf("GoTo(5) = %v, want ErrHistoryRange", err)
	}
	if _, err := h.GoTo(-1); !errors.Is(err, ErrHistoryRange) {
		t.Errorf("GoTo(-1) = %v, want ErrHistoryRange", err)
	}
	if _, err := h.GoTo(0); err != nil {
		t.Errorf("GoTo(0) = %v, want nil", err)
	}
}

func TestRestoreRemapsLayers(t *testing.T) {
	st, reg := newDoc()
	h := NewHistory(DefaultMaxHistory)
	handle := pushLine(t, h, st, reg, 7, "line")

	// A later state the entry must not see.
	st.Create(KindRectangle, []Point{Pt(0, 0), Pt(5, 5)}, Style{})

	Restore(h.Current(), st, reg)

	if st.Len() != 1 {
		t.Fatalf("store length after restore = %d, want 1", st.Len())
	}
	items := reg.Layers()[0].Items
	if len(items) != 1 {
		t.Fatalf("layer items after restore = %d, want 1", len(items))
	}
	if items[0].Handle == handle {
		t.Error("restore reused old handle; fresh handles expected")
	}
	s, ok := st.Get(items[0].Handle)
	if !ok {
		t.Fatal("layer references a handle missing from the store")
	}
	if s.Points[0] != Pt(7, 0) {
		t.Errorf("restored geometry = %v, want (7, 0)", s.Points[0])
	}

	// Mutating the restored live state must not reach the entry.
	s.Points[0] = Pt(-1, -1)
	if h.Current().shapes[handle].Points[0] != Pt(7, 0) {
		t.Error("restore aliased entry geometry into live store")
	}
}
