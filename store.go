package sketch

// Store is the sole owner of the document's shapes. Everything else —
// layers, history snapshots, editor views — holds handles or copies,
// never live geometry.
type Store struct {
	shapes map[Handle]*Shape
}

// NewStore creates an empty shape store.
func NewStore() *Store {
	return &Store{shapes: make(map[Handle]*Shape)}
}

// Create adds a shape with a fresh handle and returns the handle.
// The point slice is copied; the caller keeps ownership of pts.
func (st *Store) Create(kind Kind, pts []Point, style Style) Handle {
	s := &Shape{
		ID:     newHandle(),
		Kind:   kind,
		Points: append([]Point(nil), pts...),
		Style:  style.clone(),
	}
	s.validate()
	st.shapes[s.ID] = s
	return s.ID
}

// Get returns the live shape for h. The second result is false when the
// handle is not in the store (erased, or stale after a restore).
// Callers mutate the returned shape in place during a drag; the store
// stays the owner.
func (st *Store) Get(h Handle) (*Shape, bool) {
	s, ok := st.shapes[h]
	return s, ok
}

// UpdatePoints replaces the shape's point slice wholesale, keeping the
// anchor set already on the record. The caller must ensure the new slice
// still accommodates every anchor index; anchor-safe resizing is the
// insert/remove contract, and a violation here is an internal bug, so
// validate panics rather than returning an error.
func (st *Store) UpdatePoints(h Handle, pts []Point) error {
	s, ok := st.shapes[h]
	if !ok {
		return ErrShapeNotFound
	}
	s.Points = append([]Point(nil), pts...)
	s.validate()
	return nil
}

// Remove deletes the shape for h. Removing an absent handle is a no-op.
func (st *Store) Remove(h Handle) {
	delete(st.shapes, h)
}

// Len returns the number of shapes in the store.
func (st *Store) Len() int { return len(st.shapes) }

// Handles returns the handles of all shapes, in no particular order.
func (st *Store) Handles() []Handle {
	out := make([]Handle, 0, len(st.shapes))
	for h := range st.shapes {
		out = append(out, h)
	}
	return out
}

// Clone returns a deep copy of every shape keyed by its current handle.
// The history engine snapshots through this; mutating the live store
// afterwards must never reach the copies.
func (st *Store) Clone() map[Handle]*Shape {
	out := make(map[Handle]*Shape, len(st.shapes))
	for h, s := range st.shapes {
		out[h] = s.Clone()
	}
	return out
}

// Clear removes every shape. Used when a history entry is restored.
func (st *Store) Clear() {
	clear(st.shapes)
}

// adopt inserts a shape under a freshly minted handle and returns it.
// Restore uses this to rebuild the store from snapshot copies; handle
// identity does not survive a restore, only geometry and style.
func (st *Store) adopt(s *Shape) Handle {
	c := s.Clone()
	c.ID = newHandle()
	c.validate()
	st.shapes[c.ID] = c
	return c.ID
}
