package sketch

// DefaultMaxHistory bounds the snapshot stack. The oldest entry is
// evicted once the bound is reached.
const DefaultMaxHistory = 30

// Entry is one committed document state: value copies of every shape
// keyed by its then-current handle, value copies of every layer, and a
// human-readable description for the history browser. Entries are
// immutable once pushed; both Push and Restore copy across the boundary
// so no entry ever aliases live state.
type Entry struct {
	shapes      map[Handle]*Shape
	layers      []*Layer
	Description string
}

// History is a bounded, branch-truncating snapshot stack over the shape
// store and layer registry.
type History struct {
	entries []*Entry
	current int
	max     int
}

// NewHistory creates an empty history holding at most max entries.
// max values below 1 fall back to DefaultMaxHistory.
func NewHistory(max int) *History {
	if max < 1 {
		max = DefaultMaxHistory
	}
	return &History{current: -1, max: max}
}

// Len returns the number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// Index returns the index of the current entry, or -1 when empty.
func (h *History) Index() int { return h.current }

// Push captures a deep-copy snapshot of the store and layers.
//
// If the user has undone past the end and now commits a new edit, every
// entry after the current one is discarded first: redo history is
// irrecoverably lost the moment a new edit lands after an undo. At
// capacity the oldest entry is evicted and the current index shifted
// down so it keeps pointing at the same logical entry.
func (h *History) Push(store *Store, reg *Registry, description string) {
	if h.current < len(h.entries)-1 {
		h.entries = h.entries[:h.current+1]
	}
	if len(h.entries) >= h.max {
		h.entries = h.entries[1:]
		h.current--
	}
	h.entries = append(h.entries, &Entry{
		shapes:      store.Clone(),
		layers:      reg.Clone(),
		Description: description,
	})
	h.current = len(h.entries) - 1
	Logger().Info("history push", "description", description, "index", h.current, "entries", len(h.entries))
}

// Undo steps back one entry and returns it, or ErrNothingToUndo at the
// start of history. The first entry is the initial state, so undo stops
// on it rather than before it.
func (h *History) Undo() (*Entry, error) {
	if h.current <= 0 {
		return nil, ErrNothingToUndo
	}
	h.current--
	return h.entries[h.current], nil
}

// Redo steps forward one entry and returns it, or ErrNothingToRedo at
// the end of history.
func (h *History) Redo() (*Entry, error) {
	if h.current >= len(h.entries)-1 {
		return nil, ErrNothingToRedo
	}
	h.current++
	return h.entries[h.current], nil
}

// GoTo jumps directly to the entry at index i. Out-of-range is a
// refusal, not a panic; the history browser feeds raw list indices here.
func (h *History) GoTo(i int) (*Entry, error) {
	if i < 0 || i >= len(h.entries) {
		return nil, ErrHistoryRange
	}
	h.current = i
	return h.entries[h.current], nil
}

// Current returns the entry at the current index, or nil when empty.
func (h *History) Current() *Entry {
	if h.current < 0 || h.current >= len(h.entries) {
		return nil
	}
	return h.entries[h.current]
}

// Descriptions returns the description of every entry in order.
func (h *History) Descriptions() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Description
	}
	return out
}

// Restore rebuilds the live store and registry from the entry. Every
// snapshot shape is recreated under a fresh handle (handle identity does
// not survive a restore) and layer references are remapped against the
// new handles; references to shapes missing from the snapshot are
// dropped. The entry itself is copied from, never aliased, so a later
// live mutation cannot corrupt it.
func Restore(e *Entry, store *Store, reg *Registry) {
	store.Clear()
	remap := make(map[Handle]Handle, len(e.shapes))
	for old, s := range e.shapes {
		remap[old] = store.adopt(s)
	}

	layers := make([]*Layer, 0, len(e.layers))
	for _, l := range e.layers {
		nl := &Layer{Name: l.Name, Visible: l.Visible, Locked: l.Locked}
		for _, it := range l.Items {
			if nh, ok := remap[it.Handle]; ok {
				nl.Items = append(nl.Items, LayerItem{Handle: nh, Kind: it.Kind})
			}
		}
		layers = append(layers, nl)
	}
	reg.replace(layers)
}
