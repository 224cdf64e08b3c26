package sketch

// LayerItem is a back-reference from a layer to a shape. Layers never
// own geometry; they order and gate handles.
type LayerItem struct {
	Handle Handle
	Kind   Kind
}

// Layer is an ordered group of shape references with visibility and lock
// flags. Edits targeting a locked or hidden layer are refused at the
// interaction boundary.
type Layer struct {
	Name    string
	Visible bool
	Locked  bool
	Items   []LayerItem
}

// NewLayer creates a visible, unlocked layer.
func NewLayer(name string) *Layer {
	return &Layer{Name: name, Visible: true}
}

// AddItem appends a shape reference to the layer.
func (l *Layer) AddItem(h Handle, kind Kind) {
	l.Items = append(l.Items, LayerItem{Handle: h, Kind: kind})
}

// RemoveItem deletes the reference to h, if present.
func (l *Layer) RemoveItem(h Handle) {
	out := l.Items[:0]
	for _, it := range l.Items {
		if it.Handle != h {
			out = append(out, it)
		}
	}
	l.Items = out
}

// Clone deep-copies the layer and its item slice.
func (l *Layer) Clone() *Layer {
	out := &Layer{Name: l.Name, Visible: l.Visible, Locked: l.Locked}
	if l.Items != nil {
		out.Items = append([]LayerItem(nil), l.Items...)
	}
	return out
}

// Registry is the ordered set of layers, front (index 0) on top.
type Registry struct {
	layers []*Layer
}

// NewRegistry creates an empty layer registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of layers.
func (r *Registry) Len() int { return len(r.layers) }

// Layers returns the live layer slice, topmost first. Callers treat it
// as read-only; mutations go through the registry.
func (r *Registry) Layers() []*Layer { return r.layers }

// At returns the layer at index i.
func (r *Registry) At(i int) (*Layer, error) {
	if i < 0 || i >= len(r.layers) {
		return nil, ErrLayerRange
	}
	return r.layers[i], nil
}

// Add inserts a new layer on top and returns it.
func (r *Registry) Add(name string) *Layer {
	l := NewLayer(name)
	r.layers = append([]*Layer{l}, r.layers...)
	return l
}

// Delete removes the layer at index i and returns the handles it
// referenced, so the caller can erase the shapes from the store.
func (r *Registry) Delete(i int) ([]Handle, error) {
	l, err := r.At(i)
	if err != nil {
		return nil, err
	}
	handles := make([]Handle, 0, len(l.Items))
	for _, it := range l.Items {
		handles = append(handles, it.Handle)
	}
	r.layers = append(r.layers[:i], r.layers[i+1:]...)
	return handles, nil
}

// MoveUp swaps the layer at i with the one above it. The topmost layer
// refuses with ErrLayerRange.
func (r *Registry) MoveUp(i int) error {
	if i <= 0 || i >= len(r.layers) {
		return ErrLayerRange
	}
	r.layers[i-1], r.layers[i] = r.layers[i], r.layers[i-1]
	return nil
}

// MoveDown swaps the layer at i with the one below it.
func (r *Registry) MoveDown(i int) error {
	if i < 0 || i >= len(r.layers)-1 {
		return ErrLayerRange
	}
	r.layers[i], r.layers[i+1] = r.layers[i+1], r.layers[i]
	return nil
}

// ToggleVisible flips the visibility flag of the layer at i.
func (r *Registry) ToggleVisible(i int) error {
	l, err := r.At(i)
	if err != nil {
		return err
	}
	l.Visible = !l.Visible
	return nil
}

// SetLocked sets the lock flag of the layer at i.
func (r *Registry) SetLocked(i int, locked bool) error {
	l, err := r.At(i)
	if err != nil {
		return err
	}
	l.Locked = locked
	return nil
}

// LayerOf returns the layer referencing h, or nil.
func (r *Registry) LayerOf(h Handle) *Layer {
	for _, l := range r.layers {
		for _, it := range l.Items {
			if it.Handle == h {
				return l
			}
		}
	}
	return nil
}

// Clone deep-copies every layer, topmost first.
func (r *Registry) Clone() []*Layer {
	out := make([]*Layer, len(r.layers))
	for i, l := range r.layers {
		out[i] = l.Clone()
	}
	return out
}

// replace swaps the registry contents for the given layers. Restore uses
// it after remapping snapshot handles.
func (r *Registry) replace(layers []*Layer) {
	r.layers = layers
}
