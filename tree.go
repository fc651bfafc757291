package easel

import "log/slog"

// Layer returns the layer with the given ID, or nil if the document does
// not contain it.
func (d *Document) Layer(id LayerID) Layer {
	return d.layers[id]
}

// ParentOf returns the group that directly contains id, or nil for the
// root group and for unknown IDs.
func (d *Document) ParentOf(id LayerID) *GroupLayer {
	l := d.layers[id]
	if l == nil {
		return nil
	}
	parent, _ := d.layers[l.Base().Parent].(*GroupLayer)
	return parent
}

// Flatten returns the layers of the document in pre-order depth-first
// sequence, following each group's bottom-to-top child order. When
// includeGroups is false only raster and text layers are returned, which
// is the iteration order exporters and hit-testing use.
func (d *Document) Flatten(includeGroups bool) []Layer {
	var out []Layer
	d.walk(d.root, func(l Layer) {
		if l.Kind() == KindGroup && !includeGroups {
			return
		}
		out = append(out, l)
	})
	return out
}

func (d *Document) walk(id LayerID, visit func(Layer)) {
	l := d.layers[id]
	if l == nil {
		return
	}
	visit(l)
	if g, ok := l.(*GroupLayer); ok {
		for _, child := range g.Children {
			d.walk(child, visit)
		}
	}
}

// InsertLayer registers layer in the document and splices it into
// parentID's children at index (clamped to the valid range). Index 0 is
// the bottom of the stack. Returns false, without mutating anything, when
// parentID is not a group in this document or the layer ID already exists.
func (d *Document) InsertLayer(parentID LayerID, index int, layer Layer) bool {
	return d.insertSubtree(parentID, index, layer, nil)
}

// insertSubtree splices layer under parentID and registers it plus the
// given detached descendants (captured by a prior RemoveLayer) in the
// arena.
func (d *Document) insertSubtree(parentID LayerID, index int, layer Layer, subtree []Layer) bool {
	parent, ok := d.layers[parentID].(*GroupLayer)
	if !ok {
		Logger().Warn("insert into missing group", slog.String("parent", string(parentID)))
		return false
	}
	id := layer.Base().ID
	if _, exists := d.layers[id]; exists {
		return false
	}

	if index < 0 {
		index = 0
	}
	if index > len(parent.Children) {
		index = len(parent.Children)
	}
	parent.Children = append(parent.Children, NoLayer)
	copy(parent.Children[index+1:], parent.Children[index:])
	parent.Children[index] = id

	d.layers[id] = layer
	layer.Base().Parent = parentID
	for _, desc := range subtree {
		d.layers[desc.Base().ID] = desc
	}
	return true
}

// RemoveLayer detaches id from its parent and removes it and all of its
// descendants from the document. The returned subtree holds the detached
// descendant objects (not including the removed layer itself), which a
// remove command keeps alive for undo. Returns nil, nil, false for the
// root group, unknown IDs, and orphaned layers.
func (d *Document) RemoveLayer(id LayerID) (removed Layer, subtree []Layer, ok bool) {
	l := d.layers[id]
	if l == nil || id == d.root {
		return nil, nil, false
	}
	parent := d.ParentOf(id)
	if parent == nil {
		// Orphaned layer: a programming error upstream. Refuse to mutate.
		Logger().Warn("remove of orphaned layer", slog.String("layer", string(id)))
		return nil, nil, false
	}

	idx := indexOf(parent.Children, id)
	if idx < 0 {
		return nil, nil, false
	}
	parent.Children = append(parent.Children[:idx], parent.Children[idx+1:]...)

	if g, isGroup := l.(*GroupLayer); isGroup {
		for _, child := range g.Children {
			d.walk(child, func(desc Layer) {
				subtree = append(subtree, desc)
			})
		}
	}
	delete(d.layers, id)
	for _, desc := range subtree {
		delete(d.layers, desc.Base().ID)
	}

	if d.SelectedLayer == id {
		d.SelectedLayer = NoLayer
	}
	return l, subtree, true
}

// MoveLayer moves id to newParent at newIndex, updating the layer's
// Parent atomically with both children lists. The index is interpreted
// against the child list after removal, clamped to the valid range.
// Returns false, without mutating anything, for the root group, unknown
// IDs, a non-group target, or a move into the layer's own subtree.
func (d *Document) MoveLayer(id, newParent LayerID, newIndex int) bool {
	l := d.layers[id]
	if l == nil || id == d.root {
		return false
	}
	target, ok := d.layers[newParent].(*GroupLayer)
	if !ok {
		return false
	}
	if d.isAncestorOrSelf(id, newParent) {
		// Reparenting into the moved subtree would detach it from the root.
		return false
	}
	oldParent := d.ParentOf(id)
	if oldParent == nil {
		return false
	}

	idx := indexOf(oldParent.Children, id)
	if idx < 0 {
		return false
	}
	oldParent.Children = append(oldParent.Children[:idx], oldParent.Children[idx+1:]...)

	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(target.Children) {
		newIndex = len(target.Children)
	}
	target.Children = append(target.Children, NoLayer)
	copy(target.Children[newIndex+1:], target.Children[newIndex:])
	target.Children[newIndex] = id

	l.Base().Parent = newParent
	return true
}

// LayerIndex returns the position of id within its parent's children,
// or -1 when the layer has no parent.
func (d *Document) LayerIndex(id LayerID) int {
	parent := d.ParentOf(id)
	if parent == nil {
		return -1
	}
	return indexOf(parent.Children, id)
}

// isAncestorOrSelf reports whether candidate is id itself or lies inside
// id's subtree.
func (d *Document) isAncestorOrSelf(id, candidate LayerID) bool {
	for candidate != NoLayer {
		if candidate == id {
			return true
		}
		l := d.layers[candidate]
		if l == nil {
			return false
		}
		candidate = l.Base().Parent
	}
	return false
}

func indexOf(ids []LayerID, id LayerID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
