package rtree

import "github.com/fathomtree/rtree/geo"

// Select returns the entries whose rectangle overlaps query. wantList and
// wantCount independently control which of the two results are actually
// built; at least one must be true. The returned list, when requested, is
// freshly allocated and owned by the caller.
func (t *RTree) Select(query geo.Rect, wantList, wantCount bool) (list *EntryNode, count int, err error) {
	if !wantList && !wantCount {
		return nil, 0, ErrInvalidArgument
	}
	if err := t.checkUsable(); err != nil {
		return nil, 0, err
	}
	defer t.guard(&err)

	search(t.root, query, func(e entry) {
		if wantList {
			list = push(list, e.rect, e.payload)
		}
		if wantCount {
			count++
		}
	})
	return list, count, nil
}

// search walks subtrees whose covering rectangle overlaps query, calling hit
// for every leaf entry that itself overlaps query.
func search(n *node, query geo.Rect, hit func(entry)) {
	if n.isLeaf() {
		for _, e := range n.entries {
			if geo.Overlap(e.rect, query) {
				hit(e)
			}
		}
		return
	}
	for i := range n.entries {
		if geo.Overlap(n.entries[i].rect, query) {
			search(n.entries[i].child, query, hit)
		}
	}
}

// UpdateTuple replaces the payload of the entry matching (r, payload) with
// newPayload, leaving the tree's shape untouched. Returns ErrNotFound if no
// such entry exists.
func (t *RTree) UpdateTuple(r geo.Rect, payload, newPayload interface{}) (err error) {
	if err := t.checkUsable(); err != nil {
		return err
	}
	defer t.guard(&err)

	leaf, idx, found := findLeaf(t.root, r, payload)
	if !found {
		return ErrNotFound
	}
	leaf.entries[idx].payload = newPayload
	return nil
}

// UpdateDimension changes the rectangle of the entry matching (r, payload)
// to newRect. If newRect still fits within the containing leaf's covering
// rectangle the entry is rewritten in place; otherwise the entry is deleted
// and re-inserted at newRect, letting the tree rebalance around it.
//
// The Within check compares newRect against the leaf's covering rectangle,
// not the entry's own old rectangle -- a shrinking rectangle that still fits
// inside the leaf's MBR skips rebalancing even though its own bounds moved.
func (t *RTree) UpdateDimension(r geo.Rect, payload interface{}, newRect geo.Rect) (err error) {
	if err := t.checkUsable(); err != nil {
		return err
	}
	defer t.guard(&err)

	leaf, idx, found := findLeaf(t.root, r, payload)
	if !found {
		return ErrNotFound
	}

	if geo.Within(newRect, leaf.rect()) {
		leaf.entries[idx].rect = newRect
		return nil
	}

	leaf.entries = append(leaf.entries[:idx], leaf.entries[idx+1:]...)
	root, orphans := condenseTree(leaf, t.m)
	t.root = root
	for _, o := range orphans {
		t.insertEntry(o.e, o.level)
	}
	if len(t.root.entries) == 1 && !t.root.isLeaf() {
		t.root = t.root.entries[0].child
		t.root.parent = nil
	}
	t.insertEntry(entry{rect: newRect, payload: payload}, 0)
	return nil
}
