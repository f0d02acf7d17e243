package rtree

import "github.com/fathomtree/rtree/geo"

// orphan is an entry removed from an underfull node during condenseTree,
// tagged with the height its eventual new home must have -- the height of
// the eliminated node itself, so its entries land back at the same level
// they were taken from (0 for a raw leaf entry).
type orphan struct {
	e     entry
	level int
}

// Delete removes the entry matching (r, payload) -- compared by rectangle
// equality and payload equality -- and rebalances the tree. Returns
// ErrNotFound if no such entry exists.
func (t *RTree) Delete(r geo.Rect, payload interface{}) (err error) {
	if err := t.checkUsable(); err != nil {
		return err
	}
	if payload == nil {
		return ErrInvalidArgument
	}
	defer t.guard(&err)

	leaf, idx, found := findLeaf(t.root, r, payload)
	if !found {
		return ErrNotFound
	}
	leaf.entries = append(leaf.entries[:idx], leaf.entries[idx+1:]...)

	root, orphans := condenseTree(leaf, t.m)
	t.root = root
	for _, o := range orphans {
		t.insertEntry(o.e, o.level)
	}

	// D4, shorten tree: a branch root with a single child is redundant.
	if len(t.root.entries) == 1 && !t.root.isLeaf() {
		t.root = t.root.entries[0].child
		t.root.parent = nil
	}
	t.size--
	return nil
}

// findLeaf searches for the leaf entry matching (r, payload), descending
// only into subtrees whose covering rectangle overlaps r.
func findLeaf(n *node, r geo.Rect, payload interface{}) (leaf *node, index int, found bool) {
	if n.isLeaf() {
		for i, e := range n.entries {
			if geo.Equal(e.rect, r) && e.payload == payload {
				return n, i, true
			}
		}
		return nil, 0, false
	}
	for i := range n.entries {
		if !geo.Overlap(n.entries[i].rect, r) {
			continue
		}
		if leaf, index, found := findLeaf(n.entries[i].child, r, payload); found {
			return leaf, index, found
		}
	}
	return nil, 0, false
}

// condenseTree walks from n up to the root. Any node left with fewer than m
// entries is removed from its parent entirely and its own entries are
// collected as orphans to be re-inserted at the appropriate level; any node
// that stays adequately full just has its cached covering rectangle
// refreshed in its parent. It returns the (unchanged identity) root and the
// orphans collected, highest level first: each eliminated node's batch is
// placed ahead of the batches collected below it.
func condenseTree(n *node, m int) (*node, []orphan) {
	var orphans []orphan
	for n.parent != nil {
		p := n.parent
		if len(n.entries) < m {
			level := n.height
			batch := make([]orphan, len(n.entries))
			for i, e := range n.entries {
				batch[i] = orphan{e: e, level: level}
			}
			idx, ok := n.indexInParent()
			if !ok {
				onFire("condenseTree: underfull node missing from its parent")
			}
			p.entries = append(p.entries[:idx], p.entries[idx+1:]...)
			orphans = append(batch, orphans...)
		} else {
			n.refreshParentRect()
		}
		n = p
	}
	return n, orphans
}
