package rtree

import "github.com/fathomtree/rtree/geo"

// Insert adds a (rectangle, payload) pair to the tree.
func (t *RTree) Insert(r geo.Rect, payload interface{}) (err error) {
	if err := t.checkUsable(); err != nil {
		return err
	}
	if payload == nil {
		return ErrInvalidArgument
	}
	defer t.guard(&err)
	t.insertEntry(entry{rect: r, payload: payload}, 0)
	t.size++
	return nil
}

// insertEntry adds e to the node chooseLeaf picks at the given level (0 for
// an ordinary leaf-level insert; a positive level when re-inserting an
// orphaned subtree recovered by CondenseTree), splitting and
// growing the tree as needed. It implements Guttman's Insert, I2 through I4.
func (t *RTree) insertEntry(e entry, level int) {
	n := chooseLeaf(t.root, level, e.rect)
	if e.child != nil {
		e.child.parent = n
	}

	split := addEntry(n, e, t.m, t.M)
	root, overflow := adjustTree(n, split, t.m, t.M)

	if overflow == nil {
		t.root = root
		return
	}

	newRoot := newBranch(root.height + 1)
	newRoot.entries = []entry{
		{rect: root.rect(), child: root},
		{rect: overflow.rect(), child: overflow},
	}
	newRoot.adopt()
	t.root = newRoot
}

// addEntry appends e to n's entries, splitting n if that overflows M. It
// returns the new sibling node produced by a split, or nil if none occurred.
func addEntry(n *node, e entry, m, M int) *node {
	n.entries = append(n.entries, e)
	if len(n.entries) <= M {
		return nil
	}
	overflow := n.entries[len(n.entries)-1]
	n.entries = n.entries[:len(n.entries)-1]
	return splitNode(n, overflow, m)
}

// adjustTree walks from n up to the root, refreshing each ancestor's cached
// covering rectangle and, while split is non-nil, trying to house it as a
// sibling entry in the next ancestor up (splitting that ancestor in turn if
// it doesn't fit). It returns the root node and, if the root itself had to
// split, the resulting sibling -- the caller must then grow the tree by one
// level, matching Guttman's AdjustTree and Insert's I4.
func adjustTree(n *node, split *node, m, M int) (*node, *node) {
	for {
		p := n.parent
		if p == nil {
			return n, split
		}
		n.refreshParentRect()
		if split != nil {
			split.parent = p
			split = addEntry(p, entry{rect: split.rect(), child: split}, m, M)
		}
		n = p
	}
}
