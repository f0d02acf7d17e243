package rtree

import "github.com/fathomtree/rtree/geo"

// entry is either a leaf record (rect, payload) or a branch record
// (rect, child). Exactly one of child/payload is set, mirroring the
// teacher's entry{mbr, child, mmsi} shape generalized to an opaque payload.
type entry struct {
	rect    geo.Rect
	child   *node
	payload interface{}
}

// node is a single R-tree node. height is 0 for a leaf and increases by one
// per level towards the root; this doubles as the node-variant tag spec.md
// asks for instead of inspecting which sibling fields are nil.
type node struct {
	parent  *node
	entries []entry
	height  int
}

func newLeaf() *node {
	return &node{height: 0}
}

func newBranch(height int) *node {
	return &node{height: height}
}

func (n *node) isLeaf() bool { return n.height == 0 }

// rect returns the node's covering rectangle, the MBR of its entries.
// Panics if n has no entries -- callers never compute this for an empty node.
func (n *node) rect() geo.Rect {
	rects := make([]geo.Rect, len(n.entries))
	for i, e := range n.entries {
		rects[i] = e.rect
	}
	return geo.MBR(rects...)
}

// adopt fixes every child's parent pointer to point back at n.
// Needed whenever entries move between nodes (split, condense, bulk-load)
// so invariant #6 (parent back-reference correctness) holds.
func (n *node) adopt() {
	if n.isLeaf() {
		return
	}
	for i := range n.entries {
		n.entries[i].child.parent = n
	}
}

// indexInParent returns the slot p.entries[i] such that entries[i].child == n.
func (n *node) indexInParent() (int, bool) {
	p := n.parent
	if p == nil {
		return 0, false
	}
	for i := range p.entries {
		if p.entries[i].child == n {
			return i, true
		}
	}
	return 0, false
}

// refreshParentRect recomputes n's covering rectangle and writes it into
// the parent entry that points at n, the Go analogue of the source's
// "recompute N.I as the MBR of its occupied children" step in AdjustTree
// and CondenseTree. A no-op for the root, which has no parent entry to
// update -- callers that need the root's own rectangle use n.rect directly.
func (n *node) refreshParentRect() {
	i, ok := n.indexInParent()
	if !ok {
		return
	}
	n.parent.entries[i].rect = n.rect()
}
