package rtree

// bulkLoad packs a singly-linked entry list into a height-balanced tree
// bottom-up: leaves of exactly M entries (the last may be short), then
// repeated batches of up to M siblings per branch until exactly one root
// remains. A nil or empty list produces an empty leaf root. Per-level
// utilisation is min(M, remainder), not load-factor tuned.
func bulkLoad(list *EntryNode, m, M int) *node {
	var leaves []*node
	var cur *node
	for e := list; e != nil; e = e.Next {
		if cur == nil || len(cur.entries) == M {
			cur = newLeaf()
			leaves = append(leaves, cur)
		}
		cur.entries = append(cur.entries, entry{rect: e.Rect, payload: e.Payload})
	}
	if len(leaves) == 0 {
		return newLeaf()
	}

	level := leaves
	height := 0
	for len(level) > 1 {
		var next []*node
		for i := 0; i < len(level); i += M {
			end := i + M
			if end > len(level) {
				end = len(level)
			}
			batch := level[i:end]
			branch := newBranch(height + 1)
			branch.entries = make([]entry, len(batch))
			for j, child := range batch {
				branch.entries[j] = entry{rect: child.rect(), child: child}
			}
			branch.adopt()
			next = append(next, branch)
		}
		level = next
		height++
	}
	return level[0]
}
