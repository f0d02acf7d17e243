package rtree

import "github.com/fathomtree/rtree/geo"

// chooseLeaf descends from root to the node at the given target level,
// at each branch picking the child whose covering rectangle needs the
// smallest volume enlargement to also cover r, breaking ties by smaller
// current volume. level 0 means the leaf level; a positive level is used
// when re-inserting an orphaned subtree recovered by CondenseTree.
func chooseLeaf(root *node, level int, r geo.Rect) *node {
	n := root
	for n.height > level {
		n = bestChild(n, r).child
	}
	return n
}

// bestChild picks the entry of a branch node that would need the least
// volume enlargement to also cover r, tie-broken by smaller current volume.
func bestChild(n *node, r geo.Rect) *entry {
	if len(n.entries) == 0 {
		onFire("branch node has no children to choose from")
	}
	best := &n.entries[0]
	bestVolume, err := geo.Volume(best.rect)
	if err != nil {
		onFire(err.Error())
	}
	bestIncrease, err := geo.Enlargement(best.rect, r)
	if err != nil {
		onFire(err.Error())
	}

	for i := 1; i < len(n.entries); i++ {
		e := &n.entries[i]
		vol, err := geo.Volume(e.rect)
		if err != nil {
			onFire(err.Error())
		}
		increase, err := geo.Enlargement(e.rect, r)
		if err != nil {
			onFire(err.Error())
		}
		if increase < bestIncrease || (increase == bestIncrease && vol < bestVolume) {
			best = e
			bestIncrease = increase
			bestVolume = vol
		}
	}
	return best
}
