package rtree

import "github.com/fathomtree/rtree/geo"

// splitNode implements Guttman's LinearSplit: n holds M entries and is full;
// extra is the (M+1)th entry that overflowed it. n is rewritten in place to
// hold one resulting group and the other group is returned as a new sibling
// node with the same height as n. Both n and the sibling end up with at
// least m entries.
func splitNode(n *node, extra entry, m int) *node {
	M := len(n.entries)
	pool := make([]entry, M+1)
	copy(pool, n.entries)
	pool[M] = extra

	width := poolWidth(pool)
	lowIdx, highIdx := linearPickSeeds(pool, width, M)

	groupA := []entry{pool[lowIdx]}
	groupB := []entry{pool[highIdx]}

	sib := &node{height: n.height, parent: n.parent}

	// LS2/LS3: walk the rest of the pool in slot order (the order the entries
	// already had, plus the overflow entry last) assigning each to whichever
	// group needs it -- forced if the other group would otherwise starve
	// below m, else whichever group enlarges least, ties broken by smaller
	// current volume and then by group size.
	for i := range pool {
		if i == lowIdx || i == highIdx {
			continue
		}
		e := pool[i]
		remaining := (M + 1) - (len(groupA) + len(groupB))
		switch {
		case remaining == m-len(groupA):
			groupA = append(groupA, e)
		case remaining == m-len(groupB):
			groupB = append(groupB, e)
		default:
			groupA, groupB = assign(groupA, groupB, e)
		}
	}

	n.entries = groupA
	sib.entries = groupB
	n.adopt()
	sib.adopt()
	return sib
}

// assign places e into whichever of groupA/groupB would enlarge least,
// breaking ties by smaller current volume and then by smaller group size.
func assign(groupA, groupB []entry, e entry) ([]entry, []entry) {
	volA, err := geo.Volume(groupRect(groupA))
	if err != nil {
		onFire(err.Error())
	}
	volB, err := geo.Volume(groupRect(groupB))
	if err != nil {
		onFire(err.Error())
	}
	incA, err := geo.Enlargement(groupRect(groupA), e.rect)
	if err != nil {
		onFire(err.Error())
	}
	incB, err := geo.Enlargement(groupRect(groupB), e.rect)
	if err != nil {
		onFire(err.Error())
	}

	switch {
	case incA < incB || (incA == incB && volA < volB):
		return append(groupA, e), groupB
	case incA > incB || (incA == incB && volA > volB):
		return groupA, append(groupB, e)
	case len(groupA) < len(groupB):
		return append(groupA, e), groupB
	default:
		return groupA, append(groupB, e)
	}
}

func groupRect(group []entry) geo.Rect {
	rects := make([]geo.Rect, len(group))
	for i, e := range group {
		rects[i] = e.rect
	}
	return geo.MBR(rects...)
}

func poolWidth(pool []entry) []float64 {
	width := make([]float64, geo.Dims)
	mbr := groupRect(pool)
	for d := 0; d < geo.Dims; d++ {
		width[d] = float64(mbr.Hi(d)) - float64(mbr.Lo(d))
	}
	return width
}

// linearPickSeeds finds the pair of entries that, for some dimension, are
// furthest apart relative to that dimension's width. Seed search only
// considers the original M entries (indices 0..M-1 of pool), matching the
// source's LinearPickSeeds, which never picks the overflow entry itself as
// a seed -- it is always placed later by the regular assignment rule.
func linearPickSeeds(pool []entry, width []float64, M int) (low, high int) {
	low, high = 0, 1
	best := -1.0
	bestLow, bestHigh := low, high

	for j := 0; j < geo.Dims; j++ {
		for i := 0; i < M; i++ {
			if pool[i].rect.Lo(j) > pool[low].rect.Lo(j) && i != high {
				low = i
			}
			if pool[i].rect.Hi(j) < pool[high].rect.Hi(j) && i != low {
				high = i
			}
		}
		separation := (float64(pool[low].rect.Lo(j)) - float64(pool[high].rect.Hi(j))) / width[j]
		if separation > best {
			bestLow, bestHigh = low, high
			best = separation
		}
	}

	if bestLow == bestHigh {
		onFire("LinearPickSeeds could not find two distinct seeds")
	}
	return bestLow, bestHigh
}
