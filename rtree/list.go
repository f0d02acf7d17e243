package rtree

import "github.com/fathomtree/rtree/geo"

// EntryNode is one link of a singly-linked entry list: the format New's
// initial load list and Select's result list both use, per spec.md §6.
type EntryNode struct {
	Next    *EntryNode
	Rect    geo.Rect
	Payload interface{}
}

// push prepends a new node, returning the new head -- the same growth
// direction the source's Search used for its hit list.
func push(head *EntryNode, rect geo.Rect, payload interface{}) *EntryNode {
	return &EntryNode{Next: head, Rect: rect, Payload: payload}
}

func countEntries(head *EntryNode) int {
	n := 0
	for ; head != nil; head = head.Next {
		n++
	}
	return n
}
