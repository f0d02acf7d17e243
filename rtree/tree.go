// Package rtree implements a dynamic, in-memory spatial index based on
// Guttman's R-tree (1984): opaque payload handles keyed by n-dimensional
// axis-aligned bounding boxes, supporting insert, delete, payload/rectangle
// update, overlap search and bulk construction.
//
// The tree is not safe for concurrent use; callers that share a tree across
// goroutines must synchronize externally.
package rtree

import (
	"fmt"
	"unsafe"

	"github.com/fathomtree/rtree/geo"
	"github.com/fathomtree/rtree/logger"
)

// pageSize is the notional node size the fanout bound M is derived from,
// matching the source's page-driven constant (RTPS there).
const pageSize = 4096

// minEntries is the minimum number of children a non-root node may hold.
const minEntries = 2

// maxEntries is the default maximum number of children a node may hold,
// derived from pageSize the same way the source derives M from RTPS: a
// whole number of entries must fit in one notional page.
const maxEntries = pageSize / int(unsafe.Sizeof(entry{}))

// RTree is an R-tree index. The zero value is not usable; construct one
// with New.
type RTree struct {
	root     *node
	size     int
	m, M     int
	logger   *logger.Logger
	poisoned bool
}

// Option configures a tree at construction time.
type Option func(*RTree)

// WithLogger directs the tree's "rtree on fire" diagnostics to l instead of
// the package default.
func WithLogger(l *logger.Logger) Option {
	return func(t *RTree) { t.logger = l }
}

// WithFanout overrides the default minimum/maximum children per node.
// min must be at least 2 and max at least 2*min, the same constraint
// gortree's NewRTreeWithMinMax enforces.
func WithFanout(min, max int) Option {
	return func(t *RTree) {
		if err := validateFanout(min, max); err != nil {
			onFire(err.Error())
		}
		t.m, t.M = min, max
	}
}

func validateFanout(min, max int) error {
	if min < minEntries || max < 2*min {
		return fmt.Errorf("rtree: invalid fanout min=%d max=%d (need 2<=min and max>=2*min)", min, max)
	}
	return nil
}

func (t *RTree) log() *logger.Logger {
	if t.logger != nil {
		return t.logger
	}
	return logger.Default
}

// New creates a tree, optionally bulk-loading the given entry list (see
// EntryNode). A nil or empty list produces an empty tree, matching both the
// spec's New and the original RTreeNewIndex's empty-start behavior.
func New(list *EntryNode, opts ...Option) (tree *RTree, err error) {
	t := &RTree{m: minEntries, M: maxEntries}
	defer t.guard(&err)
	for _, opt := range opts {
		opt(t)
	}
	t.root = bulkLoad(list, t.m, t.M)
	t.size = countEntries(list)
	return t, nil
}

// Free releases the tree's nodes. Payload handles are never touched. Go's
// garbage collector does the actual reclamation; Free exists so the tree
// handle cannot be used again afterwards, matching the source's contract
// that a freed RTreePtr is set to NULL.
func (t *RTree) Free() {
	t.root = nil
	t.poisoned = true
}

// Size returns the number of (rectangle, payload) entries currently stored.
func (t *RTree) Size() int {
	return t.size
}

func (t *RTree) checkUsable() error {
	if t == nil || t.poisoned || t.root == nil {
		return fmt.Errorf("%w: tree is nil, freed or corrupted", ErrInvalidArgument)
	}
	return nil
}

// SelectDimensions returns the root's covering rectangle.
func (t *RTree) SelectDimensions() (geo.Rect, error) {
	if err := t.checkUsable(); err != nil {
		return geo.Rect{}, err
	}
	if len(t.root.entries) == 0 {
		return geo.Rect{}, nil
	}
	return t.root.rect(), nil
}
