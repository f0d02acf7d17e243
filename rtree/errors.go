package rtree

import "errors"

// ErrInvalidArgument is returned for nil/malformed arguments, or a Select
// call that asks for neither a list nor a count.
var ErrInvalidArgument = errors.New("rtree: invalid argument")

// ErrNotFound is returned by Delete, UpdateTuple and UpdateDimension when
// the (rectangle, payload) pair they were asked about isn't present.
var ErrNotFound = errors.New("rtree: entry not found")

// ErrCorrupted is returned once an internal consistency check has failed.
// The tree that returned it must not be used again.
var ErrCorrupted = errors.New("rtree: tree is corrupted (rtree on fire)")

// invariantError is panicked from deep inside the algorithms when a
// consistency check the algorithm itself relies on fails -- the Go
// equivalent of the source's "rtree on fire" fputs-and-return-false path.
// It never escapes the package: every exported entry point recovers it.
type invariantError struct {
	msg string
}

func (e *invariantError) Error() string { return "rtree on fire: " + e.msg }

func onFire(msg string) {
	panic(&invariantError{msg: msg})
}

// guard recovers an *invariantError, logs it, poisons the tree and turns
// it into ErrCorrupted. Any other panic is allowed to keep propagating.
func (t *RTree) guard(err *error) {
	r := recover()
	if r == nil {
		return
	}
	ie, ok := r.(*invariantError)
	if !ok {
		panic(r)
	}
	t.log().Error("%s", ie.Error())
	t.root = nil
	t.poisoned = true
	*err = ErrCorrupted
}
