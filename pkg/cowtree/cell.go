// Package cowtree implements an in-memory, ordered associative map
// organized as a B-tree whose nodes are shared between snapshots via
// copy-on-write. Cloning a Map is O(1): it just bumps reference counts
// on the root. A write privatizes only the nodes along its path,
// leaving every other snapshot's view of the tree untouched.
package cowtree

import "sync/atomic"

// sharedCell is the atomically reference-counted heap cell backing one
// CoW-shared node payload. It is the Go analogue of the teacher's atomic
// root pointer in pkg/cowbtree/cowbtree.go, scoped down to a single node
// instead of a whole tree: every link that points at a cell (a Map's
// root, or a child slot of an internal node) holds one retain() on it,
// and releasing drops that claim. A Clone retains only the root cell.
//
// Go's garbage collector owns the actual freeing of the payload once no
// *sharedCell reference remains reachable; the refcount here exists
// purely to answer "am I the sole owner of this node", the question
// make-unique needs before any in-place mutation.
type sharedCell[T any] struct {
	rc      atomic.Int32
	payload T
}

func newSharedCell[T any](payload T) *sharedCell[T] {
	c := &sharedCell[T]{payload: payload}
	c.rc.Store(1)
	return c
}

// get returns a pointer to the payload for in-place mutation. Callers
// must only mutate through get() after confirming unique() or after a
// makeUnique pass.
func (c *sharedCell[T]) get() *T {
	return &c.payload
}

// retain records an additional owner and returns c for chaining.
func (c *sharedCell[T]) retain() *sharedCell[T] {
	c.rc.Add(1)
	return c
}

// release drops one owner's claim on c.
func (c *sharedCell[T]) release() {
	c.rc.Add(-1)
}

// unique reports whether the calling owner is the only owner of c.
func (c *sharedCell[T]) unique() bool {
	return c.rc.Load() == 1
}
