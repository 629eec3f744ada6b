// Package cowset implements an ordered, copy-on-write set on top of
// cowtree.Map, exactly the way the original Rust crate built its
// BTreeSet<T> as a thin wrapper over BTreeMap<T, ()>: membership is
// presence of a key, and the unit value carries no information.
package cowset

import "github.com/benjamin-l-johnson/cowtree/pkg/cowtree"

type unit struct{}

// Set is an ordered, in-memory set backed by a copy-on-write B-tree.
// Clone is O(1), the same sharing discipline cowtree.Map documents.
type Set[T any] struct {
	m *cowtree.Map[T, unit]
}

// New returns an empty Set ordered by cmp.
func New[T any](cmp cowtree.Compare[T]) *Set[T] {
	return &Set[T]{m: cowtree.New[T, unit](cmp)}
}

// Len returns the number of elements in s.
func (s *Set[T]) Len() int {
	return s.m.Len()
}

// Contains reports whether v is a member of s.
func (s *Set[T]) Contains(v T) bool {
	return s.m.Contains(v)
}

// Insert adds v to s, returning true if it was not already present.
func (s *Set[T]) Insert(v T) bool {
	existed := s.m.Insert(v, unit{})
	return !existed
}

// Remove deletes v from s, returning true if it was present.
func (s *Set[T]) Remove(v T) bool {
	return s.m.Remove(v)
}

// Clear empties s in O(1), without disturbing any clone sharing its
// tree.
func (s *Set[T]) Clear() {
	s.m.Clear()
}

// Clone returns a second Set sharing s's current tree, an O(1)
// snapshot.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{m: s.m.Clone()}
}

// Iterator yields a Set's elements in ascending order.
type Iterator[T any] struct {
	inner *cowtree.Iterator[T, unit]
}

// Iter starts an ascending traversal of s.
func (s *Set[T]) Iter() *Iterator[T] {
	return &Iterator[T]{inner: s.m.Iter()}
}

// Next returns the next element, or false once exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	v, _, ok := it.inner.Next()
	return v, ok
}

// IsDisjoint reports whether s and other share no elements. It walks s
// in order and checks membership in other, the same linear `iter().all`
// form the original crate uses; cowjoin.Sets is the streaming
// alternative for callers iterating both sides anyway.
func (s *Set[T]) IsDisjoint(other *Set[T]) bool {
	it := s.Iter()
	for {
		v, ok := it.Next()
		if !ok {
			return true
		}
		if other.Contains(v) {
			return false
		}
	}
}

// IsSubset reports whether every element of s is also in other.
func (s *Set[T]) IsSubset(other *Set[T]) bool {
	it := s.Iter()
	for {
		v, ok := it.Next()
		if !ok {
			return true
		}
		if !other.Contains(v) {
			return false
		}
	}
}

// IsSuperset reports whether every element of other is also in s.
func (s *Set[T]) IsSuperset(other *Set[T]) bool {
	return other.IsSubset(s)
}
