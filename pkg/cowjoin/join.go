// Package cowjoin implements the streaming merge-join (two-finger)
// intersection iterators from the original Rust crate's src/cow/join.rs:
// map-map, set-set, and set-map. Each advances whichever side currently
// holds the smaller key and, on a match, emits once before advancing
// only the left-hand side, so a caller iterating the result sees every
// shared key exactly once per left-hand occurrence.
//
// All three constructors accept any ordered source satisfying the
// minimal Next-based shape cowtree.Iterator and cowset.Iterator already
// provide, so they compose directly with either package without an
// adapter type.
package cowjoin

import "github.com/benjamin-l-johnson/cowtree/pkg/cowtree"

// Compare reuses cowtree's three-way ordering so join code and the
// trees it walks always agree on what "smaller" means.
type Compare[K any] = cowtree.Compare[K]

type kvIter[K any, V any] interface {
	Next() (K, V, bool)
}

type kIter[K any] interface {
	Next() (K, bool)
}

// Maps streams the ascending intersection of two ordered key/value
// sources, yielding (key, valueFromA, valueFromB) for every key present
// in both.
type Maps[K any, A any, B any] struct {
	cmp     Compare[K]
	a       kvIter[K, A]
	b       kvIter[K, B]
	ka      K
	va      A
	oka     bool
	kb      K
	vb      B
	okb     bool
	started bool
}

// JoinMaps returns a Maps iterator over a and b, ordered by cmp.
func JoinMaps[K any, A any, B any](cmp Compare[K], a kvIter[K, A], b kvIter[K, B]) *Maps[K, A, B] {
	return &Maps[K, A, B]{cmp: cmp, a: a, b: b}
}

func (j *Maps[K, A, B]) advance() bool {
	if !j.started {
		j.started = true
		j.ka, j.va, j.oka = j.a.Next()
		j.kb, j.vb, j.okb = j.b.Next()
	}
	for j.oka && j.okb {
		switch c := j.cmp(j.ka, j.kb); {
		case c < 0:
			j.ka, j.va, j.oka = j.a.Next()
		case c > 0:
			j.kb, j.vb, j.okb = j.b.Next()
		default:
			return true
		}
	}
	return false
}

// Next returns the next matching (key, valueFromA, valueFromB) triple,
// or false once the intersection is exhausted.
func (j *Maps[K, A, B]) Next() (K, A, B, bool) {
	if !j.advance() {
		var zk K
		var za A
		var zb B
		return zk, za, zb, false
	}
	k, va, vb := j.ka, j.va, j.vb
	j.ka, j.va, j.oka = j.a.Next()
	return k, va, vb, true
}

// Sets streams the ascending intersection of two ordered key sources.
type Sets[K any] struct {
	cmp     Compare[K]
	a       kIter[K]
	b       kIter[K]
	ka      K
	oka     bool
	kb      K
	okb     bool
	started bool
}

// JoinSets returns a Sets iterator over a and b, ordered by cmp.
func JoinSets[K any](cmp Compare[K], a, b kIter[K]) *Sets[K] {
	return &Sets[K]{cmp: cmp, a: a, b: b}
}

func (j *Sets[K]) advance() bool {
	if !j.started {
		j.started = true
		j.ka, j.oka = j.a.Next()
		j.kb, j.okb = j.b.Next()
	}
	for j.oka && j.okb {
		switch c := j.cmp(j.ka, j.kb); {
		case c < 0:
			j.ka, j.oka = j.a.Next()
		case c > 0:
			j.kb, j.okb = j.b.Next()
		default:
			return true
		}
	}
	return false
}

// Next returns the next shared key, or false once the intersection is
// exhausted.
func (j *Sets[K]) Next() (K, bool) {
	if !j.advance() {
		var zk K
		return zk, false
	}
	k := j.ka
	j.ka, j.oka = j.a.Next()
	return k, true
}

// SetMap streams the ascending intersection of an ordered key-only
// source with an ordered key/value source, yielding (key, value) for
// every key present in both.
type SetMap[K any, V any] struct {
	cmp     Compare[K]
	set     kIter[K]
	m       kvIter[K, V]
	ks      K
	oks     bool
	km      K
	vm      V
	okm     bool
	started bool
}

// JoinSetMap returns a SetMap iterator over set and m, ordered by cmp.
func JoinSetMap[K any, V any](cmp Compare[K], set kIter[K], m kvIter[K, V]) *SetMap[K, V] {
	return &SetMap[K, V]{cmp: cmp, set: set, m: m}
}

func (j *SetMap[K, V]) advance() bool {
	if !j.started {
		j.started = true
		j.ks, j.oks = j.set.Next()
		j.km, j.vm, j.okm = j.m.Next()
	}
	for j.oks && j.okm {
		switch c := j.cmp(j.ks, j.km); {
		case c < 0:
			j.ks, j.oks = j.set.Next()
		case c > 0:
			j.km, j.vm, j.okm = j.m.Next()
		default:
			return true
		}
	}
	return false
}

// Next returns the next matching (key, value) pair, or false once the
// intersection is exhausted.
func (j *SetMap[K, V]) Next() (K, V, bool) {
	if !j.advance() {
		var zk K
		var zv V
		return zk, zv, false
	}
	k, v := j.ks, j.vm
	j.ks, j.oks = j.set.Next()
	return k, v, true
}
