package cowtree

// linkKind tags what a link points at, the same three-way variant the
// original Rust Node<K,V> enum (Empty/Internal/Leaf) models with a sum
// type. Go has no sum types, so link plays the role banks-go-immutable-
// radix's nodeHeader{typ uint8, ref unsafe.Pointer} plays for its ART
// nodes, but keeps the two possible cell types as typed fields instead
// of an unsafe.Pointer cast.
type linkKind uint8

const (
	linkEmpty linkKind = iota
	linkLeaf
	linkInternal
)

// link is a tagged reference to a child subtree: either nothing, a
// shared leaf cell, or a shared internal-node cell. Values are small and
// passed by value throughout; only one of leaf/internal is non-nil at a
// time, selected by kind.
type link[K any, V any] struct {
	kind     linkKind
	leaf     *sharedCell[leafNode[K, V]]
	internal *sharedCell[internalNode[K, V]]
}

func leafLink[K any, V any](c *sharedCell[leafNode[K, V]]) link[K, V] {
	return link[K, V]{kind: linkLeaf, leaf: c}
}

func internalLink[K any, V any](c *sharedCell[internalNode[K, V]]) link[K, V] {
	return link[K, V]{kind: linkInternal, internal: c}
}

func (l link[K, V]) retain() link[K, V] {
	switch l.kind {
	case linkLeaf:
		return leafLink[K, V](l.leaf.retain())
	case linkInternal:
		return internalLink[K, V](l.internal.retain())
	default:
		return l
	}
}

func (l link[K, V]) release() {
	switch l.kind {
	case linkLeaf:
		l.leaf.release()
	case linkInternal:
		l.internal.release()
	}
}

// makeUnique returns a link whose target cell is privately owned by the
// caller, cloning the payload into a fresh cell if it was shared. This
// is the Go shape of spec §4.5's CoW descent discipline: called on every
// child link a parent is about to mutate, whether that child was
// reached by descent or pulled in as a rotate/merge sibling.
func (l link[K, V]) makeUnique() link[K, V] {
	switch l.kind {
	case linkLeaf:
		if l.leaf.unique() {
			return l
		}
		fresh := newSharedCell(l.leaf.get().clone())
		l.leaf.release()
		return leafLink[K, V](fresh)
	case linkInternal:
		if l.internal.unique() {
			return l
		}
		fresh := newSharedCell(l.internal.get().clone())
		l.internal.release()
		return internalLink[K, V](fresh)
	default:
		return l
	}
}

func (l link[K, V]) length() int {
	switch l.kind {
	case linkLeaf:
		return l.leaf.get().used
	case linkInternal:
		return l.internal.get().totalLen
	default:
		return 0
	}
}

func (l link[K, V]) maxKey() K {
	switch l.kind {
	case linkLeaf:
		return l.leaf.get().maxKey()
	case linkInternal:
		return l.internal.get().maxKey()
	default:
		panic("cowtree: maxKey of an empty link")
	}
}

func (l link[K, V]) insert(key K, value V, cmp Compare[K]) insertOutcome[K, V] {
	switch l.kind {
	case linkLeaf:
		return l.leaf.get().insert(key, value, cmp)
	case linkInternal:
		return l.internal.get().insert(key, value, cmp)
	default:
		panic("cowtree: insert into an empty link")
	}
}

func (l link[K, V]) remove(key K, cmp Compare[K]) (repairKey K, hasRepair bool, value V, found bool, underflow bool) {
	switch l.kind {
	case linkLeaf:
		return l.leaf.get().remove(key, cmp)
	case linkInternal:
		return l.internal.get().remove(key, cmp)
	default:
		return repairKey, false, value, false, false
	}
}

// split breaks l's target in half, returning a freshly-allocated right
// sibling link plus the separator key. l must already be uniquely owned.
func (l link[K, V]) split() (link[K, V], K) {
	switch l.kind {
	case linkLeaf:
		right, key := l.leaf.get().split()
		return leafLink[K, V](newSharedCell(right)), key
	case linkInternal:
		right, key := l.internal.get().split()
		return internalLink[K, V](newSharedCell(right)), key
	default:
		panic("cowtree: split of an empty link")
	}
}

// rotateLeftLink moves one entry from donor's head onto sink's tail.
// sink and donor must be the same kind and already uniquely owned.
func rotateLeftLink[K any, V any](sink, donor link[K, V]) bool {
	switch sink.kind {
	case linkLeaf:
		return sink.leaf.get().rotateLeft(donor.leaf.get())
	case linkInternal:
		return sink.internal.get().rotateLeft(donor.internal.get())
	default:
		return false
	}
}

// rotateRightLink moves one entry from donor's tail onto sink's head.
// sink and donor must be the same kind and already uniquely owned.
func rotateRightLink[K any, V any](sink, donor link[K, V]) bool {
	switch sink.kind {
	case linkLeaf:
		return sink.leaf.get().rotateRight(donor.leaf.get())
	case linkInternal:
		return sink.internal.get().rotateRight(donor.internal.get())
	default:
		return false
	}
}

// mergeLink absorbs src's entries into sink. Both must be the same kind
// and already uniquely owned.
func mergeLink[K any, V any](sink, src link[K, V]) {
	switch sink.kind {
	case linkLeaf:
		sink.leaf.get().merge(src.leaf.get())
	case linkInternal:
		sink.internal.get().mergeWith(src.internal.get())
	}
}
