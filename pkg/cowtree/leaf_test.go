package cowtree

import "testing"

func TestLeafInsertAndSearch(t *testing.T) {
	var leaf leafNode[int, string]

	out := leaf.insert(5, "five", intCompare)
	if out.kind != insUpdateLeft {
		t.Fatalf("first insert into an empty leaf should report UpdateLeft, got kind=%d", out.kind)
	}

	out = leaf.insert(3, "three", intCompare)
	if out.kind != insInserted {
		t.Fatalf("inserting below the current max should report Inserted, got kind=%d", out.kind)
	}

	out = leaf.insert(5, "FIVE", intCompare)
	if out.kind != insUpdated {
		t.Fatalf("re-inserting an existing key should report Updated, got kind=%d", out.kind)
	}
	if found, i := leaf.search(5, intCompare); !found || leaf.values[i] != "FIVE" {
		t.Fatalf("search(5) = %v, %d; value not overwritten", found, i)
	}

	if found, _ := leaf.search(99, intCompare); found {
		t.Fatalf("search(99) reported found on an absent key")
	}
}

func TestLeafSplitsWhenFull(t *testing.T) {
	var leaf leafNode[int, int]
	for i := 0; i < LeafCap; i++ {
		out := leaf.insert(i, i, intCompare)
		if out.kind == insSplit {
			t.Fatalf("leaf reported Split before reaching capacity, at i=%d", i)
		}
	}
	out := leaf.insert(LeafCap, LeafCap, intCompare)
	if out.kind != insSplit {
		t.Fatalf("full leaf should signal Split, got kind=%d", out.kind)
	}
	if leaf.used != LeafCap {
		t.Fatalf("a Split signal must leave the leaf untouched, used=%d", leaf.used)
	}
}

func TestLeafSplit(t *testing.T) {
	var leaf leafNode[int, int]
	for i := 0; i < LeafCap; i++ {
		leaf.insert(i, i, intCompare)
	}
	right, sep := leaf.split()
	if sep != leaf.maxKey() {
		t.Fatalf("split separator = %d, want left's new max key %d", sep, leaf.maxKey())
	}
	if leaf.used+right.used != LeafCap {
		t.Fatalf("split lost entries: left=%d right=%d want total %d", leaf.used, right.used, LeafCap)
	}
	if leaf.maxKey() >= right.keys[0] {
		t.Fatalf("left half's max (%d) should be less than right half's min (%d)", leaf.maxKey(), right.keys[0])
	}
}

func TestLeafRemoveSignalsRepairOnlyAtTail(t *testing.T) {
	var leaf leafNode[int, int]
	for _, k := range []int{1, 2, 3} {
		leaf.insert(k, k, intCompare)
	}

	_, hasRepair, v, found, _ := leaf.remove(2, intCompare)
	if !found || v != 2 {
		t.Fatalf("remove(2) = %v, %d; want true, 2", found, v)
	}
	if hasRepair {
		t.Fatalf("removing a non-tail entry should not signal a repair key")
	}

	repairKey, hasRepair, v, found, _ := leaf.remove(3, intCompare)
	if !found || v != 3 {
		t.Fatalf("remove(3) = %v, %d; want true, 3", found, v)
	}
	if !hasRepair || repairKey != 1 {
		t.Fatalf("removing the last entry should repair to the new max (1), got hasRepair=%v repairKey=%d", hasRepair, repairKey)
	}
}

func TestLeafRotateAndMerge(t *testing.T) {
	var left, right leafNode[int, int]
	// 15 + 16 entries: each rotate below finds a donor above half
	// capacity, and the final merge still fits in one leaf.
	for i := 0; i < LeafCap/2; i++ {
		left.insert(i, i, intCompare)
	}
	for i := 1000; i < 1000+LeafCap/2+1; i++ {
		right.insert(i, i, intCompare)
	}

	leftUsed, rightUsed := left.used, right.used
	if !left.rotateLeft(&right) {
		t.Fatalf("rotateLeft should succeed when donor has spare capacity")
	}
	if left.used != leftUsed+1 || right.used != rightUsed-1 {
		t.Fatalf("rotateLeft counts: left=%d (want %d) right=%d (want %d)", left.used, leftUsed+1, right.used, rightUsed-1)
	}

	leftUsed, rightUsed = left.used, right.used
	if !right.rotateRight(&left) {
		t.Fatalf("rotateRight should succeed when donor has spare capacity")
	}
	if right.used != rightUsed+1 || left.used != leftUsed-1 {
		t.Fatalf("rotateRight counts: right=%d (want %d) left=%d (want %d)", right.used, rightUsed+1, left.used, leftUsed-1)
	}

	total := left.used + right.used
	left.merge(&right)
	if left.used != total {
		t.Fatalf("merge lost entries: left.used=%d, want %d", left.used, total)
	}
}
