package btreeset

import "cmp"

// Tree is an in-memory, generic B-tree set: an ordered container of unique
// keys of type K, parameterised by a minimum degree t. It owns exactly one
// root node, present from construction. Tree is not safe for concurrent
// use; callers needing that must serialise access externally (see
// fuzz_test.go for the pattern this package's own fuzz harness uses).
type Tree[K cmp.Ordered] struct {
	root *node[K]
	t    int
	size int
}

// New constructs an empty Tree with the given minimum degree. t must be at
// least 1; violating that is a programmer error and New panics with an
// *InvalidDegreeError rather than returning one, since there is no
// recoverable path forward with a malformed tree.
func New[K cmp.Ordered](t int) *Tree[K] {
	if t < 1 {
		panic(&InvalidDegreeError{Degree: t})
	}
	return &Tree[K]{t: t, root: newNode[K](t)}
}

// Len reports the number of keys currently in the tree.
func (tr *Tree[K]) Len() int { return tr.size }

// Root returns a read-only handle to the root node, for diagnostics and
// visualization.
func (tr *Tree[K]) Root() NodeHandle[K] { return NodeHandle[K]{n: tr.root} }

// Degree reports the minimum degree the tree was constructed with.
func (tr *Tree[K]) Degree() int { return tr.t }

// Contains reports whether k is present in the tree.
func (tr *Tree[K]) Contains(k K) bool {
	_, _, ok := tr.Find(k)
	return ok
}

// Find descends from the root looking for k. On success it returns a
// read-only handle to the node holding the key and the key's slot within
// that node's key array; the handle exists for tests and diagnostics, not
// for further mutation.
func (tr *Tree[K]) Find(k K) (NodeHandle[K], int, bool) {
	n := tr.root
	for {
		idx, found := n.search(k)
		if found {
			return NodeHandle[K]{n: n}, idx, true
		}
		if n.isLeaf() {
			return NodeHandle[K]{}, 0, false
		}
		n = n.children[idx+1]
	}
}

// Insert adds k to the tree, returning false without modifying the tree if
// k is already present.
func (tr *Tree[K]) Insert(k K) bool {
	return tr.insert(k)
}

// InsertCopy behaves identically to Insert. Go passes K by value already,
// so there is no cheaper "move" path to fall back to for InsertCopy to
// avoid — the two entry points exist for API symmetry with the moving
// entry point below, and for callers migrating from a language where the
// distinction mattered.
func (tr *Tree[K]) InsertCopy(k K) bool {
	return tr.insert(k)
}

// InsertMoving inserts *k, taking ownership of it: on success, *k is reset
// to K's zero value, mirroring a consuming move. On a duplicate, *k is left
// untouched and InsertMoving returns false — the caller's variable is never
// silently emptied for an insert that didn't happen.
func (tr *Tree[K]) InsertMoving(k *K) bool {
	if tr.insert(*k) {
		var zero K
		*k = zero
		return true
	}
	return false
}

func (tr *Tree[K]) insert(k K) bool {
	n := tr.root
	for {
		idx, found := n.search(k)
		if found {
			return false
		}
		if n.isLeaf() {
			n.insertKeyAt(idx+1, k)
			tr.size++
			if n.numKeys() > n.maxKeys() {
				n.split(tr)
			}
			return true
		}
		n = n.children[idx+1]
	}
}

// Remove deletes k from the tree, returning false without side effects if
// k is absent. Found at an internal node, removal replaces the key with
// its in-order successor before rebalancing; found at a leaf, the key is
// removed directly and the leaf rebalances if it underflowed.
func (tr *Tree[K]) Remove(k K) bool {
	n := tr.root
	for {
		idx, found := n.search(k)
		if found {
			if n.isLeaf() {
				n.leafRemoveAt(tr, idx)
			} else {
				n.internalRemoveAt(tr, idx)
			}
			tr.size--
			return true
		}
		if n.isLeaf() {
			return false
		}
		n = n.children[idx+1]
	}
}

// Clone returns a deep copy of the tree: every node is duplicated and every
// parent/index back-link rebuilt against the copies, sharing no structure
// with the receiver. This is an expensive, O(n) operation with no
// shallow-clone fast path.
func (tr *Tree[K]) Clone() *Tree[K] {
	return &Tree[K]{
		t:    tr.t,
		size: tr.size,
		root: tr.root.clone(),
	}
}
