package btreeset

import (
	"cmp"
	"fmt"
)

// checkInvariants walks the tree and validates the eight structural
// invariants the design model demands: key-count bounds, leaf/internal
// child-count shape, strictly-increasing keys (checked globally via an
// in-order collection, which also rules out duplicates), the non-root
// minimum-key bound, uniform leaf depth, and parent/index back-link
// correctness. It is a test helper, never called from the mutation path.
func checkInvariants[K cmp.Ordered](tr *Tree[K]) error {
	leafDepth := -1

	var walk func(n *node[K], depth int) ([]K, error)
	walk = func(n *node[K], depth int) ([]K, error) {
		if n.numKeys() > n.maxKeys() {
			return nil, fmt.Errorf("node has %d keys, exceeds max %d", n.numKeys(), n.maxKeys())
		}
		if n.isLeaf() {
			if leafDepth == -1 {
				leafDepth = depth
			} else if depth != leafDepth {
				return nil, fmt.Errorf("leaf depth mismatch: got %d, want %d", depth, leafDepth)
			}
		} else if len(n.children) != len(n.keys)+1 {
			return nil, fmt.Errorf("internal node has %d children for %d keys", len(n.children), len(n.keys))
		}

		if !n.isRoot() {
			if n.numKeys() < n.minKeys() {
				return nil, fmt.Errorf("non-root node underflowed: %d keys < min %d", n.numKeys(), n.minKeys())
			}
		} else if !n.isLeaf() && n.numKeys() < 1 {
			return nil, fmt.Errorf("internal root has 0 keys")
		}

		for i, c := range n.children {
			if c.parent != n {
				return nil, fmt.Errorf("child %d has wrong parent back-link", i)
			}
			if c.index != i {
				return nil, fmt.Errorf("child %d has index %d, want %d", i, c.index, i)
			}
		}

		if n.isLeaf() {
			out := make([]K, len(n.keys))
			copy(out, n.keys)
			return out, nil
		}

		var collected []K
		for i, c := range n.children {
			sub, err := walk(c, depth+1)
			if err != nil {
				return nil, err
			}
			collected = append(collected, sub...)
			if i < len(n.keys) {
				collected = append(collected, n.keys[i])
			}
		}
		return collected, nil
	}

	all, err := walk(tr.root, 0)
	if err != nil {
		return err
	}
	for i := 1; i < len(all); i++ {
		if !(all[i-1] < all[i]) {
			return fmt.Errorf("keys out of order at position %d: %v then %v", i, all[i-1], all[i])
		}
	}
	if len(all) != tr.size {
		return fmt.Errorf("tree reports size %d but holds %d keys", tr.size, len(all))
	}
	return nil
}
