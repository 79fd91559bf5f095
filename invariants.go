package aatree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Check validates the structural invariants of t:
//
//   - the level of a left child is exactly one less than its parent's level,
//   - the level of a right child is equal to or one less than its parent's level,
//   - the level of a right grandchild is less than its grandparent's level,
//   - leaves are at level 1,
//   - in-order traversal yields strictly ascending keys,
//   - the number of nodes matches Len().
//
// Check is intended for tests and debugging; it visits every node of t.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.compare == nil {
		return fmt.Errorf("%w: tree has no comparator", ErrInvalidConfig)
	}
	var prev *node[K, V]
	count, err := t.checkNode(t.root, &prev)
	if err != nil {
		tracer().Errorf("aatree: %v", err)
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes, Len()=%d)", ErrBrokenInvariant, count, t.size)
	}
	return nil
}

func (t *Tree[K, V]) checkNode(n *node[K, V], prev **node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.level < 1 {
		return 0, fmt.Errorf("%w: node %v has level %d", ErrBrokenInvariant, n.key, n.level)
	}
	if n.left.lv() != n.level-1 {
		return 0, fmt.Errorf("%w: left child of %v at level %d, parent at %d",
			ErrBrokenInvariant, n.key, n.left.lv(), n.level)
	}
	if rl := n.right.lv(); rl != n.level && rl != n.level-1 {
		return 0, fmt.Errorf("%w: right child of %v at level %d, parent at %d",
			ErrBrokenInvariant, n.key, rl, n.level)
	}
	if n.right.r().lv() >= n.level {
		return 0, fmt.Errorf("%w: consecutive horizontal right links below %v",
			ErrBrokenInvariant, n.key)
	}
	if n.level > 1 && (n.left == nil || n.right == nil) {
		return 0, fmt.Errorf("%w: node %v at level %d lacks a child",
			ErrBrokenInvariant, n.key, n.level)
	}
	lcount, err := t.checkNode(n.left, prev)
	if err != nil {
		return 0, err
	}
	if *prev != nil && t.compare((*prev).key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: keys %v and %v out of order", ErrBrokenInvariant, (*prev).key, n.key)
	}
	*prev = n
	rcount, err := t.checkNode(n.right, prev)
	if err != nil {
		return 0, err
	}
	return lcount + rcount + 1, nil
}
