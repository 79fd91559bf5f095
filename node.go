package aatree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// node is an entry of an AA tree together with its subtree.
//
// The nil pointer is the empty tree. It has level 0 and its children are empty
// trees again; the accessor methods below are safe to call on it. Nodes
// reachable from a published tree are never changed.
type node[K, V any] struct {
	key   K
	value V
	level int
	left  *node[K, V]
	right *node[K, V]
}

func newNode[K, V any](key K, value V, level int, left, right *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:   key,
		value: value,
		level: level,
		left:  left,
		right: right,
	}
}

func (n *node[K, V]) lv() int {
	if n == nil {
		return 0
	}
	return n.level
}

func (n *node[K, V]) l() *node[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *node[K, V]) r() *node[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}

// clone creates an unpublished copy of n. Clones are used as scratch nodes
// during reconstruction and must not escape before the new root is complete.
func (n *node[K, V]) clone() *node[K, V] {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

// withRight returns n with its right child replaced by r. n is returned as-is
// if the child would not change.
func (n *node[K, V]) withRight(r *node[K, V]) *node[K, V] {
	if n == nil || n.right == r {
		return n
	}
	c := n.clone()
	c.right = r
	return c
}

// skew removes a left horizontal link by rotating right.
//
//	      n              l
//	     / \            / \
//	    l   r   ⇒     a   n
//	   / \                / \
//	  a   b              b   r
func skew[K, V any](n *node[K, V]) *node[K, V] {
	if n.lv() == 0 {
		return n
	}
	l := n.left
	if l.lv() != n.level {
		return n
	}
	return newNode(l.key, l.value, l.level, l.left,
		newNode(n.key, n.value, n.level, l.right, n.right))
}

// split removes two consecutive right horizontal links by rotating left and
// raising the level of the middle node.
//
//	  n                    r
//	 / \                  / \
//	a   r        ⇒       n   x
//	   / \              / \
//	  b   x            a   b
func split[K, V any](n *node[K, V]) *node[K, V] {
	if n.lv() == 0 {
		return n
	}
	r := n.right
	if r.r().lv() != n.level {
		return n
	}
	return newNode(r.key, r.value, r.level+1,
		newNode(n.key, n.value, n.level, n.left, r.left), r.right)
}

// --- Read-only access ------------------------------------------------------

// Node is a read-only view of a tree node, intended for debugging and
// visualization tools. The zero Node is the empty tree.
//
// Nodes are comparable: two Nodes are equal if and only if they refer to the
// same physical node. This makes it possible to detect subtrees shared between
// versions of a tree.
type Node[K, V any] struct {
	n *node[K, V]
}

// IsEmpty reports whether n is the empty tree.
func (n Node[K, V]) IsEmpty() bool {
	return n.n == nil
}

// Key returns the key of n, or the zero key for the empty tree.
func (n Node[K, V]) Key() K {
	if n.n == nil {
		var zero K
		return zero
	}
	return n.n.key
}

// Value returns the value of n, or the zero value for the empty tree.
func (n Node[K, V]) Value() V {
	if n.n == nil {
		var zero V
		return zero
	}
	return n.n.value
}

// Level returns the AA level of n, which is 0 for the empty tree.
func (n Node[K, V]) Level() int {
	return n.n.lv()
}

// Left returns the left child of n.
func (n Node[K, V]) Left() Node[K, V] {
	return Node[K, V]{n.n.l()}
}

// Right returns the right child of n.
func (n Node[K, V]) Right() Node[K, V] {
	return Node[K, V]{n.n.r()}
}
