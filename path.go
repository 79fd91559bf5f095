package aatree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Branches of a trail frame.
const (
	left  int8 = -1 // descended into the left subtree
	at    int8 = 0  // positioned at the node itself
	right int8 = 1  // descended into the right subtree
)

// trail is a path from a node up to the root of a tree, recorded as a linked
// list of descent frames. The nil trail is the empty path.
//
// A trail with a head branch of `at` points to an existing node. Otherwise it
// points to the empty slot left or right of the head node, i.e., to where an
// entry would be inserted.
//
// Trails are values: they never change once built and may be shared between
// cursors.
type trail[K, V any] struct {
	branch int8
	node   *node[K, V]
	tail   *trail[K, V]
}

func push[K, V any](branch int8, n *node[K, V], tail *trail[K, V]) *trail[K, V] {
	return &trail[K, V]{branch: branch, node: n, tail: tail}
}

func (p *trail[K, V]) found() bool {
	return p != nil && p.branch == at
}

func sign(c int) int8 {
	switch {
	case c < 0:
		return left
	case c > 0:
		return right
	}
	return at
}

// selectPath descends from root towards key and records the descent.
func selectPath[K, V any](root *node[K, V], key K, compare Comparator[K]) *trail[K, V] {
	var p *trail[K, V]
	for n := root; n != nil; {
		b := sign(compare(key, n.key))
		p = push(b, n, p)
		switch b {
		case at:
			return p
		case left:
			n = n.left
		default:
			n = n.right
		}
	}
	return p
}

// next returns a trail to the in-order successor of p's position, or nil if
// there is none.
func (p *trail[K, V]) next() *trail[K, V] {
	if p == nil {
		return nil
	}
	if p.branch < 0 { // slot left of node: node itself is next
		return push(at, p.node, p.tail)
	}
	if p.node.right == nil {
		for p != nil && p.branch >= 0 {
			p = p.tail
		}
		if p == nil {
			return nil
		}
		return push(at, p.node, p.tail)
	}
	p = push(left, p.node.right, push(right, p.node, p.tail))
	for p.node.left != nil {
		p = push(left, p.node.left, p)
	}
	return push(at, p.node, p.tail)
}

// previous returns a trail to the in-order predecessor of p's position, or nil
// if there is none.
func (p *trail[K, V]) previous() *trail[K, V] {
	if p == nil {
		return nil
	}
	if p.branch > 0 { // slot right of node: node itself is previous
		return push(at, p.node, p.tail)
	}
	if p.node.left == nil {
		for p != nil && p.branch <= 0 {
			p = p.tail
		}
		if p == nil {
			return nil
		}
		return push(at, p.node, p.tail)
	}
	p = push(right, p.node.left, push(left, p.node, p.tail))
	for p.node.right != nil {
		p = push(right, p.node.right, p)
	}
	return push(at, p.node, p.tail)
}

// leftmost returns a trail to the smallest entry of root, or nil for an empty
// tree.
func leftmost[K, V any](root *node[K, V]) *trail[K, V] {
	if root == nil {
		return nil
	}
	var p *trail[K, V]
	n := root
	for ; n.left != nil; n = n.left {
		p = push(left, n, p)
	}
	return push(at, n, p)
}

// rightmost returns a trail to the largest entry of root, or nil for an empty
// tree.
func rightmost[K, V any](root *node[K, V]) *trail[K, V] {
	if root == nil {
		return nil
	}
	var p *trail[K, V]
	n := root
	for ; n.right != nil; n = n.right {
		p = push(right, n, p)
	}
	return push(at, n, p)
}
