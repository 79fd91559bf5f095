package aatree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// rebuild copies the head node of frame p, substituting t for the child p
// descended into.
func (p *trail[K, V]) rebuild(t *node[K, V]) *node[K, V] {
	n := p.node
	if p.branch == right {
		return newNode(n.key, n.value, n.level, n.left, t)
	}
	return newNode(n.key, n.value, n.level, t, n.right)
}

// set reconstructs a tree from trail p, with the entry at p's position set to
// (key, value). If p points to an existing node, that node is replaced;
// otherwise a new leaf is inserted at the slot p points to. The result is the
// root of the new tree.
func set[K, V any](p *trail[K, V], key K, value V) *node[K, V] {
	var t *node[K, V]
	if p.found() {
		n := p.node
		t = newNode(key, value, n.level, n.left, n.right)
		p = p.tail
	} else {
		t = newNode[K, V](key, value, 1, nil, nil)
	}
	for ; p != nil; p = p.tail {
		t = split(skew(p.rebuild(t)))
	}
	return t
}

// unset reconstructs a tree from trail p, with the node p points to removed.
// The result is the root of the new tree, which may be empty.
//
// p must point to an existing node.
func unset[K, V any](p *trail[K, V]) *node[K, V] {
	assert(p.found(), "unset called for a trail not pointing to a node")
	n0 := p.node
	p = p.tail
	if n0.left != nil {
		// Inner node: swap entries with the in-order predecessor, which is a
		// leaf, and remove the predecessor instead.
		pred := n0.left
		var way []*node[K, V]
		for ; pred.right != nil; pred = pred.right {
			way = append(way, pred)
		}
		swapped := n0.clone()
		swapped.key, swapped.value = pred.key, pred.value
		p = push(left, swapped, p)
		for _, n := range way {
			p = push(right, n, p)
		}
	} else if n0.right != nil {
		// Only a right child, which is a leaf of n0's level: move it up.
		p = push(right, n0.right, p)
	}
	var t *node[K, V]
	for ; p != nil; p = p.tail {
		t = rebalanceAfterRemoval(p.rebuild(t))
	}
	return t
}

// rebalanceAfterRemoval restores the AA invariants for t after one of its
// subtrees lost a node. t must be a node freshly allocated by the caller.
func rebalanceAfterRemoval[K, V any](t *node[K, V]) *node[K, V] {
	if t.left.lv() >= t.level-1 && t.right.lv() >= t.level-1 {
		return t
	}
	t.level--
	if t.right.lv() > t.level {
		r := t.right.clone()
		r.level = t.level
		t.right = r
	}
	t = skew(t)
	t = t.withRight(skew(t.right))
	if t.right != nil {
		t = t.withRight(t.right.withRight(skew(t.right.right)))
	}
	t = split(t)
	t = t.withRight(split(t.right))
	return t
}
