package aatree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Comparator defines a total order on keys. compare(a, b) returns a negative
// number if a sorts before b, zero if a and b are equivalent, and a positive
// number if a sorts after b.
type Comparator[K any] func(a, b K) int

// Pair is a key-value pair, used for inserting entries in bulk.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// P is shorthand for creating a Pair.
func P[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Tree is a persistent ordered map from keys K to values V.
//
// Trees are immutable. Operations which change the content of a tree return a
// new tree, sharing every subtree not affected by the change with the
// original tree. Trees may therefore be read from multiple goroutines without
// synchronization.
//
//	Operation     |   Complexity
//	--------------+-------------
//	Lookup        |   O(log n)
//	Select        |   O(log n)
//	Set/Unset     |   O(log n)
//	Next/Previous |   O(log n)
//	Iterate       |   O(n)
type Tree[K, V any] struct {
	root    *node[K, V]
	compare Comparator[K]
	size    int
}

// New creates an empty tree, ordering keys by compare.
// compare must be a total order on K; New returns an error wrapping
// ErrInvalidConfig if compare is nil.
func New[K, V any](compare Comparator[K]) (*Tree[K, V], error) {
	if compare == nil {
		tracer().Errorf("aatree: refusing to create tree without comparator")
		return nil, fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return &Tree[K, V]{compare: compare}, nil
}

// NewOrdered creates an empty tree for keys with a natural order, as defined by
// cmp.Compare.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{compare: cmp.Compare[K]}
}

// derive creates a tree sharing t's comparator.
func (t *Tree[K, V]) derive(root *node[K, V], size int) *Tree[K, V] {
	return &Tree[K, V]{root: root, compare: t.compare, size: size}
}

// Len returns the number of entries of t.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether t has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the AA level of the root of t, 0 for an empty tree.
// The height of a tree with n entries is at most ⌈log₂(n+1)⌉.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.lv()
}

// Root returns a read-only view of the root node of t, for debugging and
// visualization.
func (t *Tree[K, V]) Root() Node[K, V] {
	if t == nil {
		return Node[K, V]{}
	}
	return Node[K, V]{t.root}
}

// Lookup searches for key and returns its value and true if found.
// If key is not contained in t, Lookup returns the zero value and false.
func (t *Tree[K, V]) Lookup(key K) (V, bool) {
	if t != nil {
		for n := t.root; n != nil; {
			c := t.compare(key, n.key)
			if c == 0 {
				return n.value, true
			}
			if c < 0 {
				n = n.left
			} else {
				n = n.right
			}
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether t contains an entry for key.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Select searches for key and returns a cursor for it. The cursor either points
// to the entry for key, or, if key is not contained in t, to the position
// where an entry for key would be inserted.
func (t *Tree[K, V]) Select(key K) *Cursor[K, V] {
	assert(t != nil, "Select called on nil tree")
	return newCursor(t, selectPath(t.root, key, t.compare), key)
}

// First returns a cursor pointing to the entry with the smallest key, or nil
// if t is empty.
func (t *Tree[K, V]) First() *Cursor[K, V] {
	if t.IsEmpty() {
		return nil
	}
	p := leftmost(t.root)
	return newCursor(t, p, p.node.key)
}

// Last returns a cursor pointing to the entry with the largest key, or nil if
// t is empty.
func (t *Tree[K, V]) Last() *Cursor[K, V] {
	if t.IsEmpty() {
		return nil
	}
	p := rightmost(t.root)
	return newCursor(t, p, p.node.key)
}

// Insert sets the entries of pairs, from left to right, and returns the
// resulting tree. Later pairs for a key overwrite earlier ones.
//
// For a single pair,
//
//	t.Insert(P(k, v))  ≡  t.Select(k).Set(v)
func (t *Tree[K, V]) Insert(pairs ...Pair[K, V]) *Tree[K, V] {
	r := t
	for _, pair := range pairs {
		r = r.Select(pair.Key).Set(pair.Value)
	}
	return r
}

// Remove removes the entries for keys, from left to right, and returns the
// resulting tree. Keys not contained in the tree are ignored.
//
// For a single key,
//
//	t.Remove(k)  ≡  t.Select(k).Unset()
func (t *Tree[K, V]) Remove(keys ...K) *Tree[K, V] {
	r := t
	for _, key := range keys {
		r = r.Select(key).Unset()
	}
	return r
}
