package aatree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Stream is a lazy, single-pass iteration over the entries of a tree in
// ascending key order. Obtain a fresh Stream from Tree.Stream for every
// traversal; a Stream which has been drained stays drained.
type Stream[K, V any] struct {
	n     *node[K, V]
	stack []*node[K, V]
}

// Stream returns a new stream over the entries of t.
func (t *Tree[K, V]) Stream() *Stream[K, V] {
	if t == nil {
		return &Stream[K, V]{}
	}
	return &Stream[K, V]{
		n:     t.root,
		stack: make([]*node[K, V], 0, t.root.lv()*2),
	}
}

// Next returns the next entry of the stream. ok is false if the stream is
// exhausted.
func (s *Stream[K, V]) Next() (key K, value V, ok bool) {
	for ; s.n != nil; s.n = s.n.left {
		s.stack = append(s.stack, s.n)
	}
	if len(s.stack) == 0 {
		return key, value, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.n = top.right
	return top.key, top.value, true
}

// All returns an iterator over the entries of t in ascending key order.
// Every range loop over the iterator starts a new traversal.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		s := t.Stream()
		for k, v, ok := s.Next(); ok; k, v, ok = s.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of t in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Each calls fn for every entry of t in ascending key order.
// Iteration stops early if fn returns false.
func (t *Tree[K, V]) Each(fn func(key K, value V) bool) {
	if fn == nil {
		return
	}
	for k, v := range t.All() {
		if !fn(k, v) {
			return
		}
	}
}
