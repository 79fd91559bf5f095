/*
Package aatree implements persistent ordered maps on top of AA trees.

AA Trees

An AA tree is a balanced binary search tree in the family of red-black trees.
Instead of a color bit, every node carries a level, and just two rotations,
skew and split, keep the tree balanced. Arne Andersson introduced them in 1993
as a simplification of red-black trees:

	Balanced Search Trees Made Simple.
	Workshop on Algorithms and Data Structures, pp. 60–71, 1993.

Trees of this package are persistent: no operation ever changes a tree. Every
update returns a new tree, which shares all untouched subtrees with its
predecessor. Old versions of a map therefore stay valid and may be used
concurrently without any locking.

	m := aatree.NewOrdered[int, string]()
	m2 := m.Insert(aatree.P(1, "Hello"), aatree.P(2, "World"))
	m3 := m2.Remove(1)  // m2 still contains key 1

Cursors

Clients obtain a Cursor by selecting a key. A cursor is positioned either at an
existing entry or at the place where an entry for the key would be inserted.
From a cursor clients may read the entry, step to the neighbouring entries,
or derive a new tree by setting or unsetting the entry.

	c := m2.Select(2)
	if c.Found() {
	    m4 := c.Set("Gopher")
	    _ = m4
	}
	for c := m2.First(); c != nil; c = c.Next() {
	    fmt.Println(c.Key(), c.Value())
	}

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package aatree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aatree'
func tracer() tracing.Trace {
	return tracing.Select("aatree")
}

var (
	// ErrInvalidConfig signals an invalid tree configuration, e.g., a missing
	// comparator.
	ErrInvalidConfig = errors.New("aatree: invalid configuration")
	// ErrBrokenInvariant is flagged by Check for trees violating the AA tree
	// invariants, the key order, or the size bookkeeping.
	ErrBrokenInvariant = errors.New("aatree: broken invariant")
)

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
