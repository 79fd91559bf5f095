package aatree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Cursor is a position within a tree, created by Tree.Select, Tree.First or
// Tree.Last, or by moving another cursor.
//
// A cursor is either positioned at an entry of the tree (Found reports true),
// or at the place where an entry for its key would be inserted. Cursors never
// change; moving a cursor returns a new one, and setting or unsetting an
// entry returns a new tree, leaving the cursor's tree untouched.
type Cursor[K, V any] struct {
	tree  *Tree[K, V]
	path  *trail[K, V]
	key   K
	value V
	found bool
}

func newCursor[K, V any](tree *Tree[K, V], path *trail[K, V], key K) *Cursor[K, V] {
	c := &Cursor[K, V]{tree: tree, path: path, key: key}
	if path.found() {
		c.found = true
		c.key = path.node.key
		c.value = path.node.value
	}
	return c
}

// Found reports whether c is positioned at an existing entry.
func (c *Cursor[K, V]) Found() bool {
	return c.found
}

// Key returns the key of the entry c is positioned at. For a cursor not
// pointing to an entry, Key returns the key it has been selected with.
func (c *Cursor[K, V]) Key() K {
	return c.key
}

// Value returns the value of the entry c is positioned at, or the zero value
// if c does not point to an entry.
func (c *Cursor[K, V]) Value() V {
	return c.value
}

// Tree returns the tree c has been created for.
func (c *Cursor[K, V]) Tree() *Tree[K, V] {
	return c.tree
}

// Next returns a cursor for the entry following c's position in key order,
// or nil if there is none.
func (c *Cursor[K, V]) Next() *Cursor[K, V] {
	p := c.path.next()
	if p == nil {
		return nil
	}
	return newCursor(c.tree, p, p.node.key)
}

// Previous returns a cursor for the entry preceding c's position in key
// order, or nil if there is none.
func (c *Cursor[K, V]) Previous() *Cursor[K, V] {
	p := c.path.previous()
	if p == nil {
		return nil
	}
	return newCursor(c.tree, p, p.node.key)
}

// Set returns a new tree in which c's key maps to value. If c points to an
// existing entry, its value is replaced; otherwise a new entry is inserted.
func (c *Cursor[K, V]) Set(value V) *Tree[K, V] {
	size := c.tree.size
	if !c.found {
		size++
	}
	return c.tree.derive(set(c.path, c.key, value), size)
}

// Unset returns a new tree without the entry c points to. If c does not point
// to an entry, Unset returns c's tree unchanged.
func (c *Cursor[K, V]) Unset() *Tree[K, V] {
	if !c.found {
		tracer().Debugf("aatree: unset of absent key %v is a no-op", c.key)
		return c.tree
	}
	return c.tree.derive(unset(c.path), c.tree.size-1)
}
