package aatree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func evens(n int) *Tree[int, string] {
	tree := NewOrdered[int, string]()
	for i := 0; i < n; i++ {
		tree = tree.Select(2 * i).Set("v")
	}
	return tree
}

func TestCursorNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aatree")
	defer teardown()

	tree := evens(10)
	c := tree.Select(5)
	if c.Found() || c.Key() != 5 || c.Value() != "" {
		t.Fatalf("expected cursor for absent key 5, got found=%v key=%d", c.Found(), c.Key())
	}
	if c.Tree() != tree {
		t.Fatalf("expected cursor to remember its tree")
	}
	if n := c.Next(); n == nil || !n.Found() || n.Key() != 6 {
		t.Fatalf("expected next of 5 to be 6")
	}
	if p := c.Previous(); p == nil || !p.Found() || p.Key() != 4 {
		t.Fatalf("expected previous of 5 to be 4")
	}
}

func TestCursorBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aatree")
	defer teardown()

	tree := evens(10)
	if first, last := tree.First(), tree.Last(); first.Key() != 0 || last.Key() != 18 ||
		!first.Found() || !last.Found() {
		t.Fatalf("expected first and last cursors at 0 and 18")
	}
	if tree.First().Previous() != nil {
		t.Fatalf("expected no predecessor of minimum")
	}
	if tree.Last().Next() != nil {
		t.Fatalf("expected no successor of maximum")
	}
	if tree.Select(0).Previous() != nil || tree.Select(18).Next() != nil {
		t.Fatalf("expected selected extremes to have no outer neighbours")
	}
	if c := tree.Select(-3).Next(); c == nil || c.Key() != 0 {
		t.Fatalf("expected successor of -3 to be 0")
	}
	if tree.Select(-3).Previous() != nil {
		t.Fatalf("expected no predecessor of -3")
	}
	if c := tree.Select(25).Previous(); c == nil || c.Key() != 18 {
		t.Fatalf("expected predecessor of 25 to be 18")
	}
	if tree.Select(25).Next() != nil {
		t.Fatalf("expected no successor of 25")
	}
	empty := NewOrdered[int, string]()
	if empty.Select(1).Next() != nil || empty.Select(1).Previous() != nil {
		t.Fatalf("expected no neighbours in empty tree")
	}
}

func TestCursorNextPreviousRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aatree")
	defer teardown()

	tree := evens(50)
	for k := 0; k < 98; k += 2 {
		c := tree.Select(k).Next().Previous()
		if c == nil || !c.Found() || c.Key() != k {
			t.Fatalf("select(%d).next().previous() did not return to %d", k, k)
		}
		c = tree.Select(k + 2).Previous().Next()
		if c == nil || c.Key() != k+2 {
			t.Fatalf("select(%d).previous().next() did not return to %d", k+2, k+2)
		}
	}
}

func TestCursorWalksWholeTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aatree")
	defer teardown()

	tree := numbered(200)
	i := 0
	for c := tree.First(); c != nil; c = c.Next() {
		if c.Key() != i {
			t.Fatalf("forward walk: expected key %d, got %d", i, c.Key())
		}
		i++
	}
	if i != 200 {
		t.Fatalf("forward walk visited %d entries", i)
	}
	for c := tree.Last(); c != nil; c = c.Previous() {
		i--
		if c.Key() != i {
			t.Fatalf("backward walk: expected key %d, got %d", i, c.Key())
		}
	}
	if i != 0 {
		t.Fatalf("backward walk stopped at %d", i)
	}
}

func TestCursorUnsetAfterNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aatree")
	defer teardown()

	tree := evens(30)
	for k := 1; k < 59; k += 6 {
		c := tree.Select(k).Next()
		removed := c.Key()
		tree = c.Unset()
		if tree.Contains(removed) {
			t.Fatalf("key %d still present after unset", removed)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after unset of %d: %v", removed, err)
		}
	}
	if tree.Len() != 20 {
		t.Fatalf("expected 20 entries to remain, have %d", tree.Len())
	}
}

func TestCursorSetAfterNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "aatree")
	defer teardown()

	tree := evens(10)
	next := tree.Select(7).Next().Set("eight")
	if v, _ := next.Lookup(8); v != "eight" || next.Len() != 10 {
		t.Fatalf("expected value of 8 to be replaced, got %q", v)
	}
	if err := next.Check(); err != nil {
		t.Fatalf("invariants broken: %v", err)
	}
}
