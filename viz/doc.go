/*
Package viz renders the internal structure of AA trees for debugging.

All renderers work on the read-only node view of a tree (aatree.Tree.Root) and
never change a tree. The empty tree is drawn as a distinguished terminal
marker.

	ToDot       Graphviz DOT, optionally for several versions at once,
	            exposing subtrees shared between versions
	Dump        indented, level-colored console output
	HTML        a nested <ul> outline

# BSD License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package viz

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aatree'
func tracer() tracing.Trace {
	return tracing.Select("aatree")
}

// LabelFunc creates the text shown for a node.
type LabelFunc[K, V any] func(key K, value V) string

// KeyLabel shows a node's key only.
func KeyLabel[K, V any](key K, _ V) string {
	return fmt.Sprint(key)
}

// EntryLabel shows a node's key and value.
func EntryLabel[K, V any](key K, value V) string {
	return fmt.Sprintf("%v: %v", key, value)
}

func labelOrDefault[K, V any](label LabelFunc[K, V]) LabelFunc[K, V] {
	if label == nil {
		return KeyLabel[K, V]
	}
	return label
}
