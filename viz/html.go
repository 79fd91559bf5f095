package viz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/aatree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes a tree as a nested outline of <ul> lists to w:
//
//	<ul class="aatree">
//	  <li data-level="2"><span class="node">k</span>
//	    <ul><li …>left</li><li …>right</li></ul>
//	  </li>
//	</ul>
//
// Empty subtrees are rendered as <li class="empty"></li> if their sibling is
// not empty. label may be nil.
func HTML[K, V any](w io.Writer, tree *aatree.Tree[K, V], label LabelFunc[K, V]) error {
	if tree == nil {
		return fmt.Errorf("%w: tree is nil", aatree.ErrInvalidConfig)
	}
	root := OutlineNode(tree, label)
	if err := html.Render(w, root); err != nil {
		tracer().Errorf("tree HTML: %s", err.Error())
		return err
	}
	return nil
}

// OutlineNode builds the HTML outline of a tree as a DOM fragment, for
// clients embedding it into a larger document.
func OutlineNode[K, V any](tree *aatree.Tree[K, V], label LabelFunc[K, V]) *html.Node {
	label = labelOrDefault(label)
	ul := element(atom.Ul, html.Attribute{Key: "class", Val: "aatree"})
	if !tree.IsEmpty() {
		ul.AppendChild(outline(tree.Root(), label))
	}
	return ul
}

func outline[K, V any](n aatree.Node[K, V], label LabelFunc[K, V]) *html.Node {
	if n.IsEmpty() {
		return element(atom.Li, html.Attribute{Key: "class", Val: "empty"})
	}
	li := element(atom.Li, html.Attribute{Key: "data-level", Val: strconv.Itoa(n.Level())})
	span := element(atom.Span, html.Attribute{Key: "class", Val: "node"})
	span.AppendChild(&html.Node{Type: html.TextNode, Data: label(n.Key(), n.Value())})
	li.AppendChild(span)
	if n.Left().IsEmpty() && n.Right().IsEmpty() {
		return li
	}
	children := element(atom.Ul)
	children.AppendChild(outline(n.Left(), label))
	right := outline(n.Right(), label)
	if n.Right().Level() == n.Level() {
		right.Attr = append(right.Attr, html.Attribute{Key: "class", Val: "horizontal"})
	}
	children.AppendChild(right)
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
