package viz

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/npillmayer/aatree"
)

type nodeids[K, V any] struct {
	idTable map[aatree.Node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[aatree.Node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node aatree.Node[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node aatree.Node[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format.
// Nodes are ranked by their AA level; horizontal links (a right child on the
// same level as its parent) are drawn dashed. label may be nil.
func ToDot[K, V any](tree *aatree.Tree[K, V], w io.Writer, label LabelFunc[K, V]) error {
	return VersionsToDot(w, label, tree)
}

// VersionsToDot draws several versions of a tree into a single graph. Each
// version gets a root marker named "v0", "v1", …; subtrees shared between
// versions are drawn once, with an edge from every parent referencing them.
func VersionsToDot[K, V any](w io.Writer, label LabelFunc[K, V], trees ...*aatree.Tree[K, V]) error {
	label = labelOrDefault(label)
	bw := bufio.NewWriter(w)
	io.WriteString(bw, "strict digraph {\n")
	io.WriteString(bw, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	ranks := make(map[int][]int)
	nodelist, edgelist := "", ""
	empties := 0
	emptyNode := func() int {
		empties++
		id := -empties
		nodelist += fmt.Sprintf("\t\"e%d\" [label=\"\",shape=point];\n", -id)
		return id
	}
	nodeRef := func(id int) string {
		if id < 0 {
			return fmt.Sprintf("\"e%d\"", -id)
		}
		return fmt.Sprintf("\"%d\"", id)
	}
	var draw func(n aatree.Node[K, V]) int
	draw = func(n aatree.Node[K, V]) int {
		if n.IsEmpty() {
			return emptyNode()
		}
		if id := ids.find(n); id > 0 {
			return id // shared subtree, already drawn
		}
		ID := ids.alloc(n)
		ranks[n.Level()] = append(ranks[n.Level()], ID)
		nodelist += fmt.Sprintf("\t\"%d\" [label=%s %s];\n", ID,
			strconv.Quote(label(n.Key(), n.Value())), nodeDotStyles(n))
		if n.Left().IsEmpty() && n.Right().IsEmpty() {
			return ID
		}
		l := draw(n.Left())
		edgelist += fmt.Sprintf("\t\"%d\" -> %s;\n", ID, nodeRef(l))
		r := draw(n.Right())
		if n.Right().Level() == n.Level() {
			edgelist += fmt.Sprintf("\t\"%d\" -> %s [style=dashed];\n", ID, nodeRef(r))
		} else {
			edgelist += fmt.Sprintf("\t\"%d\" -> %s;\n", ID, nodeRef(r))
		}
		return ID
	}
	for i, tree := range trees {
		if tree == nil {
			return fmt.Errorf("%w: tree #%d is nil", aatree.ErrInvalidConfig, i)
		}
		root := draw(tree.Root())
		nodelist += fmt.Sprintf("\t\"v%d\" [label=\"v%d\",shape=plaintext];\n", i, i)
		edgelist += fmt.Sprintf("\t\"v%d\" -> %s;\n", i, nodeRef(root))
	}
	io.WriteString(bw, nodelist)
	io.WriteString(bw, edgelist)
	for _, level := range slices.Sorted(maps.Keys(ranks)) {
		members := ranks[level]
		io.WriteString(bw, fmt.Sprintf("\tsubgraph \"level%d\" { rank=same;", level))
		for _, id := range members {
			io.WriteString(bw, fmt.Sprintf(" \"%d\";", id))
		}
		io.WriteString(bw, " }\n")
	}
	io.WriteString(bw, "}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

func nodeDotStyles[K, V any](n aatree.Node[K, V]) string {
	s := ",style=filled"
	if n.Left().IsEmpty() && n.Right().IsEmpty() {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	c := hexcolors[min(n.Level(), len(hexcolors)-1)]
	s += fmt.Sprintf(",color=black,fillcolor=\"%s\"", c)
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
