// Package topo renders the logical shape of a tree as a Graphviz node-link
// diagram: internal nodes become boxes labeled with their split, leaves show
// their point counts, and edges mark which side of the split a child hangs
// off. Unlike pkg/render/tikz this view works for any dimensionality, since
// it draws the tree, not the space it partitions.
package topo

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/kdsketch/kdsketch/pkg/kdtree"
	"github.com/kdsketch/kdsketch/pkg/render"
)

// ToDOT converts a tree's shape to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
func ToDOT[A constraints.Float](t *kdtree.Tree[A]) string {
	var buf bytes.Buffer
	buf.WriteString("digraph kdtree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if t.Root != nil {
		w := dotWriter[A]{buf: &buf}
		w.node(t.Root)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotWriter hands out sequential node identifiers during the walk.
type dotWriter[A constraints.Float] struct {
	buf  *bytes.Buffer
	next int
}

// node emits the subtree rooted at n and returns its DOT identifier.
func (w *dotWriter[A]) node(n kdtree.Node[A]) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++

	switch n := n.(type) {
	case *kdtree.Inner[A]:
		label := fmt.Sprintf("%s = %s", kdtree.AxisLabel(n.Axis), render.Format(n.Value))
		fmt.Fprintf(w.buf, "  %s [label=%q];\n", id, label)
		left := w.node(n.Left)
		right := w.node(n.Right)
		fmt.Fprintf(w.buf, "  %s -> %s [label=\"left\"];\n", id, left)
		fmt.Fprintf(w.buf, "  %s -> %s [label=\"right\"];\n", id, right)
	case *kdtree.Leaf[A]:
		fmt.Fprintf(w.buf, "  %s [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n",
			id, leafLabel(n))
	}
	return id
}

func leafLabel[A constraints.Float](n *kdtree.Leaf[A]) string {
	if len(n.Points) == 1 {
		return "1 point"
	}
	return fmt.Sprintf("%d points", len(n.Points))
}
