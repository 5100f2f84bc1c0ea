// Package shape renders the nested text dump of a tree: one block per node,
// split metadata for internal nodes, a signed point list for leaves.
//
// The dump is meant for eyeballs and logs, not machines — there is no
// round-trip guarantee. It works for trees of any dimensionality.
package shape

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/kdsketch/kdsketch/pkg/kdtree"
	"github.com/kdsketch/kdsketch/pkg/render"
)

// indentUnit is one depth level of indentation.
const indentUnit = "    "

// Render returns the shape dump as a string.
func Render[A constraints.Float](t *kdtree.Tree[A]) string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = Write(&sb, t)
	return sb.String()
}

// Write streams the shape dump to w. The first write error aborts the
// traversal and is returned as-is; anything already written stays written.
func Write[A constraints.Float](w io.Writer, t *kdtree.Tree[A]) error {
	return writeNode[A](w, t.Root, 0)
}

func writeNode[A constraints.Float](w io.Writer, n kdtree.Node[A], depth int) error {
	if n == nil || n.Count() == 0 {
		if _, err := io.WriteString(w, "KdTree {}"); err != nil {
			return err
		}
		return finishBlock(w, depth)
	}

	indent := strings.Repeat(indentUnit, depth)
	switch n := n.(type) {
	case *kdtree.Inner[A]:
		if _, err := fmt.Fprintf(w, "KdTree {\n%s%ssplit_value: %s on %s\n",
			indent, indentUnit, render.Format(n.Value), kdtree.AxisLabel(n.Axis)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sleft: ", indent, indentUnit); err != nil {
			return err
		}
		if err := writeNode[A](w, n.Left, depth+1); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%sright: ", indent, indentUnit); err != nil {
			return err
		}
		if err := writeNode[A](w, n.Right, depth+1); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s}", indent); err != nil {
			return err
		}
	case *kdtree.Leaf[A]:
		if _, err := fmt.Fprintf(w, "KdTree {\n%s%spoints: [\n", indent, indentUnit); err != nil {
			return err
		}
		for _, p := range n.Points {
			if _, err := fmt.Fprintf(w, "%s%s%s(%s)\n",
				indent, indentUnit, indentUnit, signedComponents(p)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s%s]\n%s}", indent, indentUnit, indent); err != nil {
			return err
		}
	}
	return finishBlock(w, depth)
}

// finishBlock emits the newline that separates sibling fields. The root
// block ends without one.
func finishBlock(w io.Writer, depth int) error {
	if depth == 0 {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// signedComponents joins a point's coordinates with an explicit sign on
// each, comma-and-tab separated.
func signedComponents[A constraints.Float](p kdtree.Point[A]) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = render.FormatSigned(c)
	}
	return strings.Join(parts, ",\t")
}
