// Package tikz generates a standalone TikZ document drawing the spatial
// subdivision of a 2-dimensional tree.
//
// Every internal node becomes one line segment at its split value, spanning
// the bounding rectangle attributed to that subtree; every stored point
// becomes a filled circle marker. Split labels alternate sides between a
// node and its left child so that adjacent splits on the same axis do not
// write their labels over each other — the alternation is purely cosmetic
// and never changes what is drawn where.
//
// Trees of any dimensionality other than 2 are rejected up front with
// errors.ErrCodeUnsupportedDims, before anything is emitted.
package tikz

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/kdsketch/kdsketch/pkg/errors"
	"github.com/kdsketch/kdsketch/pkg/kdtree"
	"github.com/kdsketch/kdsketch/pkg/render"
)

// Option configures diagram rendering.
type Option func(*config)

type config struct {
	style Style
}

// WithStyle overrides the default rendering style.
func WithStyle(s Style) Option { return func(c *config) { c.style = s } }

// Render produces the full TikZ document for a 2-dimensional tree: a fixed
// standalone preamble declaring the coordinate axes, one draw instruction
// per split and per point, and a fixed postamble.
func Render[A constraints.Float](t *kdtree.Tree[A], opts ...Option) ([]byte, error) {
	cfg := config{style: DefaultStyle()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if t.Dims != 2 {
		return nil, errors.New(errors.ErrCodeUnsupportedDims,
			"can only draw 2-dimensional trees, this one has %d dimensions", t.Dims)
	}
	if len(t.Bounds.Min) < 2 || len(t.Bounds.Max) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidTree,
			"bounds arity %d/%d, want 2", len(t.Bounds.Min), len(t.Bounds.Max))
	}

	var buf bytes.Buffer
	writePreamble(&buf, t.Bounds, cfg.style)
	if t.Root != nil {
		if err := writeNode(&buf, t.Root, kdtree.RectOf(t.Bounds), false, cfg.style); err != nil {
			return nil, err
		}
	}
	writePostamble(&buf)
	return buf.Bytes(), nil
}

// Write renders the document and writes it to w in one shot, so a failed
// render leaves the sink untouched.
func Write[A constraints.Float](w io.Writer, t *kdtree.Tree[A], opts ...Option) error {
	doc, err := Render(t, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}

func writePreamble[A constraints.Float](buf *bytes.Buffer, b kdtree.Bounds[A], s Style) {
	minX, maxX := b.Min[0], b.Max[0]
	minY, maxY := b.Min[1], b.Max[1]

	scale := (math.Abs(float64(maxX-minX)) + math.Abs(float64(maxY-minY))) / s.ScaleDivisor
	if scale == 0 {
		scale = 1
	}

	fmt.Fprintf(buf, `\documentclass[border=2cm]{standalone}
\usepackage{mathtools}
\usepackage{tikz}
\usetikzlibrary{arrows.meta}

\begin{document}
\begin{tikzpicture}[circle, very thick, scale=%s]

\node[anchor=north east] (o) at (0, 0) {0};
\draw[->,thin] (%s, 0) -- (%s, 0);
\draw[->,thin] (0, %s) -- (0, %s);

`,
		render.Format(scale),
		render.Format(minX), render.Format(maxX),
		render.Format(minY), render.Format(maxY))
}

func writePostamble(buf *bytes.Buffer) {
	buf.WriteString("\n\\end{tikzpicture}\n\\end{document}\n")
}

// writeNode emits the subtree rooted at n into the rectangle rect. The flip
// flag selects which side of a split line its label lands on; a node passes
// the negation to its left child and false to its right child.
func writeNode[A constraints.Float](buf *bytes.Buffer, n kdtree.Node[A], rect kdtree.Rect[A], flip bool, s Style) error {
	switch n := n.(type) {
	case *kdtree.Inner[A]:
		v := render.Format(n.Value)
		switch n.Axis {
		case 0:
			side := "above"
			if flip {
				side = "below"
			}
			fmt.Fprintf(buf,
				"\\draw (%s, %s) -- (%s, %s) node[midway, %s] {$x = %s$ {\\%s left $\\leftarrow \\mid \\rightarrow$ right}};\n",
				v, render.Format(rect.MinY), v, render.Format(rect.MaxY), side, v, s.SplitLabelSize)
			left, right := rect.SplitX(n.Value)
			if err := writeNode(buf, n.Left, left, !flip, s); err != nil {
				return err
			}
			return writeNode(buf, n.Right, right, false, s)
		case 1:
			side := "left"
			if flip {
				side = "right"
			}
			fmt.Fprintf(buf,
				"\\draw (%s, %s) -- (%s, %s) node[midway, %s] {$y = %s$ {\\%s left $\\downarrow \\mid \\uparrow$ right}};\n",
				render.Format(rect.MinX), v, render.Format(rect.MaxX), v, side, v, s.SplitLabelSize)
			left, right := rect.SplitY(n.Value)
			if err := writeNode(buf, n.Left, left, !flip, s); err != nil {
				return err
			}
			return writeNode(buf, n.Right, right, false, s)
		default:
			return errors.New(errors.ErrCodeInternal,
				"split axis %d cannot appear in a 2-dimensional tree", n.Axis)
		}
	case *kdtree.Leaf[A]:
		for _, p := range n.Points {
			if len(p) != 2 {
				return errors.New(errors.ErrCodeInternal, "point arity %d, want 2", len(p))
			}
			x, y := render.Format(p[0]), render.Format(p[1])
			fmt.Fprintf(buf,
				"\\filldraw (%s, %s) circle[radius=%s] node[anchor=south west] {\\%s ($%s,\\, %s$)};\n",
				x, y, s.MarkerRadius, s.PointLabelSize, x, y)
		}
		return nil
	}
	return errors.New(errors.ErrCodeInternal, "unknown node variant %T", n)
}
