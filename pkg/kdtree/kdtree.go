// Package kdtree defines the read-only k-d tree model consumed by the
// renderers in pkg/render.
//
// A tree is a binary space partition: every internal node splits its region
// at a single value on a single axis, every leaf stores the points that fell
// into its region. A [Node] is always exactly one of the two — the sealed
// interface makes a node that is both (or neither) unrepresentable.
//
// The package deliberately contains no construction or query algorithms.
// Callers assemble trees from literals (or decode them with pkg/treeio) and
// hand them to a renderer; renderers never mutate the tree.
package kdtree

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/kdsketch/kdsketch/pkg/errors"
)

// Node is a subtree: either an *Inner carrying a split and two children, or
// a *Leaf carrying stored points.
type Node[A constraints.Float] interface {
	// Count returns the number of points stored in the subtree.
	Count() int

	sealed()
}

// Inner is an internal node. Both children are always present.
type Inner[A constraints.Float] struct {
	Axis  int     // split axis, 0 <= Axis < tree dimensionality
	Value A       // split value on Axis
	Left  Node[A] // subtree on the low side of the split
	Right Node[A] // subtree on the high side of the split
}

// Leaf is a terminal node holding zero or more points.
type Leaf[A constraints.Float] struct {
	Points []Point[A]
}

// NewInner builds an internal node.
func NewInner[A constraints.Float](axis int, value A, left, right Node[A]) *Inner[A] {
	return &Inner[A]{Axis: axis, Value: value, Left: left, Right: right}
}

// NewLeaf builds a leaf node from the given points.
func NewLeaf[A constraints.Float](points ...Point[A]) *Leaf[A] {
	return &Leaf[A]{Points: points}
}

// Count sums the points stored under both children.
func (n *Inner[A]) Count() int {
	total := 0
	if n.Left != nil {
		total += n.Left.Count()
	}
	if n.Right != nil {
		total += n.Right.Count()
	}
	return total
}

// Count returns the number of points in the leaf.
func (n *Leaf[A]) Count() int { return len(n.Points) }

func (n *Inner[A]) sealed() {}
func (n *Leaf[A]) sealed()  {}

// Tree pairs a root node with the global facts the renderers need: the
// dimensionality and the bounding box of all stored points.
type Tree[A constraints.Float] struct {
	Dims   int
	Bounds Bounds[A]
	Root   Node[A]
}

// New assembles a tree. A nil root is an empty tree.
// Use [Tree.Validate] to check consistency before rendering.
func New[A constraints.Float](dims int, bounds Bounds[A], root Node[A]) *Tree[A] {
	return &Tree[A]{Dims: dims, Bounds: bounds, Root: root}
}

// Count returns the total number of stored points.
func (t *Tree[A]) Count() int {
	if t.Root == nil {
		return 0
	}
	return t.Root.Count()
}

// Validate checks the consistency the renderers rely on: positive
// dimensionality, bounds with one min/max per axis and min <= max, split
// axes inside [0, dims), both children present on internal nodes, and point
// arity matching the dimensionality. Violations are programming errors in
// whatever built the tree, reported as errors.ErrCodeInvalidTree.
func (t *Tree[A]) Validate() error {
	if t.Dims <= 0 {
		return errors.New(errors.ErrCodeInvalidTree, "dimensionality must be positive, got %d", t.Dims)
	}
	if len(t.Bounds.Min) != t.Dims || len(t.Bounds.Max) != t.Dims {
		return errors.New(errors.ErrCodeInvalidTree,
			"bounds arity %d/%d does not match %d dimensions", len(t.Bounds.Min), len(t.Bounds.Max), t.Dims)
	}
	for axis := 0; axis < t.Dims; axis++ {
		if t.Bounds.Min[axis] > t.Bounds.Max[axis] {
			return errors.New(errors.ErrCodeInvalidTree,
				"inverted bounds on %s: %v > %v", AxisLabel(axis), t.Bounds.Min[axis], t.Bounds.Max[axis])
		}
	}
	if t.Root == nil {
		return nil
	}
	return validateNode[A](t.Root, t.Dims)
}

func validateNode[A constraints.Float](n Node[A], dims int) error {
	switch n := n.(type) {
	case *Inner[A]:
		if n.Axis < 0 || n.Axis >= dims {
			return errors.New(errors.ErrCodeInvalidTree, "split axis %d outside [0, %d)", n.Axis, dims)
		}
		if n.Left == nil || n.Right == nil {
			return errors.New(errors.ErrCodeInvalidTree, "internal node splitting at %v is missing a child", n.Value)
		}
		if err := validateNode[A](n.Left, dims); err != nil {
			return err
		}
		return validateNode[A](n.Right, dims)
	case *Leaf[A]:
		for _, p := range n.Points {
			if len(p) != dims {
				return errors.New(errors.ErrCodeInvalidTree,
					"point arity %d does not match %d dimensions", len(p), dims)
			}
		}
		return nil
	}
	return errors.New(errors.ErrCodeInternal, "unknown node variant %T", n)
}

// AxisLabel names a split axis the way the shape dump prints it: x, y, z, w,
// then x4, x5, ... for higher axes.
func AxisLabel(axis int) string {
	switch axis {
	case 0:
		return "x"
	case 1:
		return "y"
	case 2:
		return "z"
	case 3:
		return "w"
	}
	return fmt.Sprintf("x%d", axis)
}
