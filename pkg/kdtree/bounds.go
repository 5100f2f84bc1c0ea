package kdtree

import "golang.org/x/exp/constraints"

// Bounds is the global axis-aligned extent of a tree, one min/max per axis.
type Bounds[A constraints.Float] struct {
	Min Point[A]
	Max Point[A]
}

// Rect is the axis-aligned rectangle attributed to a subtree while drawing a
// 2-dimensional tree. It only ever narrows on the way down the tree.
type Rect[A constraints.Float] struct {
	MinX, MaxX A
	MinY, MaxY A
}

// RectOf returns the rectangle covering a 2-dimensional tree's bounds.
func RectOf[A constraints.Float](b Bounds[A]) Rect[A] {
	return Rect[A]{MinX: b.Min[0], MaxX: b.Max[0], MinY: b.Min[1], MaxY: b.Max[1]}
}

// SplitX cuts the rectangle at x = v. The left half keeps everything up to
// v, the right half everything from v on; their union is the receiver.
func (r Rect[A]) SplitX(v A) (left, right Rect[A]) {
	left, right = r, r
	left.MaxX = v
	right.MinX = v
	return left, right
}

// SplitY cuts the rectangle at y = v, analogous to SplitX.
func (r Rect[A]) SplitY(v A) (left, right Rect[A]) {
	left, right = r, r
	left.MaxY = v
	right.MinY = v
	return left, right
}
