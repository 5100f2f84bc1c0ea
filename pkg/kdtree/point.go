package kdtree

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Point is an ordered sequence of coordinate values, one per axis.
type Point[A constraints.Float] []A

// Equal reports structural equality: same arity, same value per axis.
func (p Point[A]) Equal(q Point[A]) bool {
	return slices.Equal(p, q)
}
